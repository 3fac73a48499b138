package parser

// BuildReportJSONSchema returns the strict output schema for an outstanding
// statement report as a JSON-Schema map. It is sent to the oracle as a
// structured-output constraint and compiled locally to validate the response
// before unmarshaling. Unknown fields are ignored (no additionalProperties
// clamp); missing required fields are a hard failure.
func BuildReportJSONSchema() map[string]any {
	bill := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"invoiceNo":   map[string]any{"type": "string", "minLength": 1},
			"date":        map[string]any{"type": "string"},
			"billValue":   map[string]any{"type": "number"},
			"paidAmount":  map[string]any{"type": "number"},
			"balance":     map[string]any{"type": "number"},
			"dueDate":     map[string]any{"type": "string"},
			"overDueDays": map[string]any{"type": "integer"},
		},
		"required": []string{"invoiceNo", "billValue", "balance"},
	}

	stockist := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":             map[string]any{"type": "string", "minLength": 1},
			"phone":            map[string]any{"type": []string{"string", "null"}},
			"mobile":           map[string]any{"type": []string{"string", "null"}},
			"totalOutstanding": map[string]any{"type": "number"},
			"bills":            map[string]any{"type": "array", "items": bill},
		},
		"required": []string{"name", "bills", "totalOutstanding"},
	}

	mr := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":             map[string]any{"type": "string", "minLength": 1},
			"totalOutstanding": map[string]any{"type": "number"},
			"stockists":        map[string]any{"type": "array", "items": stockist},
		},
		"required": []string{"name", "stockists", "totalOutstanding"},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"agencyName": map[string]any{"type": "string"},
			"reportDate": map[string]any{"type": "string"},
			"grandTotal": map[string]any{"type": "number"},
			"mrs":        map[string]any{"type": "array", "items": mr},
		},
		"required": []string{"agencyName", "reportDate", "grandTotal", "mrs"},
	}
}
