package domain

// The outstanding statement is a three-level tree: the report owns MR
// sections, each MR owns stockists, each stockist owns bills. Field names
// mirror the extraction schema exactly; the tree is built atomically from one
// extraction response and never mutated afterwards.

// Bill is a single unpaid invoice row.
type Bill struct {
	InvoiceNo   string  `json:"invoiceNo"`
	Date        string  `json:"date"`
	BillValue   float64 `json:"billValue"`
	PaidAmount  float64 `json:"paidAmount"`
	Balance     float64 `json:"balance"`
	DueDate     string  `json:"dueDate"`
	OverDueDays int     `json:"overDueDays"`
}

// Stockist is a distributor owing money to one MR. Bills stay in document
// order. TotalOutstanding is the statement's stated figure and is never
// recomputed from the bills.
type Stockist struct {
	Name             string  `json:"name"`
	Phone            *string `json:"phone,omitempty"`
	Mobile           *string `json:"mobile,omitempty"`
	TotalOutstanding float64 `json:"totalOutstanding"`
	Bills            []Bill  `json:"bills"`
}

// MR is a medical representative section of the statement. The name may
// carry a location prefix (e.g. "BERHAMPORE-[AMIT DEY]") and is treated as
// an opaque label.
type MR struct {
	Name             string     `json:"name"`
	TotalOutstanding float64    `json:"totalOutstanding"`
	Stockists        []Stockist `json:"stockists"`
}

// Report is the root aggregate produced by one extraction.
type Report struct {
	AgencyName string  `json:"agencyName"`
	ReportDate string  `json:"reportDate"`
	GrandTotal float64 `json:"grandTotal"`
	MRs        []MR    `json:"mrs"`
}
