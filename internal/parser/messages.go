package parser

import "errors"

// UserMessage converts an extraction failure into the actionable message
// shown to the user. Malformed and transport failures both point at the same
// root cause (an oversized or overly complex statement) and both recommend
// splitting the PDF; any other oracle-side failure is passed through
// verbatim.
func UserMessage(err error) string {
	var (
		cfgErr       *ConfigurationError
		emptyErr     *EmptyResponseError
		malformedErr *MalformedResponseError
		transportErr *TransportError
	)
	switch {
	case errors.As(err, &cfgErr):
		return "API key is missing. Please check your environment configuration."
	case errors.As(err, &emptyErr):
		return "No data returned from AI."
	case errors.As(err, &malformedErr):
		return "Extraction failed. The report might be too large for a single pass. Please try splitting the PDF into smaller sections."
	case errors.As(err, &transportErr):
		return "Network request failed. The PDF file is likely too large to process reliably (limit ~4MB). Please split the PDF into smaller pages and try again."
	default:
		return err.Error()
	}
}
