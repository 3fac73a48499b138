package port

import (
	"context"
	"encoding/json"
)

// ExtractInput carries the document and the extraction contract sent to the
// oracle: the raw bytes, the natural-language instructions describing the
// statement layout, and the strict output schema the response must satisfy.
type ExtractInput struct {
	FileBytes    []byte
	ContentType  string
	Instructions string
	Schema       json.RawMessage
}

// StatementExtractor abstracts the schema-constrained document extraction
// service. It returns the oracle's raw text response; the gateway owns fence
// stripping, schema validation, and parsing, so alternate backends (another
// provider, or a deterministic parser in tests) can be substituted freely.
type StatementExtractor interface {
	Extract(ctx context.Context, input ExtractInput) (string, error)
}
