package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"mrpending/internal/domain"
	"mrpending/internal/port"
)

// Gateway turns a statement PDF into a validated domain.Report through the
// extraction oracle. It owns the request contract (instructions + schema),
// response cleanup, schema validation, and failure classification. It never
// retries: every failure is terminal for the attempt and the user is told to
// split the document instead.
type Gateway struct {
	oracle     port.StatementExtractor
	schema     *jsonschema.Schema
	schemaJSON json.RawMessage
	log        zerolog.Logger
}

// NewGateway creates a Gateway around the given oracle.
func NewGateway(oracle port.StatementExtractor, log zerolog.Logger) (*Gateway, error) {
	schemaJSON, err := json.Marshal(BuildReportJSONSchema())
	if err != nil {
		return nil, fmt.Errorf("marshaling report schema: %w", err)
	}
	compiled, err := jsonschema.CompileString("report.schema.json", string(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("compiling report schema: %w", err)
	}
	return &Gateway{oracle: oracle, schema: compiled, schemaJSON: schemaJSON, log: log}, nil
}

// Extract runs one extraction attempt against the oracle and returns the
// parsed report verbatim: document order and stated totals are passed
// through, nothing is recomputed or trimmed.
func (g *Gateway) Extract(ctx context.Context, pdfBytes []byte) (*domain.Report, error) {
	text, err := g.oracle.Extract(ctx, port.ExtractInput{
		FileBytes:    pdfBytes,
		ContentType:  domain.PDFContentType,
		Instructions: BuildOutstandingStatementPrompt(),
		Schema:       g.schemaJSON,
	})
	if err != nil {
		g.log.Error().Err(err).Msg("oracle extraction failed")
		return nil, Classify(err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, &EmptyResponseError{}
	}

	cleaned := StripCodeFences(text)

	var doc any
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		g.log.Warn().Err(err).Int("response_len", len(cleaned)).Msg("oracle response is not valid JSON")
		return nil, &MalformedResponseError{Err: err}
	}
	if err := g.schema.Validate(doc); err != nil {
		g.log.Warn().Err(err).Msg("oracle response failed schema validation")
		return nil, &MalformedResponseError{Err: err}
	}

	var report domain.Report
	if err := json.Unmarshal([]byte(cleaned), &report); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}

	g.log.Info().
		Str("agency", report.AgencyName).
		Str("report_date", report.ReportDate).
		Int("mrs", len(report.MRs)).
		Msg("statement extracted")
	return &report, nil
}
