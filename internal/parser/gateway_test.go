package parser_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrpending/internal/parser"
	"mrpending/internal/port"
)

// fakeOracle records the request it was handed and returns a canned response.
type fakeOracle struct {
	text  string
	err   error
	calls int
	last  port.ExtractInput
}

func (f *fakeOracle) Extract(_ context.Context, input port.ExtractInput) (string, error) {
	f.calls++
	f.last = input
	return f.text, f.err
}

func newGateway(t *testing.T, oracle port.StatementExtractor) *parser.Gateway {
	t.Helper()
	g, err := parser.NewGateway(oracle, zerolog.Nop())
	require.NoError(t, err)
	return g
}

const happyPathResponse = `{"agencyName":"Acme Pharma","reportDate":"12-Mar-2024","grandTotal":5000,"mrs":[{"name":"TOWN-[JOHN]","totalOutstanding":5000,"stockists":[{"name":"City Drugs","totalOutstanding":5000,"bills":[{"invoiceNo":"INV1","billValue":5000,"paidAmount":0,"balance":5000,"dueDate":"01-Apr-2024","overDueDays":10}]}]}]}`

func TestGateway_Extract_HappyPath(t *testing.T) {
	oracle := &fakeOracle{text: happyPathResponse}
	g := newGateway(t, oracle)

	report, err := g.Extract(context.Background(), []byte("%PDF-1.4 statement"))
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, "Acme Pharma", report.AgencyName)
	assert.Equal(t, float64(5000), report.GrandTotal)
	require.Len(t, report.MRs, 1)
	require.Len(t, report.MRs[0].Stockists, 1)
	require.Len(t, report.MRs[0].Stockists[0].Bills, 1)
	assert.Equal(t, "INV1", report.MRs[0].Stockists[0].Bills[0].InvoiceNo)
	assert.Equal(t, float64(5000), report.MRs[0].Stockists[0].Bills[0].Balance)
	assert.Equal(t, 10, report.MRs[0].Stockists[0].Bills[0].OverDueDays)

	// The request carried the full extraction contract.
	assert.Equal(t, 1, oracle.calls)
	assert.Equal(t, "application/pdf", oracle.last.ContentType)
	assert.NotEmpty(t, oracle.last.Instructions)
	assert.NotEmpty(t, oracle.last.Schema)
}

func TestGateway_Extract_FencedResponse(t *testing.T) {
	oracle := &fakeOracle{text: "```json\n" + happyPathResponse + "\n```"}
	g := newGateway(t, oracle)

	report, err := g.Extract(context.Background(), []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, "Acme Pharma", report.AgencyName)
}

func TestGateway_Extract_EmptyResponse(t *testing.T) {
	oracle := &fakeOracle{text: "   \n"}
	g := newGateway(t, oracle)

	report, err := g.Extract(context.Background(), []byte("%PDF-1.4"))
	assert.Nil(t, report)
	var emptyErr *parser.EmptyResponseError
	assert.ErrorAs(t, err, &emptyErr)
}

func TestGateway_Extract_TruncatedJSON(t *testing.T) {
	oracle := &fakeOracle{text: `{"agencyName":"Acme Pharma","reportDate":"12-Mar-2024","grandTotal":5000,"mrs":[{"name":"TOWN-[JO`}
	g := newGateway(t, oracle)

	report, err := g.Extract(context.Background(), []byte("%PDF-1.4"))
	assert.Nil(t, report)
	var malformedErr *parser.MalformedResponseError
	assert.ErrorAs(t, err, &malformedErr)
	assert.Contains(t, parser.UserMessage(err), "splitting the PDF")
}

func TestGateway_Extract_MissingRequiredBillField(t *testing.T) {
	// Bill without "balance" must fail schema validation, not default to 0.
	oracle := &fakeOracle{text: `{"agencyName":"Acme","reportDate":"12-Mar-2024","grandTotal":100,"mrs":[{"name":"X","totalOutstanding":100,"stockists":[{"name":"Y","totalOutstanding":100,"bills":[{"invoiceNo":"INV1","billValue":100}]}]}]}`}
	g := newGateway(t, oracle)

	report, err := g.Extract(context.Background(), []byte("%PDF-1.4"))
	assert.Nil(t, report)
	var malformedErr *parser.MalformedResponseError
	assert.ErrorAs(t, err, &malformedErr)
}

func TestGateway_Extract_MissingRequiredRootField(t *testing.T) {
	oracle := &fakeOracle{text: `{"agencyName":"Acme","reportDate":"12-Mar-2024","mrs":[]}`}
	g := newGateway(t, oracle)

	report, err := g.Extract(context.Background(), []byte("%PDF-1.4"))
	assert.Nil(t, report)
	var malformedErr *parser.MalformedResponseError
	assert.ErrorAs(t, err, &malformedErr)
}

func TestGateway_Extract_UnknownFieldsIgnored(t *testing.T) {
	oracle := &fakeOracle{text: `{"agencyName":"Acme","reportDate":"12-Mar-2024","grandTotal":0,"mrs":[],"extraneous":"ignored"}`}
	g := newGateway(t, oracle)

	report, err := g.Extract(context.Background(), []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, "Acme", report.AgencyName)
}

func TestGateway_Extract_ZeroBalanceIsValid(t *testing.T) {
	oracle := &fakeOracle{text: `{"agencyName":"Acme","reportDate":"12-Mar-2024","grandTotal":0,"mrs":[{"name":"X","totalOutstanding":0,"stockists":[{"name":"Y","totalOutstanding":0,"bills":[{"invoiceNo":"INV1","billValue":100,"balance":0}]}]}]}`}
	g := newGateway(t, oracle)

	report, err := g.Extract(context.Background(), []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, float64(0), report.MRs[0].Stockists[0].Bills[0].Balance)
}

func TestGateway_Extract_TransportSignatureClassified(t *testing.T) {
	oracle := &fakeOracle{err: errors.New("Rpc failed: stream terminated")}
	g := newGateway(t, oracle)

	report, err := g.Extract(context.Background(), []byte("%PDF-1.4"))
	assert.Nil(t, report)
	var transportErr *parser.TransportError
	assert.ErrorAs(t, err, &transportErr)
}

func TestGateway_Extract_ConfigurationErrorPassedThrough(t *testing.T) {
	oracle := &fakeOracle{err: &parser.ConfigurationError{Provider: "gemini"}}
	g := newGateway(t, oracle)

	report, err := g.Extract(context.Background(), []byte("%PDF-1.4"))
	assert.Nil(t, report)
	var cfgErr *parser.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestGateway_Extract_OracleErrorVerbatim(t *testing.T) {
	oracle := &fakeOracle{err: errors.New("gemini API error (status 500): model overloaded")}
	g := newGateway(t, oracle)

	report, err := g.Extract(context.Background(), []byte("%PDF-1.4"))
	assert.Nil(t, report)
	assert.Equal(t, "gemini API error (status 500): model overloaded", parser.UserMessage(err))
}
