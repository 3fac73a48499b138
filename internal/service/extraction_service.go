package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"mrpending/internal/domain"
	"mrpending/internal/parser"
	"mrpending/internal/summary"
	"mrpending/internal/upload"
)

// State is the orchestrator's lifecycle state for one extraction attempt.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateExtracting State = "extracting"
	StateReady      State = "ready"
	StateFailed     State = "failed"
)

// Snapshot is a point-in-time view of the orchestrator.
type Snapshot struct {
	State        State          `json:"state"`
	Report       *domain.Report `json:"report,omitempty"`
	ErrorMessage string         `json:"error,omitempty"`
}

// MRSummary is the shareable summary for one MR of the current report.
type MRSummary struct {
	MRName   string `json:"mr"`
	Text     string `json:"text"`
	ShareURL string `json:"share_url"`
}

// ExtractionService owns the request lifecycle: idle -> validating ->
// extracting -> ready/failed. There is exactly one mutable slot (the current
// report or failure) and exactly one writer (the active extraction), so a
// single mutex suffices. Only one extraction may be in flight at a time; a
// submission during extraction is rejected, never queued.
type ExtractionService interface {
	Submit(ctx context.Context, file io.Reader, sizeBytes int64, contentType string) (*domain.Report, error)
	Snapshot() Snapshot
	Summary(mrIndex int) (*MRSummary, error)
	Reset()
}

type extractionService struct {
	guard        *upload.Guard
	gateway      *parser.Gateway
	shareBaseURL string
	log          zerolog.Logger

	mu     sync.Mutex
	state  State
	report *domain.Report
	errMsg string
}

// NewExtractionService creates the orchestrator.
func NewExtractionService(guard *upload.Guard, gateway *parser.Gateway, shareBaseURL string, log zerolog.Logger) ExtractionService {
	return &extractionService{
		guard:        guard,
		gateway:      gateway,
		shareBaseURL: shareBaseURL,
		log:          log,
		state:        StateIdle,
	}
}

func (s *extractionService) Submit(ctx context.Context, file io.Reader, sizeBytes int64, contentType string) (*domain.Report, error) {
	s.mu.Lock()
	if s.state == StateValidating || s.state == StateExtracting {
		s.mu.Unlock()
		return nil, domain.ErrExtractionInFlight
	}
	s.state = StateValidating
	s.mu.Unlock()

	// Pre-flight guard runs before any byte is read.
	if err := s.guard.Validate(sizeBytes, contentType); err != nil {
		s.fail(guardMessage(err))
		return nil, err
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.fail("Error reading the file.")
		return nil, fmt.Errorf("%w: %v", domain.ErrFileRead, err)
	}

	s.setState(StateExtracting)
	s.log.Info().Int64("size_bytes", sizeBytes).Msg("starting statement extraction")

	report, err := s.gateway.Extract(ctx, data)
	if err != nil {
		s.fail(parser.UserMessage(err))
		return nil, err
	}

	// The new report replaces the previous one wholesale.
	s.mu.Lock()
	s.state = StateReady
	s.report = report
	s.errMsg = ""
	s.mu.Unlock()
	return report, nil
}

func (s *extractionService) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{State: s.state, Report: s.report, ErrorMessage: s.errMsg}
}

func (s *extractionService) Summary(mrIndex int) (*MRSummary, error) {
	s.mu.Lock()
	report := s.report
	s.mu.Unlock()

	if report == nil {
		return nil, domain.ErrNoReport
	}
	if mrIndex < 0 || mrIndex >= len(report.MRs) {
		return nil, domain.ErrMRNotFound
	}

	mr := report.MRs[mrIndex]
	text := summary.Render(mr, report.ReportDate)
	return &MRSummary{
		MRName:   mr.Name,
		Text:     text,
		ShareURL: summary.ShareURL(s.shareBaseURL, text),
	}, nil
}

func (s *extractionService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateIdle
	s.report = nil
	s.errMsg = ""
}

func (s *extractionService) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *extractionService) fail(msg string) {
	s.mu.Lock()
	s.state = StateFailed
	s.report = nil
	s.errMsg = msg
	s.mu.Unlock()
}

// guardMessage returns the user-facing message for a pre-flight rejection.
func guardMessage(err error) string {
	if errors.Is(err, domain.ErrNotPDF) {
		return "Please upload a PDF file."
	}
	return err.Error()
}
