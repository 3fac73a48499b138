package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ConfigurationError indicates the oracle credential is missing.
type ConfigurationError struct {
	Provider string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s parser is not configured: missing API key", e.Provider)
}

// EmptyResponseError indicates the oracle returned no text.
type EmptyResponseError struct{}

func (e *EmptyResponseError) Error() string {
	return "empty response from extraction service"
}

// MalformedResponseError indicates the oracle's text failed JSON or schema
// parsing, including truncated (unterminated) output.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed extraction response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// TransportError indicates a transport-layer failure surfaced by the oracle
// call, typically caused by an oversized payload.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("extraction transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RateLimitError indicates the oracle provider returned HTTP 429. RetryAfter
// is informational only; nothing in the pipeline retries automatically.
type RateLimitError struct {
	Err        error
	RetryAfter time.Duration
	Provider   string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s rate limited (retry after %s): %v", e.Provider, e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// NewRateLimitError creates a RateLimitError. If retryAfterSecs is 0, defaults to 60s.
func NewRateLimitError(provider string, err error, retryAfterSecs int) *RateLimitError {
	if retryAfterSecs <= 0 {
		retryAfterSecs = 60
	}
	return &RateLimitError{
		Err:        err,
		RetryAfter: time.Duration(retryAfterSecs) * time.Second,
		Provider:   provider,
	}
}

// ParseRetryAfterHeader parses a Retry-After header value into seconds.
// Returns 0 if the value is empty or not a valid integer.
func ParseRetryAfterHeader(val string) int {
	if val == "" {
		return 0
	}
	secs, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return secs
}

// transportSignatures are error fragments known to mean the payload never
// made it through the transport intact, usually because the PDF is too big.
var transportSignatures = []string{
	"rpc failed",
	"xhr error",
	"error code: 6",
}

// Classify promotes untyped oracle errors carrying known transport-failure
// signatures to TransportError. Already-typed errors pass through unchanged.
func Classify(err error) error {
	switch err.(type) {
	case *ConfigurationError, *EmptyResponseError, *MalformedResponseError, *TransportError, *RateLimitError:
		return err
	}
	msg := strings.ToLower(err.Error())
	for _, sig := range transportSignatures {
		if strings.Contains(msg, sig) {
			return &TransportError{Err: err}
		}
	}
	return err
}
