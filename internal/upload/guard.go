package upload

import (
	"fmt"

	"mrpending/internal/domain"
)

// Guard performs pre-flight validation of an uploaded statement before any
// bytes are read or the oracle is called. It is a pure check on the declared
// content type and size.
type Guard struct {
	maxBytes int64
}

// NewGuard creates a Guard with the given ceiling in bytes.
func NewGuard(maxBytes int64) *Guard {
	return &Guard{maxBytes: maxBytes}
}

// MaxBytes returns the configured upload ceiling.
func (g *Guard) MaxBytes() int64 {
	return g.maxBytes
}

// Validate rejects non-PDF uploads and files over the ceiling. A file of
// exactly the ceiling size is accepted.
func (g *Guard) Validate(sizeBytes int64, contentType string) error {
	if contentType != domain.PDFContentType {
		return domain.ErrNotPDF
	}
	if sizeBytes > g.maxBytes {
		return &SizeError{SizeBytes: sizeBytes, MaxBytes: g.maxBytes}
	}
	return nil
}

// SizeError reports an upload over the configured ceiling. The message
// carries the measured size because the ceiling exists to keep oracle
// transport reliable and the fix (splitting the PDF) is on the user.
type SizeError struct {
	SizeBytes int64
	MaxBytes  int64
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("file is too large (%.2fMB); please upload a file smaller than %dMB to ensure reliable processing",
		float64(e.SizeBytes)/(1024*1024), e.MaxBytes/(1024*1024))
}

// Is lets callers match a SizeError against domain.ErrFileTooLarge.
func (e *SizeError) Is(target error) bool {
	return target == domain.ErrFileTooLarge
}
