package upload_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"mrpending/internal/domain"
	"mrpending/internal/upload"
)

const fourMiB = 4 * 1024 * 1024

func TestGuard_Validate_AcceptsPDFUnderCeiling(t *testing.T) {
	g := upload.NewGuard(fourMiB)

	assert.NoError(t, g.Validate(1024, domain.PDFContentType))
}

func TestGuard_Validate_AcceptsExactCeiling(t *testing.T) {
	g := upload.NewGuard(fourMiB)

	assert.NoError(t, g.Validate(fourMiB, domain.PDFContentType))
}

func TestGuard_Validate_RejectsOneByteOver(t *testing.T) {
	g := upload.NewGuard(fourMiB)

	err := g.Validate(fourMiB+1, domain.PDFContentType)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFileTooLarge))
	assert.Contains(t, err.Error(), "4.00MB")
	assert.Contains(t, err.Error(), "smaller than 4MB")
}

func TestGuard_Validate_RejectsFiveMBFile(t *testing.T) {
	g := upload.NewGuard(fourMiB)

	err := g.Validate(5*1024*1024, domain.PDFContentType)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFileTooLarge))
	assert.Contains(t, err.Error(), "5.00MB")
}

func TestGuard_Validate_RejectsNonPDF(t *testing.T) {
	g := upload.NewGuard(fourMiB)

	for _, ct := range []string{"image/png", "application/json", "application/pdf;charset=utf-8", ""} {
		err := g.Validate(100, ct)
		assert.ErrorIs(t, err, domain.ErrNotPDF, "content type %q", ct)
	}
}

func TestGuard_Validate_TypeCheckedBeforeSize(t *testing.T) {
	g := upload.NewGuard(fourMiB)

	// A wrong type must win even when the file is also oversized.
	err := g.Validate(fourMiB+1, "image/png")
	assert.ErrorIs(t, err, domain.ErrNotPDF)
}
