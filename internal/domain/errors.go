package domain

import "errors"

// PDFContentType is the only MIME type the statement pipeline accepts.
const PDFContentType = "application/pdf"

var (
	ErrNotPDF             = errors.New("file must be a PDF")
	ErrFileTooLarge       = errors.New("file exceeds maximum allowed size")
	ErrFileRead           = errors.New("error reading the file")
	ErrExtractionInFlight = errors.New("an extraction is already in progress")
	ErrNoReport           = errors.New("no report has been extracted yet")
	ErrMRNotFound         = errors.New("no MR at that position in the current report")
)
