package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"mrpending/internal/domain"
	"mrpending/internal/parser"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates pipeline errors to HTTP status codes, error
// codes, and user-facing messages. Guard rejections keep their measured-size
// detail; oracle-side failures carry the split-the-PDF guidance from the
// parser package.
func MapDomainError(err error) (status int, code, msg string) {
	var (
		cfgErr       *parser.ConfigurationError
		emptyErr     *parser.EmptyResponseError
		malformedErr *parser.MalformedResponseError
		transportErr *parser.TransportError
	)
	switch {
	case errors.Is(err, domain.ErrNotPDF):
		return http.StatusBadRequest, "NOT_PDF", "Please upload a PDF file."
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error()
	case errors.Is(err, domain.ErrFileRead):
		return http.StatusBadRequest, "FILE_READ_ERROR", "Error reading the file."
	case errors.Is(err, domain.ErrExtractionInFlight):
		return http.StatusConflict, "EXTRACTION_IN_FLIGHT", "an extraction is already in progress; wait for it to finish"
	case errors.Is(err, domain.ErrNoReport):
		return http.StatusNotFound, "NO_REPORT", "no report has been extracted yet"
	case errors.Is(err, domain.ErrMRNotFound):
		return http.StatusNotFound, "MR_NOT_FOUND", "no MR at that position in the current report"
	case errors.As(err, &cfgErr):
		return http.StatusInternalServerError, "PARSER_NOT_CONFIGURED", parser.UserMessage(err)
	case errors.As(err, &emptyErr):
		return http.StatusBadGateway, "EMPTY_RESPONSE", parser.UserMessage(err)
	case errors.As(err, &malformedErr):
		return http.StatusBadGateway, "MALFORMED_RESPONSE", parser.UserMessage(err)
	case errors.As(err, &transportErr):
		return http.StatusBadGateway, "TRANSPORT_ERROR", parser.UserMessage(err)
	default:
		return http.StatusBadGateway, "EXTRACTION_FAILED", parser.UserMessage(err)
	}
}

// HandleError maps a pipeline error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Error().Err(err).Interface("request_id", requestID).Msg("internal error")
	}
	RespondError(c, status, code, msg)
}
