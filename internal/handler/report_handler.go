package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mrpending/internal/service"
)

// ReportHandler exposes the statement extraction pipeline over HTTP.
type ReportHandler struct {
	svc service.ExtractionService
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc service.ExtractionService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Upload accepts a multipart PDF, runs validation and extraction, and
// returns the extracted report.
func (h *ReportHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "multipart field 'file' is required")
		return
	}
	defer func() { _ = file.Close() }()

	contentType := header.Header.Get("Content-Type")
	report, err := h.svc.Submit(c.Request.Context(), file, header.Size, contentType)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// Current returns the orchestrator snapshot: state, report if ready, error
// message if failed.
func (h *ReportHandler) Current(c *gin.Context) {
	RespondOK(c, h.svc.Snapshot())
}

// Reset discards the current report or error and returns to idle.
func (h *ReportHandler) Reset(c *gin.Context) {
	h.svc.Reset()
	RespondOK(c, h.svc.Snapshot())
}

// Summary returns the WhatsApp-ready text and share URL for one MR of the
// current report. The text field is the plain clipboard form; the share URL
// embeds its percent-encoded twin.
func (h *ReportHandler) Summary(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INDEX", "MR index must be an integer")
		return
	}

	s, err := h.svc.Summary(index)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, s)
}
