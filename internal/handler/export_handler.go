package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"pusaka-newsletter/internal/domain"
	"pusaka-newsletter/internal/middleware"
	"pusaka-newsletter/internal/service"
)

// ExportHandler handles dashboard export requests.
type ExportHandler struct {
	exportService service.ExportServiceInterface
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// StreamExportRequest represents query parameters for streaming export.
type StreamExportRequest struct {
	Format string `form:"format" binding:"omitempty,oneof=csv ndjson"`
	Status string `form:"status"`
}

// ginStreamWriter wraps gin.ResponseWriter for streaming.
type ginStreamWriter struct {
	writer gin.ResponseWriter
}

func (w *ginStreamWriter) Write(data []byte) error {
	_, err := w.writer.Write(data)
	return err
}

func (w *ginStreamWriter) Flush() {
	w.writer.Flush()
}

// StreamArticles handles GET /api/v1/admin/exports/articles?format=...&status=...
func (h *ExportHandler) StreamArticles(c *gin.Context) {
	var req StreamExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != "" && !domain.IsValidArticleStatus(req.Status) {
		respondError(c, domain.NewValidationError("status", "invalid_status"))
		return
	}

	// Default format is ndjson
	if req.Format == "" {
		req.Format = service.FormatNDJSON
	}

	log := middleware.Logger(c).With(slog.String("format", req.Format), slog.String("status", req.Status))
	log.InfoContext(c.Request.Context(), "Streaming article export")

	contentType := "application/x-ndjson"
	if req.Format == service.FormatCSV {
		contentType = "text/csv"
	}

	c.Header("Content-Type", contentType)
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("Content-Disposition", "attachment; filename=\"articles."+req.Format+"\"")
	c.Status(http.StatusOK)

	writer := &ginStreamWriter{writer: c.Writer}
	filter := domain.ArticleFilter{Status: domain.ArticleStatus(req.Status)}

	count, err := h.exportService.StreamArticles(c.Request.Context(), filter, req.Format, writer)
	if err != nil {
		// Headers are already sent, the truncated body is all the client gets.
		log.ErrorContext(c.Request.Context(), "Streaming export failed", slog.Int("records", count), slog.String("error", err.Error()))
		return
	}

	log.InfoContext(c.Request.Context(), "Streaming export completed", slog.Int("records", count))
}
