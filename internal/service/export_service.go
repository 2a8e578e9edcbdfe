package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"pusaka-newsletter/internal/domain"
	"pusaka-newsletter/internal/logger"
	"pusaka-newsletter/internal/metrics"
	"pusaka-newsletter/internal/repository"
)

// Export formats.
const (
	FormatCSV    = "csv"
	FormatNDJSON = "ndjson"
)

// flushEvery is the number of records written between flushes to the client.
const flushEvery = 500

var articleCSVHeader = []string{
	"id", "title", "slug", "status", "author_id", "edition_id", "featured", "read_time",
	"version", "published_at", "created_at", "updated_at",
}

// ExportService streams dashboard exports straight to the response.
type ExportService struct {
	articleRepo repository.ArticleRepository
}

// NewExportService creates a new ExportService.
func NewExportService(articleRepo repository.ArticleRepository) *ExportService {
	return &ExportService{articleRepo: articleRepo}
}

// IsValidExportFormat reports whether format is supported.
func IsValidExportFormat(format string) bool {
	return format == FormatCSV || format == FormatNDJSON
}

// StreamArticles writes every article matching filter to writer and returns the
// number of records written. Rows are never buffered beyond the flush interval.
func (s *ExportService) StreamArticles(ctx context.Context, filter domain.ArticleFilter, format string, writer StreamWriter) (int, error) {
	if !IsValidExportFormat(format) {
		return 0, domain.NewValidationError("format", "must be csv or ndjson")
	}

	metrics.StartStreamingExport("articles")
	start := time.Now()
	out := &streamAdapter{w: writer}

	var (
		count int
		err   error
	)
	if format == FormatCSV {
		count, err = s.streamArticlesCSV(ctx, filter, out)
	} else {
		count, err = s.streamArticlesNDJSON(ctx, filter, out)
	}
	writer.Flush()

	result := metrics.ResultApplied
	if err != nil {
		result = metrics.ResultError
	}
	metrics.EndStreamingExport("articles", format, result, time.Since(start).Seconds(), count)

	if err != nil {
		logger.ErrorContext(ctx, "Article export failed",
			slog.String("format", format),
			slog.Int("records", count),
			slog.String("error", err.Error()),
		)
		return count, fmt.Errorf("stream articles: %w", err)
	}

	logger.InfoContext(ctx, "Article export completed",
		slog.String("format", format),
		slog.Int("records", count),
	)
	return count, nil
}

func (s *ExportService) streamArticlesCSV(ctx context.Context, filter domain.ArticleFilter, out *streamAdapter) (int, error) {
	w := csv.NewWriter(out)
	if err := w.Write(articleCSVHeader); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	var count int
	err := s.articleRepo.StreamAll(ctx, filter, func(a domain.Article) error {
		if err := w.Write(articleRecord(a)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
		count++
		if count%flushEvery == 0 {
			w.Flush()
			out.w.Flush()
		}
		return nil
	})
	w.Flush()
	if err == nil {
		err = w.Error()
	}
	return count, err
}

func (s *ExportService) streamArticlesNDJSON(ctx context.Context, filter domain.ArticleFilter, out *streamAdapter) (int, error) {
	encoder := json.NewEncoder(out)

	var count int
	err := s.articleRepo.StreamAll(ctx, filter, func(a domain.Article) error {
		if err := encoder.Encode(a); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
		count++
		if count%flushEvery == 0 {
			out.w.Flush()
		}
		return nil
	})
	return count, err
}

func articleRecord(a domain.Article) []string {
	editionID := ""
	if a.EditionID != nil {
		editionID = *a.EditionID
	}
	publishedAt := ""
	if a.PublishedAt != nil {
		publishedAt = a.PublishedAt.Format(time.RFC3339)
	}
	return []string{
		a.ID,
		a.Title,
		a.Slug,
		string(a.Status),
		a.AuthorID,
		editionID,
		strconv.FormatBool(a.Featured),
		strconv.Itoa(a.ReadTime),
		strconv.Itoa(a.Version),
		publishedAt,
		a.CreatedAt.Format(time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
	}
}

// streamAdapter lets encoders write to a StreamWriter.
type streamAdapter struct {
	w StreamWriter
}

func (a *streamAdapter) Write(p []byte) (int, error) {
	if err := a.w.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
