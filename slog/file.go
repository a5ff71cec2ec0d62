package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/cwsummary"
)

// Ensure LoggingFileService implements cwsummary.FileService.
var _ cwsummary.FileService = (*LoggingFileService)(nil)

// LoggingFileService wraps a FileService with debug logging.
type LoggingFileService struct {
	next   cwsummary.FileService
	logger *slog.Logger
}

// NewLoggingFileService creates a new LoggingFileService.
func NewLoggingFileService(next cwsummary.FileService, logger *slog.Logger) *LoggingFileService {
	return &LoggingFileService{next: next, logger: logger}
}

// FindFileByID delegates to the wrapped service and logs the lookup.
func (s *LoggingFileService) FindFileByID(ctx context.Context, id string) (file *cwsummary.File, err error) {
	defer func(begin time.Time) {
		var path string
		if file != nil {
			path = file.Path
		}
		s.logger.Info("file lookup",
			"id", id,
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindFileByID(ctx, id)
}

// Ensure LoggingTextExtractor implements cwsummary.TextExtractor.
var _ cwsummary.TextExtractor = (*LoggingTextExtractor)(nil)

// LoggingTextExtractor wraps a TextExtractor with debug logging.
type LoggingTextExtractor struct {
	next   cwsummary.TextExtractor
	logger *slog.Logger
}

// NewLoggingTextExtractor creates a new LoggingTextExtractor.
func NewLoggingTextExtractor(next cwsummary.TextExtractor, logger *slog.Logger) *LoggingTextExtractor {
	return &LoggingTextExtractor{next: next, logger: logger}
}

// ExtractText delegates to the wrapped extractor and logs the extraction.
func (e *LoggingTextExtractor) ExtractText(ctx context.Context, path string) (text string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("text extraction",
			"path", path,
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractText(ctx, path)
}
