package mock

import (
	"context"

	"github.com/fwojciec/cwsummary"
)

var _ cwsummary.FileService = (*FileService)(nil)

// FileService is a mock implementation of cwsummary.FileService.
type FileService struct {
	FindFileByIDFn func(ctx context.Context, id string) (*cwsummary.File, error)
}

func (s *FileService) FindFileByID(ctx context.Context, id string) (*cwsummary.File, error) {
	return s.FindFileByIDFn(ctx, id)
}

var _ cwsummary.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of cwsummary.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(ctx context.Context, path string) (string, error)
}

func (e *TextExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	return e.ExtractTextFn(ctx, path)
}
