package mock

import (
	"context"

	"github.com/fwojciec/cwsummary"
)

var _ cwsummary.PageService = (*PageService)(nil)

// PageService is a mock implementation of cwsummary.PageService.
type PageService struct {
	CreatePageFn        func(ctx context.Context, page *cwsummary.Page) error
	FindPageByIDFn      func(ctx context.Context, id string) (*cwsummary.Page, error)
	FindPageByBlockIDFn func(ctx context.Context, blockID string) (*cwsummary.Page, error)
	FindPagesFn         func(ctx context.Context, filter cwsummary.PageFilter) ([]*cwsummary.Page, error)
	DeletePageFn        func(ctx context.Context, id string) error
}

func (s *PageService) CreatePage(ctx context.Context, page *cwsummary.Page) error {
	return s.CreatePageFn(ctx, page)
}

func (s *PageService) FindPageByID(ctx context.Context, id string) (*cwsummary.Page, error) {
	return s.FindPageByIDFn(ctx, id)
}

func (s *PageService) FindPageByBlockID(ctx context.Context, blockID string) (*cwsummary.Page, error) {
	return s.FindPageByBlockIDFn(ctx, blockID)
}

func (s *PageService) FindPages(ctx context.Context, filter cwsummary.PageFilter) ([]*cwsummary.Page, error) {
	return s.FindPagesFn(ctx, filter)
}

func (s *PageService) DeletePage(ctx context.Context, id string) error {
	return s.DeletePageFn(ctx, id)
}
