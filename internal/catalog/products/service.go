package products

import (
	"context"
	"fmt"

	"github.com/floracart/floracart/internal/platform/httpx"
)

// DefaultPageSize matches the storefront's listing grid.
const DefaultPageSize = 8

// RecountScheduler requests a background reconciliation of a category's
// item count after a catalog mutation.
type RecountScheduler interface {
	ScheduleRecount(ctx context.Context, slug string)
}

// ListQuery carries the storefront listing parameters in wire form.
type ListQuery struct {
	CategorySlug string
	After        string
	Limit        int
}

// ListResult is one resolved page. HasMore is the full-page heuristic: it
// stays true when the page came back full, so a count that is an exact
// multiple of the page size costs one extra empty fetch.
type ListResult struct {
	Items      []Product `json:"items"`
	NextCursor string    `json:"next_cursor,omitempty"`
	HasMore    bool      `json:"has_more"`
}

type Service struct {
	repo     Repository
	pageSize int
	recounts RecountScheduler
}

func NewService(repo Repository, pageSize int, recounts RecountScheduler) *Service {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Service{repo: repo, pageSize: pageSize, recounts: recounts}
}

func (s *Service) Get(ctx context.Context, id int64) (Product, error) {
	if id <= 0 {
		return Product{}, fmt.Errorf("%w: invalid product ID", httpx.ErrValidation)
	}
	return s.repo.Get(ctx, id)
}

// ListPage resolves one page of the catalog listing.
func (s *Service) ListPage(ctx context.Context, q ListQuery) (ListResult, error) {
	limit := q.Limit
	if limit < 1 || limit > 100 {
		limit = s.pageSize
	}

	req := ListRequest{CategorySlug: q.CategorySlug, Limit: limit}
	if q.After != "" {
		cursor, err := DecodeCursor(q.After)
		if err != nil {
			return ListResult{}, err
		}
		req.After = &cursor
	}

	items, err := s.repo.List(ctx, req)
	if err != nil {
		return ListResult{}, err
	}

	result := ListResult{Items: items, HasMore: len(items) == limit}
	if len(items) > 0 {
		last := items[len(items)-1]
		result.NextCursor = EncodeCursor(Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	if result.Items == nil {
		result.Items = []Product{}
	}
	return result, nil
}

func (s *Service) Create(ctx context.Context, product Product) (Product, error) {
	if err := s.validate(product); err != nil {
		return Product{}, err
	}
	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return Product{}, err
	}
	s.scheduleRecount(ctx, created.CategorySlug)
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, product Product) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid product ID", httpx.ErrValidation)
	}
	if err := s.validate(product); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, id, product); err != nil {
		return err
	}
	s.scheduleRecount(ctx, product.CategorySlug)
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid product ID", httpx.ErrValidation)
	}
	product, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.scheduleRecount(ctx, product.CategorySlug)
	return nil
}

func (s *Service) scheduleRecount(ctx context.Context, slug string) {
	if s.recounts == nil || slug == "" {
		return
	}
	s.recounts.ScheduleRecount(ctx, slug)
}
