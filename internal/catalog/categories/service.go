package categories

import (
	"context"
	"fmt"

	"github.com/floracart/floracart/internal/catalog"
	"github.com/floracart/floracart/internal/platform/httpx"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListAll(ctx context.Context) ([]Category, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Category, error) {
	if id <= 0 {
		return Category{}, fmt.Errorf("%w: invalid category ID", httpx.ErrValidation)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (Category, error) {
	if slug == "" {
		return Category{}, fmt.Errorf("%w: category slug is required", httpx.ErrValidation)
	}
	return s.repo.GetBySlug(ctx, slug)
}

// Create stores a new category. When no slug is provided one is derived
// from the name.
func (s *Service) Create(ctx context.Context, category Category) (Category, error) {
	if category.Slug == "" {
		category.Slug = catalog.Slugify(category.Name)
	}
	if err := s.validate(category); err != nil {
		return Category{}, err
	}
	return s.repo.Create(ctx, category)
}

func (s *Service) Update(ctx context.Context, id int64, category Category) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid category ID", httpx.ErrValidation)
	}
	if category.Slug == "" {
		category.Slug = catalog.Slugify(category.Name)
	}
	if err := s.validate(category); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, category)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid category ID", httpx.ErrValidation)
	}
	return s.repo.Delete(ctx, id)
}

// Recount recomputes the denormalized item count from the products table.
// An empty slug recounts every category.
func (s *Service) Recount(ctx context.Context, slug string) error {
	if slug == "" {
		return s.repo.RecountAll(ctx)
	}
	return s.repo.Recount(ctx, slug)
}
