package products

import (
	"fmt"
	"strings"

	"github.com/floracart/floracart/internal/platform/httpx"
)

func (s *Service) validate(p Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: product name is required", httpx.ErrValidation)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", httpx.ErrValidation)
	}
	if strings.TrimSpace(p.CategorySlug) == "" {
		return fmt.Errorf("%w: a category must be selected", httpx.ErrValidation)
	}
	if len(p.Images) == 0 {
		return fmt.Errorf("%w: at least one image is required", httpx.ErrValidation)
	}
	for _, img := range p.Images {
		if strings.TrimSpace(img) == "" {
			return fmt.Errorf("%w: image URLs must not be empty", httpx.ErrValidation)
		}
	}
	return nil
}
