package categories

import (
	"fmt"
	"strings"

	"github.com/floracart/floracart/internal/platform/httpx"
)

func (s *Service) validate(c Category) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: category name is required", httpx.ErrValidation)
	}
	if strings.TrimSpace(c.Slug) == "" {
		return fmt.Errorf("%w: category slug is required", httpx.ErrValidation)
	}
	if strings.TrimSpace(c.ImageURL) == "" {
		return fmt.Errorf("%w: category image is required", httpx.ErrValidation)
	}
	return nil
}
