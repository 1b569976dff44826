package products

import "time"

// Product represents a storefront product. Images are ordered; the first
// entry is the cover shown on listing cards. Price is in minor currency
// units and never negative.
type Product struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	NameLocalized  string            `json:"name_localized,omitempty"`
	Price          int64             `json:"price"`
	Description    string            `json:"description"`
	CategorySlug   string            `json:"category_slug"`
	Images         []string          `json:"images"`
	Specifications map[string]string `json:"specifications"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// CoverImage returns the first image URL, or empty when none exist.
func (p Product) CoverImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
