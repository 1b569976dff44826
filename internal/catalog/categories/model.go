package categories

import "time"

// Category represents a product category shown in the storefront.
// ItemCount is a denormalized counter of products referencing the slug;
// it is kept in step transactionally and repaired by the recount job.
type Category struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	NameLocalized string    `json:"name_localized,omitempty"`
	Slug          string    `json:"slug"`
	ItemCount     int       `json:"item_count"`
	ImageURL      string    `json:"image_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
