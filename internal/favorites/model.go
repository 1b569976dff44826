package favorites

import "github.com/floracart/floracart/internal/catalog/products"

// Snapshot is a copy of a product's fields captured at favorite time. It
// is deliberately not a live reference; later edits to the product do not
// rewrite saved favorites.
type Snapshot struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	NameLocalized  string            `json:"name_localized,omitempty"`
	Price          int64             `json:"price"`
	Description    string            `json:"description"`
	CategorySlug   string            `json:"category_slug"`
	Images         []string          `json:"images"`
	Specifications map[string]string `json:"specifications"`
}

// SnapshotOf captures a product into a favorite snapshot.
func SnapshotOf(p products.Product) Snapshot {
	images := make([]string, len(p.Images))
	copy(images, p.Images)
	specs := make(map[string]string, len(p.Specifications))
	for k, v := range p.Specifications {
		specs[k] = v
	}
	return Snapshot{
		ID:             p.ID,
		Name:           p.Name,
		NameLocalized:  p.NameLocalized,
		Price:          p.Price,
		Description:    p.Description,
		CategorySlug:   p.CategorySlug,
		Images:         images,
		Specifications: specs,
	}
}
