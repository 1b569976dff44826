package products

type ProductForm struct {
	Name           string            `json:"name" validate:"required,max=200"`
	NameLocalized  string            `json:"name_localized" validate:"omitempty,max=200"`
	Price          int64             `json:"price" validate:"gte=0"`
	Description    string            `json:"description" validate:"required"`
	CategorySlug   string            `json:"category_slug" validate:"required,max=200"`
	Images         []string          `json:"images" validate:"required,min=1,dive,url"`
	Specifications map[string]string `json:"specifications"`
}

func (f ProductForm) toProduct() Product {
	specs := f.Specifications
	if specs == nil {
		specs = map[string]string{}
	}
	return Product{
		Name:           f.Name,
		NameLocalized:  f.NameLocalized,
		Price:          f.Price,
		Description:    f.Description,
		CategorySlug:   f.CategorySlug,
		Images:         f.Images,
		Specifications: specs,
	}
}
