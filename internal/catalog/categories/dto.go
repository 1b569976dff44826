package categories

type CategoryForm struct {
	Name          string `json:"name" validate:"required,max=200"`
	NameLocalized string `json:"name_localized" validate:"omitempty,max=200"`
	Slug          string `json:"slug" validate:"omitempty,max=200"`
	ImageURL      string `json:"image_url" validate:"required,url"`
}

func (f CategoryForm) toCategory() Category {
	return Category{
		Name:          f.Name,
		NameLocalized: f.NameLocalized,
		Slug:          f.Slug,
		ImageURL:      f.ImageURL,
	}
}
