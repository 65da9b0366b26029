package dto

// CreatePackageRequest is the admin payload for a new package.
type CreatePackageRequest struct {
	Title        string   `json:"title" validate:"required,max=200"`
	Subtitle     *string  `json:"subtitle" validate:"omitempty,max=300"`
	Icon         string   `json:"icon" validate:"omitempty,max=16"`
	Price        int64    `json:"price" validate:"gte=0"`
	Features     []string `json:"features" validate:"omitempty,dive,max=300"`
	Images       []string `json:"images" validate:"omitempty,dive,url"`
	IsPopular    bool     `json:"is_popular"`
	IsActive     *bool    `json:"is_active"`
	DisplayOrder *int     `json:"display_order" validate:"omitempty,gte=0"`
}

// UpdatePackageRequest is a partial package update; omitted fields are kept.
type UpdatePackageRequest struct {
	Title        *string   `json:"title" validate:"omitempty,min=1,max=200"`
	Subtitle     *string   `json:"subtitle" validate:"omitempty,max=300"`
	Icon         *string   `json:"icon" validate:"omitempty,max=16"`
	Price        *int64    `json:"price" validate:"omitempty,gte=0"`
	Features     *[]string `json:"features" validate:"omitempty,dive,max=300"`
	Images       *[]string `json:"images" validate:"omitempty,dive,url"`
	IsPopular    *bool     `json:"is_popular"`
	IsActive     *bool     `json:"is_active"`
	DisplayOrder *int      `json:"display_order" validate:"omitempty,gte=0"`
}

// PackageImageResponse is returned after an admin image upload.
type PackageImageResponse struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}
