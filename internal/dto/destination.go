package dto

// CreateDestinationRequest is the admin payload for a new destination.
type CreateDestinationRequest struct {
	Country         string   `json:"country" validate:"required,max=100"`
	Flag            string   `json:"flag" validate:"max=16"`
	UniversityCount int      `json:"university_count" validate:"gte=0"`
	Description     string   `json:"description" validate:"max=2000"`
	Highlights      []string `json:"highlights" validate:"omitempty,dive,max=300"`
}

// UpdateDestinationRequest is a partial destination update.
type UpdateDestinationRequest struct {
	Country         *string   `json:"country" validate:"omitempty,min=1,max=100"`
	Flag            *string   `json:"flag" validate:"omitempty,max=16"`
	UniversityCount *int      `json:"university_count" validate:"omitempty,gte=0"`
	Description     *string   `json:"description" validate:"omitempty,max=2000"`
	Highlights      *[]string `json:"highlights" validate:"omitempty,dive,max=300"`
}
