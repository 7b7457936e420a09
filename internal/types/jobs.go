package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// CreateJobRequest represents a supervisor's new posting. DurationHours
// is capped at 12 as a worker-safety rule, matching the schema.
type CreateJobRequest struct {
	Title            string     `json:"title" validate:"required,min=1"`
	Company          string     `json:"company,omitempty"`
	LocationName     string     `json:"location_name" validate:"required,min=1"`
	Description      string     `json:"description,omitempty"`
	WageType         string     `json:"wage_type" validate:"required,oneof=hourly daily"`
	WageAmount       int64      `json:"wage_amount" validate:"required,gt=0"`
	RequiredDate     time.Time  `json:"required_date" validate:"required"`
	DurationHours    int        `json:"duration_hours" validate:"required,min=1,max=12"`
	LaborersRequired int        `json:"laborers_required" validate:"required,min=1"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
}

// ToggleListingRequest flips a posting's feed visibility.
type ToggleListingRequest struct {
	IsListed *bool `json:"is_listed" validate:"required"`
}

// ReviewApplicationRequest resolves a pending application.
type ReviewApplicationRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed rejected"`
}

// Validate validates the CreateJobRequest using the validator.
func (r *CreateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ToggleListingRequest using the validator.
func (r *ToggleListingRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ReviewApplicationRequest using the validator.
func (r *ReviewApplicationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
