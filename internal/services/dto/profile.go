package dto

import (
	"strings"
	"time"

	"homeserve_backend/internal/models"
)

type UpdateProfileRequest struct {
	FullName          string  `json:"full_name" form:"full_name" validate:"required" label:"Full name"`
	Phone             string  `json:"phone" form:"phone" validate:"omitempty,phone" label:"Phone number"`
	Address           string  `json:"address" form:"address"`
	ServiceCategoryID uint    `json:"service_category_id" form:"service_category_id"`
	ExperienceYears   *int    `json:"experience_years" form:"experience_years"`
	HourlyRate        float64 `json:"hourly_rate" form:"hourly_rate"`
	Bio               string  `json:"bio" form:"bio"`
}

func (r *UpdateProfileRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address = strings.TrimSpace(r.Address)
	r.Bio = strings.TrimSpace(r.Bio)
}

func (r *UpdateProfileRequest) ProviderDetails() *ProviderDetails {
	return &ProviderDetails{
		ServiceCategoryID: r.ServiceCategoryID,
		ExperienceYears:   r.ExperienceYears,
		HourlyRate:        r.HourlyRate,
	}
}

// ProfileResponse is the caller's own account. Provider-only fields are
// omitted for users and vice versa.
type ProfileResponse struct {
	Type              models.AccountKind `json:"type"`
	ID                uint               `json:"id"`
	FullName          string             `json:"full_name"`
	Email             string             `json:"email"`
	Phone             string             `json:"phone"`
	Address           string             `json:"address,omitempty"`
	ServiceCategoryID uint               `json:"service_category_id,omitempty"`
	CategoryName      string             `json:"category_name,omitempty"`
	ExperienceYears   *int               `json:"experience_years,omitempty"`
	HourlyRate        float64            `json:"hourly_rate,omitempty"`
	Bio               string             `json:"bio,omitempty"`
	Rating            *float64           `json:"rating,omitempty"`
	TotalJobs         *int               `json:"total_jobs,omitempty"`
	IsVerified        *bool              `json:"is_verified,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
}
