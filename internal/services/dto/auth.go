package dto

import (
	"strings"
	"time"

	"homeserve_backend/internal/models"
)

type RegisterRequest struct {
	Kind              models.AccountKind `json:"user_type" form:"user_type" validate:"omitempty,account_kind"`
	FullName          string             `json:"full_name" form:"full_name" validate:"required" label:"Full name"`
	Email             string             `json:"email" form:"email" validate:"required,email" label:"Email"`
	Phone             string             `json:"phone" form:"phone" validate:"required,phone" label:"Phone number"`
	Password          string             `json:"password" form:"password" validate:"required,min=6" label:"Password"`
	ConfirmPassword   string             `json:"confirm_password" form:"confirm_password" validate:"eqfield=Password" msg:"Passwords do not match"`
	Address           string             `json:"address" form:"address"`
	ServiceCategoryID uint               `json:"service_category_id" form:"service_category_id"`
	ExperienceYears   *int               `json:"experience_years" form:"experience_years"`
	HourlyRate        float64            `json:"hourly_rate" form:"hourly_rate"`
	Bio               string             `json:"bio" form:"bio"`
}

// ProviderDetails holds the registration fields only providers must supply.
type ProviderDetails struct {
	ServiceCategoryID uint    `validate:"required" label:"Service category"`
	ExperienceYears   *int    `validate:"required,gte=0" required_msg:"Valid experience years is required" msg:"Valid experience years is required"`
	HourlyRate        float64 `validate:"gt=0" msg:"Valid hourly rate is required"`
}

func (r *RegisterRequest) Normalize() {
	r.Kind = models.AccountKind(strings.ToLower(strings.TrimSpace(string(r.Kind))))
	if r.Kind == "" {
		r.Kind = models.AccountKindUser
	}
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address = strings.TrimSpace(r.Address)
	r.Bio = strings.TrimSpace(r.Bio)
}

func (r *RegisterRequest) ProviderDetails() *ProviderDetails {
	return &ProviderDetails{
		ServiceCategoryID: r.ServiceCategoryID,
		ExperienceYears:   r.ExperienceYears,
		HourlyRate:        r.HourlyRate,
	}
}

type LoginRequest struct {
	Kind     models.AccountKind `json:"user_type" form:"user_type" validate:"omitempty,account_kind"`
	Email    string             `json:"email" form:"email" validate:"required" label:"Email"`
	Password string             `json:"password" form:"password" validate:"required" label:"Password"`
}

func (r *LoginRequest) Normalize() {
	r.Kind = models.AccountKind(strings.ToLower(strings.TrimSpace(string(r.Kind))))
	if r.Kind == "" {
		r.Kind = models.AccountKindUser
	}
	r.Email = strings.TrimSpace(r.Email)
}

// SessionResponse is returned by login and registration.
type SessionResponse struct {
	Type      models.AccountKind `json:"type"`
	ID        uint               `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expires_at"`
}

type IdentityResponse struct {
	Type  models.AccountKind `json:"type"`
	ID    uint               `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
}
