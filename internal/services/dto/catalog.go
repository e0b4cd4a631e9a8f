package dto

import (
	"time"

	"homeserve_backend/internal/models"
)

// ProviderFilter carries the raw query values of a provider search.
type ProviderFilter struct {
	Category uint    `form:"category"`
	Rating   float64 `form:"rating"`
	Price    string  `form:"price"`
}

type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type ProviderResponse struct {
	ID                uint      `json:"id"`
	FullName          string    `json:"full_name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	ServiceCategoryID uint      `json:"service_category_id"`
	CategoryName      string    `json:"category_name"`
	ExperienceYears   int       `json:"experience_years"`
	HourlyRate        float64   `json:"hourly_rate"`
	Bio               string    `json:"bio"`
	Rating            float64   `json:"rating"`
	TotalJobs         int       `json:"total_jobs"`
	IsVerified        bool      `json:"is_verified"`
	CreatedAt         time.Time `json:"created_at"`
}

func NewCategoryResponse(c *models.ServiceCategory) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description, Icon: c.Icon}
}

func NewProviderResponse(p *models.Provider, categoryName string) ProviderResponse {
	return ProviderResponse{
		ID:                p.ID,
		FullName:          p.FullName,
		Email:             p.Email,
		Phone:             p.Phone,
		ServiceCategoryID: p.ServiceCategoryID,
		CategoryName:      categoryName,
		ExperienceYears:   p.ExperienceYears,
		HourlyRate:        p.HourlyRate,
		Bio:               p.Bio,
		Rating:            p.Rating,
		TotalJobs:         p.TotalJobs,
		IsVerified:        p.IsVerified,
		CreatedAt:         p.CreatedAt,
	}
}
