package dto

import (
	"strings"
	"time"
)

type CreateReviewRequest struct {
	BookingID  uint   `json:"booking_id" form:"booking_id" validate:"required" label:"Booking ID"`
	ProviderID uint   `json:"provider_id" form:"provider_id" validate:"required" label:"Provider ID"`
	Rating     int    `json:"rating" form:"rating" validate:"min=1,max=5" msg:"Rating must be between 1 and 5"`
	Comment    string `json:"comment" form:"comment"`
}

func (r *CreateReviewRequest) Normalize() {
	r.Comment = strings.TrimSpace(r.Comment)
}

type ReviewResponse struct {
	ID           uint      `json:"id"`
	BookingID    uint      `json:"booking_id"`
	UserID       uint      `json:"user_id"`
	ProviderID   uint      `json:"provider_id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CustomerName string    `json:"customer_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReviewCreatedResponse struct {
	ReviewID       uint    `json:"review_id"`
	ProviderRating float64 `json:"provider_rating"`
}
