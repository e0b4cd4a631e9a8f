package dto

import (
	"strings"
	"time"

	"homeserve_backend/internal/models"
)

type CreateBookingRequest struct {
	ProviderID  uint    `json:"provider_id" form:"provider_id" validate:"required" label:"Provider"`
	CategoryID  uint    `json:"category_id" form:"category_id" validate:"required" label:"Service category"`
	BookingDate string  `json:"booking_date" form:"booking_date" validate:"required,date_ymd,not_past" label:"Booking date"`
	BookingTime string  `json:"booking_time" form:"booking_time" validate:"required" label:"Booking time"`
	Address     string  `json:"address" form:"address" validate:"required" label:"Service address"`
	Description string  `json:"description" form:"description"`
	TotalPrice  float64 `json:"total_price" form:"total_price" validate:"gte=0" label:"Total price"`
}

func (r *CreateBookingRequest) Normalize() {
	r.BookingDate = strings.TrimSpace(r.BookingDate)
	r.BookingTime = strings.TrimSpace(r.BookingTime)
	r.Address = strings.TrimSpace(r.Address)
	r.Description = strings.TrimSpace(r.Description)
}

type UpdateBookingStatusRequest struct {
	BookingID uint                 `json:"booking_id" form:"booking_id" validate:"required" label:"Booking ID"`
	Status    models.BookingStatus `json:"status" form:"status" validate:"required,booking_status" required_msg:"Invalid status" label:"Status"`
}

func (r *UpdateBookingStatusRequest) Normalize() {
	r.Status = models.BookingStatus(strings.ToLower(strings.TrimSpace(string(r.Status))))
}

type BookingCreatedResponse struct {
	BookingID uint `json:"booking_id"`
}

// BookingResponse is a booking with the contact details of both parties.
// The user listing shows the provider side, the provider listing the
// customer side; the detail view fills both.
type BookingResponse struct {
	ID                uint                 `json:"id"`
	UserID            uint                 `json:"user_id"`
	ProviderID        uint                 `json:"provider_id"`
	ServiceCategoryID uint                 `json:"category_id"`
	CategoryName      string               `json:"category_name"`
	BookingDate       string               `json:"booking_date"`
	BookingTime       string               `json:"booking_time"`
	Address           string               `json:"address"`
	Description       string               `json:"description"`
	Status            models.BookingStatus `json:"status"`
	TotalPrice        float64              `json:"total_price"`
	CreatedAt         time.Time            `json:"created_at"`
	ProviderName      string               `json:"provider_name,omitempty"`
	ProviderPhone     string               `json:"provider_phone,omitempty"`
	ProviderEmail     string               `json:"provider_email,omitempty"`
	CustomerName      string               `json:"customer_name,omitempty"`
	CustomerPhone     string               `json:"customer_phone,omitempty"`
	CustomerEmail     string               `json:"customer_email,omitempty"`
	HasReview         *bool                `json:"has_review,omitempty"`
}
