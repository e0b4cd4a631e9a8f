package handlers

import (
	"net/http"
	"strings"

	"homeserve_backend/internal/models"
	"homeserve_backend/internal/services"
	"homeserve_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	*BaseHandler
	bookingService services.BookingService
}

func NewBookingHandler(base *BaseHandler, bookingService services.BookingService) *BookingHandler {
	return &BookingHandler{
		BaseHandler:    base,
		bookingService: bookingService,
	}
}

func (h *BookingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
		bookings.GET("/:id", h.GetBooking)
		bookings.POST("/:id/status", h.UpdateStatus)
		bookings.POST("/status", h.UpdateStatus)
	}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if !h.Bind(c, &req) {
		return
	}

	created, err := h.bookingService.Create(h.GetDB(c), h.Caller(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Success(c, http.StatusCreated, "Booking created successfully!", created)
}

// ListBookings serves ?as=user|provider; without it the caller's own side
// is listed.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	as := models.AccountKind(strings.ToLower(strings.TrimSpace(c.Query("as"))))

	bookings, err := h.bookingService.List(h.GetDB(c), h.Caller(c), as)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Success(c, http.StatusOK, "Bookings retrieved successfully", bookings)
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	booking, err := h.bookingService.Get(h.GetDB(c), h.Caller(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Success(c, http.StatusOK, "Booking retrieved successfully", booking)
}

// UpdateStatus takes the booking id from the path when present, otherwise
// from the body.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateBookingStatusRequest
	if !h.Bind(c, &req) {
		return
	}

	if c.Param("id") != "" {
		id, err := ParseParamUint(c, "id")
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		req.BookingID = id
	}

	if err := h.bookingService.UpdateStatus(h.GetDB(c), h.Caller(c), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Success(c, http.StatusOK, "Booking updated successfully", nil)
}
