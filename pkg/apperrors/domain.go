package apperrors

import (
	"net/http"
)

// --- auth ---

var (
	ErrInvalidCredentials = New(CodeUnauthorized, "auth", "Invalid email or password", http.StatusUnauthorized)
	ErrNotAuthenticated   = New(CodeUnauthorized, "auth", "Not authenticated", http.StatusUnauthorized)
	ErrLoginToBook        = New(CodeUnauthorized, "auth", "Please login to book a service", http.StatusUnauthorized)
	ErrEmailTaken         = New(CodeConflict, "auth", "Email already registered. Please use a different email or login.", http.StatusConflict)
	ErrTooManyRequests    = New(CodeTooManyRequests, "auth", "Too many requests. Please try again later.", http.StatusTooManyRequests)
)

// --- catalog ---

var (
	ErrProviderNotFound  = NewNotFoundError("catalog", "Provider not found")
	ErrCategoryNotFound  = NewNotFoundError("catalog", "Service category not found")
	ErrInvalidPriceRange = New(CodeValidationFailed, "catalog", "Invalid price range", http.StatusBadRequest)
)

// --- booking ---

const bookingPermissionMessage = "You do not have permission to update this booking"

var (
	ErrBookingNotFound = NewNotFoundError("booking", "Booking not found")
	// ErrBookingAccessDenied and ErrIllegalTransition share the client-facing
	// message but remain distinct values.
	ErrBookingAccessDenied  = New(CodeForbidden, "booking", bookingPermissionMessage, http.StatusForbidden)
	ErrIllegalTransition    = New(CodeIllegalTransition, "booking", bookingPermissionMessage, http.StatusConflict)
	ErrBookingNotVisible    = NewNotFoundError("booking_access", "Access denied")
	ErrInvalidBookingStatus = New(CodeValidationFailed, "booking", "Invalid status", http.StatusBadRequest)
	ErrBookingIDRequired    = New(CodeValidationFailed, "booking", "Booking ID is required", http.StatusBadRequest)
)

// --- review ---

var (
	ErrReviewNotAllowed = New(CodeInvalidState, "review", "You can only review completed bookings", http.StatusConflict)
	ErrReviewExists     = New(CodeConflict, "review", "You have already reviewed this booking", http.StatusConflict)
)

// --- profile ---

var (
	ErrProfileNotFound = NewNotFoundError("profile", "Profile not found")
)
