package services

import (
	"errors"

	"homeserve_backend/internal/auth"
	"homeserve_backend/internal/logger"
	"homeserve_backend/internal/metrics"
	"homeserve_backend/internal/models"
	"homeserve_backend/internal/repositories"
	"homeserve_backend/internal/services/dto"
	"homeserve_backend/internal/validator"
	"homeserve_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type BookingService interface {
	Create(db *gorm.DB, caller auth.Identity, req *dto.CreateBookingRequest) (*dto.BookingCreatedResponse, error)
	// List returns the caller's bookings, newest first. `as` must match the
	// caller's kind; an empty value means the caller's own kind.
	List(db *gorm.DB, caller auth.Identity, as models.AccountKind) ([]dto.BookingResponse, error)
	Get(db *gorm.DB, caller auth.Identity, id uint) (*dto.BookingResponse, error)
	UpdateStatus(db *gorm.DB, caller auth.Identity, req *dto.UpdateBookingStatusRequest) error
}

type BookingServiceImpl struct {
	bookingRepo  repositories.BookingRepository
	providerRepo repositories.ProviderRepository
	categoryRepo repositories.CategoryRepository
	validator    *validator.Validator
	metrics      *metrics.Metrics
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	providerRepo repositories.ProviderRepository,
	categoryRepo repositories.CategoryRepository,
	v *validator.Validator,
	m *metrics.Metrics,
) BookingService {
	return &BookingServiceImpl{
		bookingRepo:  bookingRepo,
		providerRepo: providerRepo,
		categoryRepo: categoryRepo,
		validator:    v,
		metrics:      m,
	}
}

func (s *BookingServiceImpl) Create(db *gorm.DB, caller auth.Identity, req *dto.CreateBookingRequest) (*dto.BookingCreatedResponse, error) {
	if !caller.IsUser() {
		return nil, apperrors.ErrLoginToBook
	}

	req.Normalize()
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		UserID:            caller.ID,
		ProviderID:        req.ProviderID,
		ServiceCategoryID: req.CategoryID,
		BookingDate:       req.BookingDate,
		BookingTime:       req.BookingTime,
		Address:           req.Address,
		Description:       req.Description,
		Status:            models.BookingStatusPending,
		TotalPrice:        req.TotalPrice,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		provider, err := s.providerRepo.FindByID(tx, req.ProviderID)
		if errors.Is(err, repositories.ErrProviderNotFound) {
			return apperrors.ErrProviderNotFound
		}
		if err != nil {
			return err
		}

		if _, err := s.categoryRepo.FindByID(tx, req.CategoryID); err != nil {
			if errors.Is(err, repositories.ErrCategoryNotFound) {
				return apperrors.ErrCategoryNotFound
			}
			return err
		}

		if booking.TotalPrice == 0 {
			booking.TotalPrice = provider.HourlyRate
		}
		return s.bookingRepo.Create(tx, booking)
	})
	if err != nil {
		return nil, passThrough(err, "Error creating booking. Please try again.")
	}

	s.metrics.BookingCreated()
	logger.Info("booking created", "booking_id", booking.ID, "user_id", caller.ID, "provider_id", booking.ProviderID)
	return &dto.BookingCreatedResponse{BookingID: booking.ID}, nil
}

func (s *BookingServiceImpl) List(db *gorm.DB, caller auth.Identity, as models.AccountKind) ([]dto.BookingResponse, error) {
	if as == "" {
		as = caller.Kind
	}
	if !caller.IsAuthenticated() || as != caller.Kind {
		return nil, apperrors.ErrNotAuthenticated
	}

	var (
		rows []repositories.BookingDetails
		err  error
	)
	if caller.Kind == models.AccountKindProvider {
		rows, err = s.bookingRepo.ListForProvider(db, caller.ID)
	} else {
		rows, err = s.bookingRepo.ListForUser(db, caller.ID)
	}
	if err != nil {
		return nil, apperrors.StorageError(err, "Error retrieving bookings")
	}

	result := make([]dto.BookingResponse, 0, len(rows))
	for i := range rows {
		result = append(result, bookingResponse(&rows[i], caller.Kind))
	}
	return result, nil
}

func (s *BookingServiceImpl) Get(db *gorm.DB, caller auth.Identity, id uint) (*dto.BookingResponse, error) {
	if !caller.IsAuthenticated() {
		return nil, apperrors.ErrNotAuthenticated
	}
	if id == 0 {
		return nil, apperrors.ErrBookingIDRequired
	}

	details, err := s.bookingRepo.FindDetails(db, id)
	if errors.Is(err, repositories.ErrBookingNotFound) {
		return nil, apperrors.ErrBookingNotFound
	}
	if err != nil {
		return nil, apperrors.StorageError(err, "Error retrieving booking details")
	}

	if _, ok := details.PartyOf(caller.Kind, caller.ID); !ok {
		return nil, apperrors.ErrBookingNotVisible
	}

	resp := bookingResponse(details, "")
	return &resp, nil
}

// UpdateStatus applies one lifecycle transition. The read, the status write
// and the job counter update commit together or not at all; a concurrent
// writer that changed the status first makes this call fail as an illegal
// transition.
func (s *BookingServiceImpl) UpdateStatus(db *gorm.DB, caller auth.Identity, req *dto.UpdateBookingStatusRequest) error {
	if !caller.IsAuthenticated() {
		return apperrors.ErrNotAuthenticated
	}

	req.Normalize()
	if err := validate(s.validator, req); err != nil {
		return err
	}

	var from models.BookingStatus
	err := db.Transaction(func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindByIDForUpdate(tx, req.BookingID)
		if errors.Is(err, repositories.ErrBookingNotFound) {
			return apperrors.ErrBookingNotFound
		}
		if err != nil {
			return err
		}

		party, ok := booking.PartyOf(caller.Kind, caller.ID)
		if !ok {
			return apperrors.ErrBookingAccessDenied
		}
		if !models.CanTransition(booking.Status, req.Status, party) {
			return apperrors.ErrIllegalTransition
		}

		swapped, err := s.bookingRepo.CompareAndSetStatus(tx, booking.ID, booking.Status, req.Status)
		if err != nil {
			return err
		}
		if !swapped {
			return apperrors.ErrIllegalTransition
		}

		if req.Status == models.BookingStatusCompleted {
			if err := s.providerRepo.IncrementTotalJobs(tx, booking.ProviderID); err != nil {
				return err
			}
		}

		from = booking.Status
		return nil
	})
	if err != nil {
		return passThrough(err, "Error updating booking")
	}

	s.metrics.BookingTransition(from, req.Status)
	logger.Info("booking status updated",
		"booking_id", req.BookingID,
		"from", from,
		"to", req.Status,
		"by", caller.Kind,
	)
	return nil
}

// bookingResponse shows the counterpart of `viewer`; an empty viewer gets
// both parties.
func bookingResponse(d *repositories.BookingDetails, viewer models.AccountKind) dto.BookingResponse {
	resp := dto.BookingResponse{
		ID:                d.ID,
		UserID:            d.UserID,
		ProviderID:        d.ProviderID,
		ServiceCategoryID: d.ServiceCategoryID,
		CategoryName:      d.CategoryName,
		BookingDate:       d.BookingDate,
		BookingTime:       d.BookingTime,
		Address:           d.Address,
		Description:       d.Description,
		Status:            d.Status,
		TotalPrice:        d.TotalPrice,
		CreatedAt:         d.CreatedAt,
	}

	if viewer != models.AccountKindProvider {
		resp.ProviderName = d.ProviderName
		resp.ProviderPhone = d.ProviderPhone
		resp.ProviderEmail = d.ProviderEmail
		hasReview := d.HasReview
		resp.HasReview = &hasReview
	}
	if viewer != models.AccountKindUser {
		resp.CustomerName = d.CustomerName
		resp.CustomerPhone = d.CustomerPhone
		resp.CustomerEmail = d.CustomerEmail
	}
	return resp
}
