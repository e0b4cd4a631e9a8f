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

type ReviewService interface {
	// Create reviews a completed booking of the caller and recomputes the
	// provider's rating in the same transaction.
	Create(db *gorm.DB, caller auth.Identity, req *dto.CreateReviewRequest) (*dto.ReviewCreatedResponse, error)
	ListMine(db *gorm.DB, caller auth.Identity) ([]dto.ReviewResponse, error)
}

type ReviewServiceImpl struct {
	reviewRepo   repositories.ReviewRepository
	bookingRepo  repositories.BookingRepository
	providerRepo repositories.ProviderRepository
	validator    *validator.Validator
	metrics      *metrics.Metrics
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	bookingRepo repositories.BookingRepository,
	providerRepo repositories.ProviderRepository,
	v *validator.Validator,
	m *metrics.Metrics,
) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo:   reviewRepo,
		bookingRepo:  bookingRepo,
		providerRepo: providerRepo,
		validator:    v,
		metrics:      m,
	}
}

func (s *ReviewServiceImpl) Create(db *gorm.DB, caller auth.Identity, req *dto.CreateReviewRequest) (*dto.ReviewCreatedResponse, error) {
	if !caller.IsUser() {
		return nil, apperrors.ErrNotAuthenticated
	}

	req.Normalize()
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	review := &models.Review{
		BookingID:  req.BookingID,
		UserID:     caller.ID,
		ProviderID: req.ProviderID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	var rating float64
	err := db.Transaction(func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindOwnedForUpdate(tx, req.BookingID, caller.ID, req.ProviderID)
		if errors.Is(err, repositories.ErrBookingNotFound) {
			return apperrors.ErrBookingNotFound
		}
		if err != nil {
			return err
		}
		if booking.Status != models.BookingStatusCompleted {
			return apperrors.ErrReviewNotAllowed
		}

		exists, err := s.reviewRepo.ExistsForBooking(tx, booking.ID)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.ErrReviewExists
		}

		if err := s.reviewRepo.Create(tx, review); err != nil {
			if errors.Is(err, repositories.ErrReviewExists) {
				return apperrors.ErrReviewExists
			}
			return err
		}

		stats, err := s.reviewRepo.RatingStats(tx, booking.ProviderID)
		if err != nil {
			return err
		}
		rating = stats.Average()
		return s.providerRepo.SetRating(tx, booking.ProviderID, rating)
	})
	if err != nil {
		return nil, passThrough(err, "Error submitting review")
	}

	s.metrics.ReviewSubmitted(review.Rating)
	logger.Info("review submitted",
		"review_id", review.ID,
		"booking_id", review.BookingID,
		"provider_id", review.ProviderID,
		"provider_rating", rating,
	)
	return &dto.ReviewCreatedResponse{ReviewID: review.ID, ProviderRating: rating}, nil
}

func (s *ReviewServiceImpl) ListMine(db *gorm.DB, caller auth.Identity) ([]dto.ReviewResponse, error) {
	if !caller.IsProvider() {
		return nil, apperrors.ErrNotAuthenticated
	}

	rows, err := s.reviewRepo.ListForProvider(db, caller.ID)
	if err != nil {
		return nil, apperrors.StorageError(err, "Error retrieving reviews")
	}

	result := make([]dto.ReviewResponse, 0, len(rows))
	for _, r := range rows {
		result = append(result, dto.ReviewResponse{
			ID:           r.ID,
			BookingID:    r.BookingID,
			UserID:       r.UserID,
			ProviderID:   r.ProviderID,
			Rating:       r.Rating,
			Comment:      r.Comment,
			CustomerName: r.CustomerName,
			CreatedAt:    r.CreatedAt,
		})
	}
	return result, nil
}
