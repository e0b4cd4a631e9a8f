package services_test

import (
	"sync"
	"testing"

	"homeserve_backend/internal/auth"
	"homeserve_backend/internal/models"
	"homeserve_backend/internal/services/dto"
	"homeserve_backend/pkg/apperrors"
	"homeserve_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewRequest(b *models.Booking, rating int) *dto.CreateReviewRequest {
	return &dto.CreateReviewRequest{
		BookingID:  b.ID,
		ProviderID: b.ProviderID,
		Rating:     rating,
		Comment:    "  Great work  ",
	}
}

func TestReviewCreate_UpdatesProviderRating(t *testing.T) {
	f := newBookingFixture(t)

	ratings := []int{5, 4, 4}
	var last *dto.ReviewCreatedResponse
	for _, r := range ratings {
		booking := helpers.CreateBooking(t, f.env.DB, f.user, f.provider, models.BookingStatusCompleted)
		resp, err := f.env.ReviewService.Create(f.env.DB, helpers.Identity(f.user), reviewRequest(booking, r))
		require.NoError(t, err)
		last = resp
	}

	// (5 + 4 + 4) / 3 = 4.333...
	assert.Equal(t, 4.33, last.ProviderRating)

	var provider models.Provider
	require.NoError(t, f.env.DB.First(&provider, f.provider.ID).Error)
	assert.Equal(t, 4.33, provider.Rating)

	var review models.Review
	require.NoError(t, f.env.DB.First(&review, last.ReviewID).Error)
	assert.Equal(t, "Great work", review.Comment)
}

func TestReviewCreate_Preconditions(t *testing.T) {
	f := newBookingFixture(t)
	stranger := helpers.CreateUser(t, f.env.DB, "stranger@example.com")
	otherProvider := helpers.CreateProvider(t, f.env.DB, "other@example.com", f.category.ID)

	pending := helpers.CreateBooking(t, f.env.DB, f.user, f.provider, models.BookingStatusPending)
	completed := helpers.CreateBooking(t, f.env.DB, f.user, f.provider, models.BookingStatusCompleted)

	// 1. Only completed bookings can be reviewed.
	_, err := f.env.ReviewService.Create(f.env.DB, helpers.Identity(f.user), reviewRequest(pending, 5))
	assert.ErrorIs(t, err, apperrors.ErrReviewNotAllowed)

	// 2. Someone else's booking looks missing.
	_, err = f.env.ReviewService.Create(f.env.DB, helpers.Identity(stranger), reviewRequest(completed, 5))
	assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)

	// 3. So does a booking paired with the wrong provider.
	req := reviewRequest(completed, 5)
	req.ProviderID = otherProvider.ID
	_, err = f.env.ReviewService.Create(f.env.DB, helpers.Identity(f.user), req)
	assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)

	// 4. First review wins, the second conflicts.
	_, err = f.env.ReviewService.Create(f.env.DB, helpers.Identity(f.user), reviewRequest(completed, 5))
	require.NoError(t, err)
	_, err = f.env.ReviewService.Create(f.env.DB, helpers.Identity(f.user), reviewRequest(completed, 3))
	assert.ErrorIs(t, err, apperrors.ErrReviewExists)

	var provider models.Provider
	require.NoError(t, f.env.DB.First(&provider, f.provider.ID).Error)
	assert.Equal(t, 5.0, provider.Rating)
}

func TestReviewCreate_InputValidation(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.env.ReviewService.Create(f.env.DB, helpers.Identity(f.user), &dto.CreateReviewRequest{Rating: 6})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
	assert.Contains(t, appErr.Message, "Booking ID is required")
	assert.Contains(t, appErr.Message, "Provider ID is required")
	assert.Contains(t, appErr.Message, "Rating must be between 1 and 5")

	booking := helpers.CreateBooking(t, f.env.DB, f.user, f.provider, models.BookingStatusCompleted)
	_, err = f.env.ReviewService.Create(f.env.DB, helpers.Identity(f.user), reviewRequest(booking, 0))
	require.Error(t, err)
	assert.Equal(t, "Rating must be between 1 and 5", err.(*apperrors.AppError).Message)
}

func TestReviewCreate_RequiresUser(t *testing.T) {
	f := newBookingFixture(t)
	booking := helpers.CreateBooking(t, f.env.DB, f.user, f.provider, models.BookingStatusCompleted)

	for _, caller := range []auth.Identity{{}, helpers.Identity(f.provider)} {
		_, err := f.env.ReviewService.Create(f.env.DB, caller, reviewRequest(booking, 5))
		assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)
	}
}

func TestReviewCreate_ConcurrentDuplicates(t *testing.T) {
	f := newBookingFixture(t)
	booking := helpers.CreateBooking(t, f.env.DB, f.user, f.provider, models.BookingStatusCompleted)

	const workers = 6
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(rating int) {
			defer wg.Done()
			_, err := f.env.ReviewService.Create(f.env.DB, helpers.Identity(f.user), reviewRequest(booking, rating))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case apperrors.Is(err, apperrors.ErrReviewExists):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i%5 + 1)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicts)

	var count int64
	f.env.DB.Model(&models.Review{}).Where("booking_id = ?", booking.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestReviewListMine(t *testing.T) {
	f := newBookingFixture(t)
	older := helpers.CreateReview(t, f.env.DB, helpers.CreateBooking(t, f.env.DB, f.user, f.provider, models.BookingStatusCompleted), 4)
	newer := helpers.CreateReview(t, f.env.DB, helpers.CreateBooking(t, f.env.DB, f.user, f.provider, models.BookingStatusCompleted), 2)

	reviews, err := f.env.ReviewService.ListMine(f.env.DB, helpers.Identity(f.provider))
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, newer.ID, reviews[0].ID)
	assert.Equal(t, older.ID, reviews[1].ID)
	assert.Equal(t, f.user.FullName, reviews[0].CustomerName)

	_, err = f.env.ReviewService.ListMine(f.env.DB, helpers.Identity(f.user))
	assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)
}
