package repositories_test

import (
	"testing"
	"time"

	"homeserve_backend/internal/models"
	"homeserve_backend/internal/repositories"
	"homeserve_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBookingCompareAndSetStatus(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewBookingRepository()
	category := helpers.CreateCategory(t, db, "Plumbing")
	user := helpers.CreateUser(t, db, "cas@example.com")
	provider := helpers.CreateProvider(t, db, "cas-pro@example.com", category.ID)
	booking := helpers.CreateBooking(t, db, user, provider, models.BookingStatusPending)

	swapped, err := repo.CompareAndSetStatus(db, booking.ID, models.BookingStatusPending, models.BookingStatusAccepted)
	require.NoError(t, err)
	assert.True(t, swapped)

	// Stale observation: the row is no longer pending.
	swapped, err = repo.CompareAndSetStatus(db, booking.ID, models.BookingStatusPending, models.BookingStatusCancelled)
	require.NoError(t, err)
	assert.False(t, swapped)

	stored, err := repo.FindByID(db, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusAccepted, stored.Status)
}

func TestBookingFindOwnedForUpdate(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewBookingRepository()
	category := helpers.CreateCategory(t, db, "Plumbing")
	user := helpers.CreateUser(t, db, "owned@example.com")
	provider := helpers.CreateProvider(t, db, "owned-pro@example.com", category.ID)
	booking := helpers.CreateBooking(t, db, user, provider, models.BookingStatusCompleted)

	err := db.Transaction(func(tx *gorm.DB) error {
		found, err := repo.FindOwnedForUpdate(tx, booking.ID, user.ID, provider.ID)
		require.NoError(t, err)
		assert.Equal(t, booking.ID, found.ID)

		_, err = repo.FindOwnedForUpdate(tx, booking.ID, user.ID, provider.ID+1)
		assert.ErrorIs(t, err, repositories.ErrBookingNotFound)

		_, err = repo.FindByIDForUpdate(tx, 9999)
		assert.ErrorIs(t, err, repositories.ErrBookingNotFound)
		return nil
	})
	require.NoError(t, err)
}

func TestBookingDetails(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewBookingRepository()
	category := helpers.CreateCategory(t, db, "Carpentry")
	user := helpers.CreateUser(t, db, "details@example.com")
	provider := helpers.CreateProvider(t, db, "details-pro@example.com", category.ID)
	reviewed := helpers.CreateBooking(t, db, user, provider, models.BookingStatusCompleted)
	plain := helpers.CreateBooking(t, db, user, provider, models.BookingStatusPending)
	helpers.CreateReview(t, db, reviewed, 4)

	details, err := repo.FindDetails(db, reviewed.ID)
	require.NoError(t, err)
	assert.Equal(t, "Carpentry", details.CategoryName)
	assert.Equal(t, provider.FullName, details.ProviderName)
	assert.Equal(t, user.Email, details.CustomerEmail)
	assert.True(t, details.HasReview)

	rows, err := repo.ListForProvider(db, provider.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, plain.ID, rows[0].ID)
	assert.False(t, rows[0].HasReview)

	_, err = repo.FindDetails(db, 9999)
	assert.ErrorIs(t, err, repositories.ErrBookingNotFound)
}

func TestReviewUniquePerBooking(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewReviewRepository()
	category := helpers.CreateCategory(t, db, "Painting")
	user := helpers.CreateUser(t, db, "rev@example.com")
	provider := helpers.CreateProvider(t, db, "rev-pro@example.com", category.ID)
	booking := helpers.CreateBooking(t, db, user, provider, models.BookingStatusCompleted)

	first := &models.Review{BookingID: booking.ID, UserID: user.ID, ProviderID: provider.ID, Rating: 3}
	require.NoError(t, repo.Create(db, first))

	second := &models.Review{BookingID: booking.ID, UserID: user.ID, ProviderID: provider.ID, Rating: 4}
	assert.ErrorIs(t, repo.Create(db, second), repositories.ErrReviewExists)

	exists, err := repo.ExistsForBooking(db, booking.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestReviewRatingStats(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewReviewRepository()
	category := helpers.CreateCategory(t, db, "Painting")
	user := helpers.CreateUser(t, db, "stats@example.com")
	provider := helpers.CreateProvider(t, db, "stats-pro@example.com", category.ID)

	stats, err := repo.RatingStats(db, provider.ID)
	require.NoError(t, err)
	assert.Zero(t, stats.Count)
	assert.Zero(t, stats.Average())

	for _, r := range []int{5, 5, 4} {
		helpers.CreateReview(t, db, helpers.CreateBooking(t, db, user, provider, models.BookingStatusCompleted), r)
	}

	stats, err = repo.RatingStats(db, provider.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Count)
	assert.Equal(t, 14.0, stats.Sum)
	assert.Equal(t, 4.67, stats.Average())
}

func TestRatingStatsAverageRounding(t *testing.T) {
	tests := []struct {
		count int64
		sum   float64
		want  float64
	}{
		{0, 0, 0},
		{1, 5, 5},
		{3, 13, 4.33},
		{6, 25, 4.17},
		{8, 30, 3.75},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, repositories.RatingStats{Count: tt.count, Sum: tt.sum}.Average())
	}
}

// Email uniqueness holds within a table, not across account kinds.
func TestAccountEmailUniqueness(t *testing.T) {
	db := helpers.NewTestDB(t)
	users := repositories.NewUserRepository()
	providers := repositories.NewProviderRepository()
	category := helpers.CreateCategory(t, db, "HVAC")

	require.NoError(t, users.Create(db, &models.User{FullName: "A", Email: "same@example.com", PasswordHash: "x", Phone: "5551234"}))
	assert.ErrorIs(t, users.Create(db, &models.User{FullName: "B", Email: "same@example.com", PasswordHash: "x", Phone: "5551234"}), repositories.ErrEmailTaken)

	require.NoError(t, providers.Create(db, &models.Provider{FullName: "C", Email: "same@example.com", PasswordHash: "x", Phone: "5551234", ServiceCategoryID: category.ID, HourlyRate: 10}))

	found, err := users.FindByEmail(db, "same@example.com")
	require.NoError(t, err)
	assert.Equal(t, "A", found.FullName)

	_, err = providers.FindByEmail(db, "missing@example.com")
	assert.ErrorIs(t, err, repositories.ErrProviderNotFound)
}

func TestProviderCounters(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewProviderRepository()
	category := helpers.CreateCategory(t, db, "Cleaning")
	provider := helpers.CreateProvider(t, db, "count@example.com", category.ID)

	require.NoError(t, repo.IncrementTotalJobs(db, provider.ID))
	require.NoError(t, repo.IncrementTotalJobs(db, provider.ID))
	require.NoError(t, repo.SetRating(db, provider.ID, 4.25))
	assert.ErrorIs(t, repo.IncrementTotalJobs(db, 9999), repositories.ErrProviderNotFound)

	stored, err := repo.FindByID(db, provider.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.TotalJobs)
	assert.Equal(t, 4.25, stored.Rating)
}

func TestSessionLifecycle(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewSessionRepository()
	now := time.Now()

	live := &models.Session{ID: "live", Kind: models.AccountKindUser, AccountID: 1, Name: "Old", ExpiresAt: now.Add(time.Hour)}
	stale := &models.Session{ID: "stale", Kind: models.AccountKindUser, AccountID: 1, ExpiresAt: now.Add(-time.Hour)}
	require.NoError(t, repo.Create(db, live))
	require.NoError(t, repo.Create(db, stale))

	removed, err := repo.DeleteExpired(db, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	require.NoError(t, repo.UpdateName(db, "live", "New"))
	found, err := repo.FindByID(db, "live")
	require.NoError(t, err)
	assert.Equal(t, "New", found.Name)

	require.NoError(t, repo.Delete(db, "live"))
	require.NoError(t, repo.Delete(db, "live"))
	_, err = repo.FindByID(db, "live")
	assert.ErrorIs(t, err, repositories.ErrSessionNotFound)
}
