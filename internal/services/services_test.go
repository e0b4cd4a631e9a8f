package services_test

import (
	"testing"
	"time"

	"homeserve_backend/internal/auth"
	"homeserve_backend/internal/metrics"
	"homeserve_backend/internal/repositories"
	"homeserve_backend/internal/services"
	"homeserve_backend/internal/validator"
	"homeserve_backend/test/helpers"

	"gorm.io/gorm"
)

// testEnv wires every service against one throwaway database.
type testEnv struct {
	DB      *gorm.DB
	Metrics *metrics.Metrics
	Tokens  *auth.TokenIssuer
	*services.ServiceContainer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := helpers.NewTestDB(t)
	m := metrics.New()
	v := validator.New()
	tokens := auth.NewTokenIssuer("test-secret")

	userRepo := repositories.NewUserRepository()
	providerRepo := repositories.NewProviderRepository()
	categoryRepo := repositories.NewCategoryRepository()
	bookingRepo := repositories.NewBookingRepository()
	reviewRepo := repositories.NewReviewRepository()
	sessionRepo := repositories.NewSessionRepository()

	return &testEnv{
		DB:      db,
		Metrics: m,
		Tokens:  tokens,
		ServiceContainer: &services.ServiceContainer{
			AuthService:    services.NewAuthService(userRepo, providerRepo, categoryRepo, sessionRepo, tokens, v, m, time.Hour),
			CatalogService: services.NewCatalogService(categoryRepo, providerRepo),
			BookingService: services.NewBookingService(bookingRepo, providerRepo, categoryRepo, v, m),
			ReviewService:  services.NewReviewService(reviewRepo, bookingRepo, providerRepo, v, m),
			ProfileService: services.NewProfileService(userRepo, providerRepo, categoryRepo, sessionRepo, v),
		},
	}
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format(validator.DateLayout)
}
