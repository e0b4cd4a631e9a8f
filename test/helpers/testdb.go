package helpers

import (
	"fmt"
	"io"
	"path/filepath"
	"testing"
	"time"

	"homeserve_backend/database"
	"homeserve_backend/internal/auth"
	"homeserve_backend/internal/config"
	"homeserve_backend/internal/logger"
	"homeserve_backend/internal/models"

	"gorm.io/gorm"
)

// TestPassword is the plaintext password of every fixture account.
const TestPassword = "password123"

var passwordHash string

// TestConfig returns a configuration pointing at a fresh SQLite file.
func TestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Server.Env = "test"
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = filepath.Join(t.TempDir(), "homeserve_test.db") + "?_foreign_keys=on&_busy_timeout=5000"
	cfg.Session.Secret = "test-secret"
	cfg.Seed.DemoData = false
	cfg.RateLimit.AuthPerMinute = 1000
	return cfg
}

// NewTestDB opens a migrated throwaway database that is closed with the test.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return OpenTestDB(t, TestConfig(t))
}

func OpenTestDB(t *testing.T, cfg *config.Config) *gorm.DB {
	t.Helper()
	logger.InitWithWriter("test", io.Discard)

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Не удалось подключиться к тестовой БД: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Не удалось выполнить AutoMigrate для тестовой БД: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func hashedTestPassword(t *testing.T) string {
	t.Helper()
	if passwordHash == "" {
		hash, err := auth.HashPassword(TestPassword)
		if err != nil {
			t.Fatalf("Не удалось хешировать пароль: %v", err)
		}
		passwordHash = hash
	}
	return passwordHash
}

func CreateCategory(t *testing.T, db *gorm.DB, name string) *models.ServiceCategory {
	t.Helper()
	category := &models.ServiceCategory{Name: name, Icon: "fa-wrench"}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create category %s: %v", name, err)
	}
	return category
}

func CreateUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		FullName:     "User " + email,
		Email:        email,
		PasswordHash: hashedTestPassword(t),
		Phone:        "555-1234",
		Address:      "1 Test Street",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return user
}

// CreateProvider creates a provider; mutate lets a test adjust fields first.
func CreateProvider(t *testing.T, db *gorm.DB, email string, categoryID uint, mutate ...func(*models.Provider)) *models.Provider {
	t.Helper()
	provider := &models.Provider{
		FullName:          "Provider " + email,
		Email:             email,
		PasswordHash:      hashedTestPassword(t),
		Phone:             "555-0101",
		ServiceCategoryID: categoryID,
		ExperienceYears:   5,
		HourlyRate:        40,
	}
	for _, m := range mutate {
		m(provider)
	}
	if err := db.Create(provider).Error; err != nil {
		t.Fatalf("failed to create provider %s: %v", email, err)
	}
	return provider
}

func CreateBooking(t *testing.T, db *gorm.DB, user *models.User, provider *models.Provider, status models.BookingStatus) *models.Booking {
	t.Helper()
	booking := &models.Booking{
		UserID:            user.ID,
		ProviderID:        provider.ID,
		ServiceCategoryID: provider.ServiceCategoryID,
		BookingDate:       time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		BookingTime:       "10:00",
		Address:           "1 Test Street",
		Status:            status,
		TotalPrice:        provider.HourlyRate,
	}
	if err := db.Create(booking).Error; err != nil {
		t.Fatalf("failed to create booking: %v", err)
	}
	return booking
}

func CreateReview(t *testing.T, db *gorm.DB, booking *models.Booking, rating int) *models.Review {
	t.Helper()
	review := &models.Review{
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		ProviderID: booking.ProviderID,
		Rating:     rating,
		Comment:    fmt.Sprintf("%d stars", rating),
	}
	if err := db.Create(review).Error; err != nil {
		t.Fatalf("failed to create review: %v", err)
	}
	return review
}

// Identity returns the caller identity of a fixture account.
func Identity(account models.Account) auth.Identity {
	return auth.Identity{
		Kind:  account.Kind(),
		ID:    account.AccountID(),
		Name:  account.DisplayName(),
		Email: account.ContactEmail(),
	}
}
