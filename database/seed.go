package database

import (
	"fmt"

	"homeserve_backend/internal/auth"
	"homeserve_backend/internal/logger"
	"homeserve_backend/internal/models"

	"gorm.io/gorm"
)

// DemoPassword is the password of every seeded account.
const DemoPassword = "password123"

// Seed inserts the service categories and, when demo is set, sample
// accounts. Each table is only filled while it is empty.
func Seed(db *gorm.DB, demo bool) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedCategories(tx); err != nil {
			return err
		}
		if !demo {
			return nil
		}

		hash, err := auth.HashPassword(DemoPassword)
		if err != nil {
			return fmt.Errorf("failed to hash demo password: %w", err)
		}
		if err := seedProviders(tx, hash); err != nil {
			return err
		}
		return seedUsers(tx, hash)
	})
}

func seedCategories(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(&models.ServiceCategory{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	categories := []models.ServiceCategory{
		{Name: "Plumbing", Description: "Pipe repairs, leak fixes, installations", Icon: "fa-wrench"},
		{Name: "Electrical", Description: "Wiring, repairs, installations", Icon: "fa-bolt"},
		{Name: "HVAC", Description: "Heating, ventilation, air conditioning", Icon: "fa-snowflake"},
		{Name: "Cleaning", Description: "Home and office cleaning services", Icon: "fa-broom"},
		{Name: "Painting", Description: "Interior and exterior painting", Icon: "fa-paint-roller"},
		{Name: "Carpentry", Description: "Furniture repair, woodwork", Icon: "fa-hammer"},
	}
	if err := tx.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	logger.Info("Inserted default service categories", "count", len(categories))
	return nil
}

func seedProviders(tx *gorm.DB, hash string) error {
	var count int64
	if err := tx.Model(&models.Provider{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count providers: %w", err)
	}
	if count > 0 {
		return nil
	}

	var categories []models.ServiceCategory
	if err := tx.Order("id").Find(&categories).Error; err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	byName := make(map[string]uint, len(categories))
	for _, c := range categories {
		byName[c.Name] = c.ID
	}

	type demo struct {
		name, email, phone, category, bio string
		years                             int
		rate, rating                      float64
		jobs                              int
	}
	demos := []demo{
		{"John Smith", "john@example.com", "555-0101", "Plumbing", "Expert plumber with 8 years of experience in residential and commercial plumbing.", 8, 45, 4.8, 156},
		{"Sarah Johnson", "sarah@example.com", "555-0102", "Electrical", "Licensed electrician specializing in home electrical systems and repairs.", 6, 50, 4.9, 203},
		{"Mike Williams", "mike@example.com", "555-0103", "HVAC", "HVAC specialist with expertise in all heating and cooling systems.", 10, 55, 4.7, 178},
		{"Emily Brown", "emily@example.com", "555-0104", "Cleaning", "Professional cleaner providing top-quality home and office cleaning services.", 4, 35, 4.9, 245},
		{"David Lee", "david@example.com", "555-0105", "Painting", "Professional painter with an eye for detail and quality finishes.", 12, 40, 4.6, 134},
		{"Lisa Martinez", "lisa@example.com", "555-0106", "Carpentry", "Skilled carpenter specializing in furniture repair and custom woodwork.", 7, 48, 4.8, 167},
	}

	providers := make([]models.Provider, 0, len(demos))
	for _, d := range demos {
		providers = append(providers, models.Provider{
			FullName:          d.name,
			Email:             d.email,
			PasswordHash:      hash,
			Phone:             d.phone,
			ServiceCategoryID: byName[d.category],
			ExperienceYears:   d.years,
			HourlyRate:        d.rate,
			Bio:               d.bio,
			Rating:            d.rating,
			TotalJobs:         d.jobs,
			IsVerified:        true,
		})
	}
	if err := tx.Create(&providers).Error; err != nil {
		return fmt.Errorf("failed to seed providers: %w", err)
	}
	logger.Info("Inserted sample providers", "count", len(providers))
	return nil
}

func seedUsers(tx *gorm.DB, hash string) error {
	var count int64
	if err := tx.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	user := models.User{
		FullName:     "Test User",
		Email:        "user@example.com",
		PasswordHash: hash,
		Phone:        "555-1234",
		Address:      "123 Main Street, City, Country",
	}
	if err := tx.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to seed user: %w", err)
	}
	logger.Info("Inserted sample user", "email", user.Email)
	return nil
}
