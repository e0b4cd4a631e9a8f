package repositories

import (
	"homeserve_backend/internal/models"

	"gorm.io/gorm"
)

type ProviderRepository interface {
	Create(db *gorm.DB, provider *models.Provider) error
	FindByID(db *gorm.DB, id uint) (*models.Provider, error)
	FindByEmail(db *gorm.DB, email string) (*models.Provider, error)
	FindListingByID(db *gorm.DB, id uint) (*ProviderListing, error)
	List(db *gorm.DB, filter ProviderFilter) ([]ProviderListing, error)
	UpdateProfile(db *gorm.DB, id uint, fields ProviderProfileFields) error
	IncrementTotalJobs(db *gorm.DB, id uint) error
	SetRating(db *gorm.DB, id uint, rating float64) error
}

// ProviderListing is a provider joined with its category name.
type ProviderListing struct {
	models.Provider
	CategoryName string
}

// ProviderFilter is conjunctive; nil or zero fields are ignored.
type ProviderFilter struct {
	CategoryID uint
	MinRating  float64
	MinPrice   *float64
	MaxPrice   *float64
}

type ProviderProfileFields struct {
	FullName          string
	Phone             string
	ServiceCategoryID uint
	ExperienceYears   int
	HourlyRate        float64
	Bio               string
}

type ProviderRepositoryImpl struct{}

func NewProviderRepository() ProviderRepository {
	return &ProviderRepositoryImpl{}
}

func (r *ProviderRepositoryImpl) Create(db *gorm.DB, provider *models.Provider) error {
	return duplicate(db.Create(provider).Error, ErrEmailTaken)
}

func (r *ProviderRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Provider, error) {
	var provider models.Provider
	if err := db.First(&provider, id).Error; err != nil {
		return nil, notFound(err, ErrProviderNotFound)
	}
	return &provider, nil
}

func (r *ProviderRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Provider, error) {
	var provider models.Provider
	if err := db.Where("email = ?", email).First(&provider).Error; err != nil {
		return nil, notFound(err, ErrProviderNotFound)
	}
	return &provider, nil
}

func listingQuery(db *gorm.DB) *gorm.DB {
	return db.Table("providers").
		Select("providers.*, service_categories.name AS category_name").
		Joins("LEFT JOIN service_categories ON service_categories.id = providers.service_category_id")
}

func (r *ProviderRepositoryImpl) FindListingByID(db *gorm.DB, id uint) (*ProviderListing, error) {
	var listings []ProviderListing
	if err := listingQuery(db).Where("providers.id = ?", id).Limit(1).Scan(&listings).Error; err != nil {
		return nil, err
	}
	if len(listings) == 0 {
		return nil, ErrProviderNotFound
	}
	return &listings[0], nil
}

func (r *ProviderRepositoryImpl) List(db *gorm.DB, filter ProviderFilter) ([]ProviderListing, error) {
	query := listingQuery(db)

	if filter.CategoryID != 0 {
		query = query.Where("providers.service_category_id = ?", filter.CategoryID)
	}
	if filter.MinRating > 0 {
		query = query.Where("providers.rating >= ?", filter.MinRating)
	}
	if filter.MinPrice != nil {
		query = query.Where("providers.hourly_rate >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("providers.hourly_rate <= ?", *filter.MaxPrice)
	}

	listings := []ProviderListing{}
	err := query.
		Order("providers.rating DESC").
		Order("providers.total_jobs DESC").
		Order("providers.id ASC").
		Scan(&listings).Error
	return listings, err
}

func (r *ProviderRepositoryImpl) UpdateProfile(db *gorm.DB, id uint, fields ProviderProfileFields) error {
	return db.Model(&models.Provider{}).Where("id = ?", id).Updates(map[string]interface{}{
		"full_name":           fields.FullName,
		"phone":               fields.Phone,
		"service_category_id": fields.ServiceCategoryID,
		"experience_years":    fields.ExperienceYears,
		"hourly_rate":         fields.HourlyRate,
		"bio":                 fields.Bio,
	}).Error
}

func (r *ProviderRepositoryImpl) IncrementTotalJobs(db *gorm.DB, id uint) error {
	result := db.Model(&models.Provider{}).Where("id = ?", id).
		UpdateColumn("total_jobs", gorm.Expr("total_jobs + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProviderNotFound
	}
	return nil
}

func (r *ProviderRepositoryImpl) SetRating(db *gorm.DB, id uint, rating float64) error {
	return db.Model(&models.Provider{}).Where("id = ?", id).UpdateColumn("rating", rating).Error
}
