package repositories

import (
	"homeserve_backend/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.Review) error
	ExistsForBooking(db *gorm.DB, bookingID uint) (bool, error)
	RatingStats(db *gorm.DB, providerID uint) (*RatingStats, error)
	ListForProvider(db *gorm.DB, providerID uint) ([]ReviewListing, error)
}

type RatingStats struct {
	Count int64   `gorm:"column:review_count"`
	Sum   float64 `gorm:"column:rating_sum"`
}

// Average returns the mean rating rounded to two decimals, or 0 when the
// provider has no reviews.
func (s RatingStats) Average() float64 {
	if s.Count == 0 {
		return 0
	}
	return roundTo2(s.Sum / float64(s.Count))
}

type ReviewListing struct {
	models.Review
	CustomerName string
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) Create(db *gorm.DB, review *models.Review) error {
	return duplicate(db.Create(review).Error, ErrReviewExists)
}

func (r *ReviewRepositoryImpl) ExistsForBooking(db *gorm.DB, bookingID uint) (bool, error) {
	var count int64
	if err := db.Model(&models.Review{}).Where("booking_id = ?", bookingID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ReviewRepositoryImpl) RatingStats(db *gorm.DB, providerID uint) (*RatingStats, error) {
	var stats RatingStats
	err := db.Model(&models.Review{}).
		Select("COUNT(*) AS review_count, COALESCE(SUM(rating), 0) AS rating_sum").
		Where("provider_id = ?", providerID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *ReviewRepositoryImpl) ListForProvider(db *gorm.DB, providerID uint) ([]ReviewListing, error) {
	rows := []ReviewListing{}
	err := db.Table("reviews").
		Select("reviews.*, users.full_name AS customer_name").
		Joins("LEFT JOIN users ON users.id = reviews.user_id").
		Where("reviews.provider_id = ?", providerID).
		Order("reviews.created_at DESC").
		Order("reviews.id DESC").
		Scan(&rows).Error
	return rows, err
}
