package repositories

import (
	"homeserve_backend/database"
	"homeserve_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *models.Booking) error
	FindByID(db *gorm.DB, id uint) (*models.Booking, error)
	// FindByIDForUpdate must run inside a transaction.
	FindByIDForUpdate(db *gorm.DB, id uint) (*models.Booking, error)
	// FindOwnedForUpdate finds the booking only when it belongs to both the
	// user and the provider.
	FindOwnedForUpdate(db *gorm.DB, id, userID, providerID uint) (*models.Booking, error)
	CompareAndSetStatus(db *gorm.DB, id uint, from, to models.BookingStatus) (bool, error)
	FindDetails(db *gorm.DB, id uint) (*BookingDetails, error)
	ListForUser(db *gorm.DB, userID uint) ([]BookingDetails, error)
	ListForProvider(db *gorm.DB, providerID uint) ([]BookingDetails, error)
}

// BookingDetails is a booking joined with both parties, its category and
// whether it has been reviewed.
type BookingDetails struct {
	models.Booking
	CategoryName  string
	ProviderName  string
	ProviderPhone string
	ProviderEmail string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	HasReview     bool
}

type BookingRepositoryImpl struct{}

func NewBookingRepository() BookingRepository {
	return &BookingRepositoryImpl{}
}

func (r *BookingRepositoryImpl) Create(db *gorm.DB, booking *models.Booking) error {
	if booking.Status == "" {
		booking.Status = models.BookingStatusPending
	}
	return db.Create(booking).Error
}

func (r *BookingRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := db.First(&booking, id).Error; err != nil {
		return nil, notFound(err, ErrBookingNotFound)
	}
	return &booking, nil
}

func lockForUpdate(db *gorm.DB) *gorm.DB {
	if database.SupportsRowLocks(db) {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}

func (r *BookingRepositoryImpl) FindByIDForUpdate(db *gorm.DB, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := lockForUpdate(db).First(&booking, id).Error; err != nil {
		return nil, notFound(err, ErrBookingNotFound)
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) FindOwnedForUpdate(db *gorm.DB, id, userID, providerID uint) (*models.Booking, error) {
	var booking models.Booking
	err := lockForUpdate(db).
		Where("id = ? AND user_id = ? AND provider_id = ?", id, userID, providerID).
		First(&booking).Error
	if err != nil {
		return nil, notFound(err, ErrBookingNotFound)
	}
	return &booking, nil
}

// CompareAndSetStatus writes the new status only if the row still has the
// status the caller observed. It reports false when another writer won.
func (r *BookingRepositoryImpl) CompareAndSetStatus(db *gorm.DB, id uint, from, to models.BookingStatus) (bool, error) {
	result := db.Model(&models.Booking{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{"status": to})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func detailsQuery(db *gorm.DB) *gorm.DB {
	return db.Table("bookings").
		Select(`bookings.*,
			service_categories.name AS category_name,
			providers.full_name AS provider_name,
			providers.phone AS provider_phone,
			providers.email AS provider_email,
			users.full_name AS customer_name,
			users.phone AS customer_phone,
			users.email AS customer_email,
			CASE WHEN reviews.id IS NULL THEN 0 ELSE 1 END AS has_review`).
		Joins("LEFT JOIN service_categories ON service_categories.id = bookings.service_category_id").
		Joins("LEFT JOIN providers ON providers.id = bookings.provider_id").
		Joins("LEFT JOIN users ON users.id = bookings.user_id").
		Joins("LEFT JOIN reviews ON reviews.booking_id = bookings.id")
}

func (r *BookingRepositoryImpl) FindDetails(db *gorm.DB, id uint) (*BookingDetails, error) {
	var rows []BookingDetails
	if err := detailsQuery(db).Where("bookings.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrBookingNotFound
	}
	return &rows[0], nil
}

func (r *BookingRepositoryImpl) ListForUser(db *gorm.DB, userID uint) ([]BookingDetails, error) {
	return r.list(db, "bookings.user_id = ?", userID)
}

func (r *BookingRepositoryImpl) ListForProvider(db *gorm.DB, providerID uint) ([]BookingDetails, error) {
	return r.list(db, "bookings.provider_id = ?", providerID)
}

func (r *BookingRepositoryImpl) list(db *gorm.DB, where string, id uint) ([]BookingDetails, error) {
	rows := []BookingDetails{}
	err := detailsQuery(db).
		Where(where, id).
		Order("bookings.created_at DESC").
		Order("bookings.id DESC").
		Scan(&rows).Error
	return rows, err
}
