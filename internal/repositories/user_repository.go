package repositories

import (
	"homeserve_backend/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *models.User) error
	FindByID(db *gorm.DB, id uint) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	UpdateProfile(db *gorm.DB, id uint, fields UserProfileFields) error
}

// UserProfileFields are the columns a user may change on their profile.
type UserProfileFields struct {
	FullName string
	Phone    string
	Address  string
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	return duplicate(db.Create(user).Error, ErrEmailTaken)
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return &user, nil
}

func (r *UserRepositoryImpl) UpdateProfile(db *gorm.DB, id uint, fields UserProfileFields) error {
	return db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"full_name": fields.FullName,
		"phone":     fields.Phone,
		"address":   fields.Address,
	}).Error
}
