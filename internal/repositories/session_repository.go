package repositories

import (
	"time"

	"homeserve_backend/internal/models"

	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(db *gorm.DB, session *models.Session) error
	FindByID(db *gorm.DB, id string) (*models.Session, error)
	Delete(db *gorm.DB, id string) error
	DeleteExpired(db *gorm.DB, now time.Time) (int64, error)
	UpdateName(db *gorm.DB, id, name string) error
}

type SessionRepositoryImpl struct{}

func NewSessionRepository() SessionRepository {
	return &SessionRepositoryImpl{}
}

func (r *SessionRepositoryImpl) Create(db *gorm.DB, session *models.Session) error {
	return db.Create(session).Error
}

func (r *SessionRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Session, error) {
	var session models.Session
	if err := db.Where("id = ?", id).First(&session).Error; err != nil {
		return nil, notFound(err, ErrSessionNotFound)
	}
	return &session, nil
}

// Delete is idempotent.
func (r *SessionRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Where("id = ?", id).Delete(&models.Session{}).Error
}

func (r *SessionRepositoryImpl) DeleteExpired(db *gorm.DB, now time.Time) (int64, error) {
	result := db.Where("expires_at <= ?", now).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}

func (r *SessionRepositoryImpl) UpdateName(db *gorm.DB, id, name string) error {
	return db.Model(&models.Session{}).Where("id = ?", id).Update("name", name).Error
}
