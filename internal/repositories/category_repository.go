package repositories

import (
	"homeserve_backend/internal/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	List(db *gorm.DB) ([]models.ServiceCategory, error)
	FindByID(db *gorm.DB, id uint) (*models.ServiceCategory, error)
}

type CategoryRepositoryImpl struct{}

func NewCategoryRepository() CategoryRepository {
	return &CategoryRepositoryImpl{}
}

func (r *CategoryRepositoryImpl) List(db *gorm.DB) ([]models.ServiceCategory, error) {
	categories := []models.ServiceCategory{}
	err := db.Order("id ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.ServiceCategory, error) {
	var category models.ServiceCategory
	if err := db.First(&category, id).Error; err != nil {
		return nil, notFound(err, ErrCategoryNotFound)
	}
	return &category, nil
}
