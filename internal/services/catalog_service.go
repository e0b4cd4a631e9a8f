package services

import (
	"errors"
	"strconv"
	"strings"

	"homeserve_backend/internal/repositories"
	"homeserve_backend/internal/services/dto"
	"homeserve_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CatalogService interface {
	ListCategories(db *gorm.DB) ([]dto.CategoryResponse, error)
	// ListProviders orders by rating, then completed jobs, then id.
	ListProviders(db *gorm.DB, filter dto.ProviderFilter) ([]dto.ProviderResponse, error)
	GetProvider(db *gorm.DB, id uint) (*dto.ProviderResponse, error)
}

type CatalogServiceImpl struct {
	categoryRepo repositories.CategoryRepository
	providerRepo repositories.ProviderRepository
}

func NewCatalogService(
	categoryRepo repositories.CategoryRepository,
	providerRepo repositories.ProviderRepository,
) CatalogService {
	return &CatalogServiceImpl{
		categoryRepo: categoryRepo,
		providerRepo: providerRepo,
	}
}

func (s *CatalogServiceImpl) ListCategories(db *gorm.DB) ([]dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.List(db)
	if err != nil {
		return nil, apperrors.StorageError(err, "Error retrieving categories")
	}

	result := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		result = append(result, dto.NewCategoryResponse(&categories[i]))
	}
	return result, nil
}

func (s *CatalogServiceImpl) ListProviders(db *gorm.DB, filter dto.ProviderFilter) ([]dto.ProviderResponse, error) {
	if filter.Rating < 0 || filter.Rating > 5 {
		return nil, apperrors.NewBadRequestError("Invalid rating filter")
	}
	minPrice, maxPrice, err := ParsePriceRange(filter.Price)
	if err != nil {
		return nil, err
	}

	listings, err := s.providerRepo.List(db, repositories.ProviderFilter{
		CategoryID: filter.Category,
		MinRating:  filter.Rating,
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
	})
	if err != nil {
		return nil, apperrors.StorageError(err, "Error retrieving providers")
	}

	result := make([]dto.ProviderResponse, 0, len(listings))
	for i := range listings {
		result = append(result, dto.NewProviderResponse(&listings[i].Provider, listings[i].CategoryName))
	}
	return result, nil
}

func (s *CatalogServiceImpl) GetProvider(db *gorm.DB, id uint) (*dto.ProviderResponse, error) {
	if id == 0 {
		return nil, apperrors.NewBadRequestError("Provider ID is required")
	}

	listing, err := s.providerRepo.FindListingByID(db, id)
	if errors.Is(err, repositories.ErrProviderNotFound) {
		return nil, apperrors.ErrProviderNotFound
	}
	if err != nil {
		return nil, apperrors.StorageError(err, "Error retrieving provider")
	}

	resp := dto.NewProviderResponse(&listing.Provider, listing.CategoryName)
	return &resp, nil
}

// ParsePriceRange accepts "min-max" (inclusive) or "min+". An empty string
// means no bound.
func ParsePriceRange(raw string) (*float64, *float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil, nil
	}

	if strings.HasSuffix(raw, "+") {
		lo, ok := parsePrice(strings.TrimSuffix(raw, "+"))
		if !ok {
			return nil, nil, apperrors.ErrInvalidPriceRange
		}
		return &lo, nil, nil
	}

	parts := strings.Split(raw, "-")
	if len(parts) != 2 {
		return nil, nil, apperrors.ErrInvalidPriceRange
	}
	lo, okLo := parsePrice(parts[0])
	hi, okHi := parsePrice(parts[1])
	if !okLo || !okHi || lo > hi {
		return nil, nil, apperrors.ErrInvalidPriceRange
	}
	return &lo, &hi, nil
}

func parsePrice(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
