package services

import (
	"errors"

	"homeserve_backend/internal/auth"
	"homeserve_backend/internal/logger"
	"homeserve_backend/internal/models"
	"homeserve_backend/internal/repositories"
	"homeserve_backend/internal/services/dto"
	"homeserve_backend/internal/validator"
	"homeserve_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	Get(db *gorm.DB, caller auth.Identity) (*dto.ProfileResponse, error)
	// Update changes the caller's own account. Omitted optional fields keep
	// their stored values.
	Update(db *gorm.DB, caller auth.Identity, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type ProfileServiceImpl struct {
	userRepo     repositories.UserRepository
	providerRepo repositories.ProviderRepository
	categoryRepo repositories.CategoryRepository
	sessionRepo  repositories.SessionRepository
	validator    *validator.Validator
}

func NewProfileService(
	userRepo repositories.UserRepository,
	providerRepo repositories.ProviderRepository,
	categoryRepo repositories.CategoryRepository,
	sessionRepo repositories.SessionRepository,
	v *validator.Validator,
) ProfileService {
	return &ProfileServiceImpl{
		userRepo:     userRepo,
		providerRepo: providerRepo,
		categoryRepo: categoryRepo,
		sessionRepo:  sessionRepo,
		validator:    v,
	}
}

func (s *ProfileServiceImpl) Get(db *gorm.DB, caller auth.Identity) (*dto.ProfileResponse, error) {
	if !caller.IsAuthenticated() {
		return nil, apperrors.ErrNotAuthenticated
	}
	profile, err := s.load(db, caller)
	if err != nil {
		return nil, passThrough(err, "Error retrieving profile")
	}
	return profile, nil
}

func (s *ProfileServiceImpl) load(db *gorm.DB, caller auth.Identity) (*dto.ProfileResponse, error) {
	if caller.Kind == models.AccountKindProvider {
		listing, err := s.providerRepo.FindListingByID(db, caller.ID)
		if errors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		if err != nil {
			return nil, err
		}
		return providerProfile(listing), nil
	}

	user, err := s.userRepo.FindByID(db, caller.ID)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dto.ProfileResponse{
		Type:      models.AccountKindUser,
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		Phone:     user.Phone,
		Address:   user.Address,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *ProfileServiceImpl) Update(db *gorm.DB, caller auth.Identity, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if !caller.IsAuthenticated() {
		return nil, apperrors.ErrNotAuthenticated
	}

	req.Normalize()
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	var profile *dto.ProfileResponse
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		if caller.Kind == models.AccountKindProvider {
			err = s.updateProvider(tx, caller.ID, req)
		} else {
			err = s.updateUser(tx, caller.ID, req)
		}
		if err != nil {
			return err
		}

		if caller.SessionID != "" {
			if err := s.sessionRepo.UpdateName(tx, caller.SessionID, req.FullName); err != nil {
				return err
			}
		}

		profile, err = s.load(tx, caller)
		return err
	})
	if err != nil {
		return nil, passThrough(err, "Error updating profile")
	}

	logger.Info("profile updated", "kind", caller.Kind, "id", caller.ID)
	return profile, nil
}

func (s *ProfileServiceImpl) updateUser(tx *gorm.DB, id uint, req *dto.UpdateProfileRequest) error {
	user, err := s.userRepo.FindByID(tx, id)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return apperrors.ErrProfileNotFound
	}
	if err != nil {
		return err
	}

	fields := repositories.UserProfileFields{
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
	}
	if fields.Phone == "" {
		fields.Phone = user.Phone
	}
	return s.userRepo.UpdateProfile(tx, id, fields)
}

func (s *ProfileServiceImpl) updateProvider(tx *gorm.DB, id uint, req *dto.UpdateProfileRequest) error {
	provider, err := s.providerRepo.FindByID(tx, id)
	if errors.Is(err, repositories.ErrProviderNotFound) {
		return apperrors.ErrProfileNotFound
	}
	if err != nil {
		return err
	}

	if req.Phone == "" {
		req.Phone = provider.Phone
	}
	if req.ServiceCategoryID == 0 {
		req.ServiceCategoryID = provider.ServiceCategoryID
	}
	if req.ExperienceYears == nil {
		years := provider.ExperienceYears
		req.ExperienceYears = &years
	}
	if req.HourlyRate == 0 {
		req.HourlyRate = provider.HourlyRate
	}
	if err := validate(s.validator, req.ProviderDetails()); err != nil {
		return err
	}

	if req.ServiceCategoryID != provider.ServiceCategoryID {
		if _, err := s.categoryRepo.FindByID(tx, req.ServiceCategoryID); err != nil {
			if errors.Is(err, repositories.ErrCategoryNotFound) {
				return apperrors.ErrCategoryNotFound
			}
			return err
		}
	}

	return s.providerRepo.UpdateProfile(tx, id, repositories.ProviderProfileFields{
		FullName:          req.FullName,
		Phone:             req.Phone,
		ServiceCategoryID: req.ServiceCategoryID,
		ExperienceYears:   *req.ExperienceYears,
		HourlyRate:        req.HourlyRate,
		Bio:               req.Bio,
	})
}

func providerProfile(p *repositories.ProviderListing) *dto.ProfileResponse {
	years := p.ExperienceYears
	rating := p.Rating
	jobs := p.TotalJobs
	verified := p.IsVerified
	return &dto.ProfileResponse{
		Type:              models.AccountKindProvider,
		ID:                p.ID,
		FullName:          p.FullName,
		Email:             p.Email,
		Phone:             p.Phone,
		ServiceCategoryID: p.ServiceCategoryID,
		CategoryName:      p.CategoryName,
		ExperienceYears:   &years,
		HourlyRate:        p.HourlyRate,
		Bio:               p.Bio,
		Rating:            &rating,
		TotalJobs:         &jobs,
		IsVerified:        &verified,
		CreatedAt:         p.CreatedAt,
	}
}
