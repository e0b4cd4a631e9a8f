package services

import (
	"errors"
	"time"

	"homeserve_backend/internal/auth"
	"homeserve_backend/internal/logger"
	"homeserve_backend/internal/metrics"
	"homeserve_backend/internal/models"
	"homeserve_backend/internal/repositories"
	"homeserve_backend/internal/services/dto"
	"homeserve_backend/internal/validator"
	"homeserve_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.SessionResponse, error)
	// Login ends the session behind previousToken, if any, before opening a
	// new one.
	Login(db *gorm.DB, req *dto.LoginRequest, previousToken string) (*dto.SessionResponse, error)
	// Logout always succeeds for unknown or already revoked tokens.
	Logout(db *gorm.DB, token string) error
	Current(db *gorm.DB, token string) (auth.Identity, error)
}

type AuthServiceImpl struct {
	userRepo     repositories.UserRepository
	providerRepo repositories.ProviderRepository
	categoryRepo repositories.CategoryRepository
	sessionRepo  repositories.SessionRepository
	tokens       *auth.TokenIssuer
	validator    *validator.Validator
	metrics      *metrics.Metrics
	ttl          time.Duration
	now          func() time.Time
}

func NewAuthService(
	userRepo repositories.UserRepository,
	providerRepo repositories.ProviderRepository,
	categoryRepo repositories.CategoryRepository,
	sessionRepo repositories.SessionRepository,
	tokens *auth.TokenIssuer,
	v *validator.Validator,
	m *metrics.Metrics,
	ttl time.Duration,
) AuthService {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		providerRepo: providerRepo,
		categoryRepo: categoryRepo,
		sessionRepo:  sessionRepo,
		tokens:       tokens,
		validator:    v,
		metrics:      m,
		ttl:          ttl,
		now:          time.Now,
	}
}

func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.SessionResponse, error) {
	req.Normalize()

	objs := []interface{}{req}
	if req.Kind == models.AccountKindProvider {
		objs = append(objs, req.ProviderDetails())
	}
	if err := validate(s.validator, objs...); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var resp *dto.SessionResponse
	err = db.Transaction(func(tx *gorm.DB) error {
		account, err := s.createAccount(tx, req, hash)
		if err != nil {
			return err
		}
		resp, err = s.openSession(tx, account)
		return err
	})
	if err != nil {
		return nil, passThrough(err, "An error occurred during registration. Please try again.")
	}

	s.metrics.Registered(req.Kind)
	logger.Info("account registered", "kind", resp.Type, "id", resp.ID)
	return resp, nil
}

func (s *AuthServiceImpl) createAccount(tx *gorm.DB, req *dto.RegisterRequest, hash string) (models.Account, error) {
	taken, err := s.emailTaken(tx, req.Kind, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrEmailTaken
	}

	var account models.Account
	switch req.Kind {
	case models.AccountKindProvider:
		if _, err := s.categoryRepo.FindByID(tx, req.ServiceCategoryID); err != nil {
			if errors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, apperrors.ErrCategoryNotFound
			}
			return nil, err
		}
		provider := &models.Provider{
			FullName:          req.FullName,
			Email:             req.Email,
			PasswordHash:      hash,
			Phone:             req.Phone,
			ServiceCategoryID: req.ServiceCategoryID,
			ExperienceYears:   *req.ExperienceYears,
			HourlyRate:        req.HourlyRate,
			Bio:               req.Bio,
		}
		err = s.providerRepo.Create(tx, provider)
		account = provider
	default:
		user := &models.User{
			FullName:     req.FullName,
			Email:        req.Email,
			PasswordHash: hash,
			Phone:        req.Phone,
			Address:      req.Address,
		}
		err = s.userRepo.Create(tx, user)
		account = user
	}

	if errors.Is(err, repositories.ErrEmailTaken) {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AuthServiceImpl) emailTaken(tx *gorm.DB, kind models.AccountKind, email string) (bool, error) {
	_, err := s.findAccount(tx, kind, email)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, repositories.ErrUserNotFound), errors.Is(err, repositories.ErrProviderNotFound):
		return false, nil
	default:
		return false, err
	}
}

// findAccount looks the email up in the table of the given kind only.
func (s *AuthServiceImpl) findAccount(db *gorm.DB, kind models.AccountKind, email string) (models.Account, error) {
	if kind == models.AccountKindProvider {
		return s.providerRepo.FindByEmail(db, email)
	}
	return s.userRepo.FindByEmail(db, email)
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest, previousToken string) (*dto.SessionResponse, error) {
	req.Normalize()
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	account, err := s.findAccount(db, req.Kind, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) || errors.Is(err, repositories.ErrProviderNotFound) {
			s.metrics.LoginAttempt(req.Kind, false)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.StorageError(err, "An error occurred during login. Please try again.")
	}
	if !auth.CheckPasswordHash(req.Password, account.PasswordDigest()) {
		s.metrics.LoginAttempt(req.Kind, false)
		return nil, apperrors.ErrInvalidCredentials
	}

	var resp *dto.SessionResponse
	err = db.Transaction(func(tx *gorm.DB) error {
		if claims, err := s.tokens.Parse(previousToken); err == nil {
			if err := s.sessionRepo.Delete(tx, claims.ID); err != nil {
				return err
			}
		}
		if _, err := s.sessionRepo.DeleteExpired(tx, s.now()); err != nil {
			return err
		}
		resp, err = s.openSession(tx, account)
		return err
	})
	if err != nil {
		return nil, passThrough(err, "An error occurred during login. Please try again.")
	}

	s.metrics.LoginAttempt(req.Kind, true)
	return resp, nil
}

func (s *AuthServiceImpl) openSession(tx *gorm.DB, account models.Account) (*dto.SessionResponse, error) {
	session := &models.Session{
		ID:        uuid.NewString(),
		Kind:      account.Kind(),
		AccountID: account.AccountID(),
		Name:      account.DisplayName(),
		Email:     account.ContactEmail(),
		ExpiresAt: s.now().Add(s.ttl),
	}
	if err := s.sessionRepo.Create(tx, session); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(session)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.SessionResponse{
		Type:      session.Kind,
		ID:        session.AccountID,
		Name:      session.Name,
		Email:     session.Email,
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *AuthServiceImpl) Logout(db *gorm.DB, token string) error {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil
	}
	if err := s.sessionRepo.Delete(db, claims.ID); err != nil {
		logger.WithError(err).Warn("failed to delete session", "session_id", claims.ID)
	}
	return nil
}

func (s *AuthServiceImpl) Current(db *gorm.DB, token string) (auth.Identity, error) {
	if token == "" {
		return auth.Identity{}, apperrors.ErrNotAuthenticated
	}
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return auth.Identity{}, apperrors.ErrNotAuthenticated
	}

	session, err := s.sessionRepo.FindByID(db, claims.ID)
	if errors.Is(err, repositories.ErrSessionNotFound) {
		return auth.Identity{}, apperrors.ErrNotAuthenticated
	}
	if err != nil {
		return auth.Identity{}, apperrors.StorageError(err, "Error checking authentication")
	}

	if session.Expired(s.now()) {
		if err := s.sessionRepo.Delete(db, session.ID); err != nil {
			logger.WithError(err).Warn("failed to delete expired session", "session_id", session.ID)
		}
		return auth.Identity{}, apperrors.ErrNotAuthenticated
	}
	return auth.IdentityFromSession(session), nil
}
