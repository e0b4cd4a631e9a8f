package repositories

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrProviderNotFound = errors.New("provider not found")
	ErrCategoryNotFound = errors.New("service category not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrEmailTaken       = errors.New("email already registered")
	ErrReviewExists     = errors.New("review already exists for this booking")
)

// notFound maps gorm's missing-row error to a repository sentinel.
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

// duplicate maps a translated unique-index violation to a sentinel.
func duplicate(err, sentinel error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return sentinel
	}
	return err
}
