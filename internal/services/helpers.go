package services

import (
	"errors"

	"homeserve_backend/internal/validator"
	"homeserve_backend/pkg/apperrors"
)

// validate runs the request validator and converts its failures into the
// collected ValidationError.
func validate(v *validator.Validator, objs ...interface{}) error {
	err := v.Validate(objs...)
	if err == nil {
		return nil
	}
	var vErr *validator.ValidationError
	if errors.As(err, &vErr) {
		return apperrors.ValidationError(vErr.Messages)
	}
	return apperrors.InternalError(err)
}

// passThrough returns err unchanged when it is already an AppError and
// wraps it as a storage failure otherwise.
func passThrough(err error, message string) error {
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	return apperrors.StorageError(err, message)
}
