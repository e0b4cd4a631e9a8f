package validator

import (
	"log"
	"regexp"
	"time"

	"homeserve_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format of booking dates.
const DateLayout = "2006-01-02"

var phonePattern = regexp.MustCompile(`^[0-9\-\+\s\(\)]{7,20}$`)

// registerCustomRules регистрирует все кастомные функции валидации.
func registerCustomRules(v *Validator) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.validate.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("phone", validatePhone)
	mustRegister("account_kind", validateAccountKind)
	mustRegister("booking_status", validateBookingStatus)
	mustRegister("date_ymd", validateDate)

	// not_past compares against the validator's clock at call time.
	mustRegister("not_past", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		day, err := time.ParseInLocation(DateLayout, value, time.Local)
		if err != nil {
			return false
		}
		return !day.Before(StartOfDay(v.now()))
	})
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

func validatePhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' обрабатывает пустые
	}
	return phonePattern.MatchString(value)
}

func validateAccountKind(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.AccountKind(value).IsValid()
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.BookingStatus(value).IsValid()
}

func validateDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.Parse(DateLayout, value)
	return err == nil
}
