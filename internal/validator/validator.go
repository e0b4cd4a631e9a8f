package validator

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ValidationError holds every failed rule, in struct field order.
type ValidationError struct {
	Messages []string
}

// Error реализует стандартный интерфейс error.
func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// Validator: наша обертка над go-playground/validator.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// New создает новый экземпляр Validator.
func New() *Validator {
	v := &Validator{
		validate: validator.New(),
		now:      time.Now,
	}

	// Field names in messages come from the `label` tag, so that a failure
	// on ProviderID reads "Provider is required".
	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomRules(v)
	return v
}

// WithClock replaces the time source used by date rules.
func (v *Validator) WithClock(now func() time.Time) *Validator {
	v.now = now
	return v
}

// Validate checks every object and collects all failures into one
// *ValidationError. Objects are checked in argument order.
func (v *Validator) Validate(objs ...interface{}) error {
	var messages []string

	for _, obj := range objs {
		err := v.validate.Struct(obj)
		if err == nil {
			continue
		}

		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}

		for _, fe := range validationErrors {
			messages = append(messages, v.getErrorMessage(obj, fe))
		}
	}

	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}

// getErrorMessage prefers a `msg` tag on the field, then a per-rule template.
func (v *Validator) getErrorMessage(obj interface{}, fe validator.FieldError) string {
	if msg := fieldTag(obj, fe.StructField(), "msg"); msg != "" && fe.Tag() != "required" {
		return msg
	}

	label := fe.Field()
	switch fe.Tag() {
	case "required":
		if msg := fieldTag(obj, fe.StructField(), "required_msg"); msg != "" {
			return msg
		}
		return fmt.Sprintf("%s is required", label)
	case "email":
		return "Invalid email format"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", label, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s does not match", label)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "phone":
		return "Invalid phone number format"
	case "date_ymd":
		return fmt.Sprintf("%s must be a valid date (YYYY-MM-DD)", label)
	case "not_past":
		return fmt.Sprintf("%s cannot be in the past", label)
	case "account_kind":
		return "Invalid account type"
	case "booking_status":
		return "Invalid status"
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

// fieldTag reads a tag from a top-level field of obj.
func fieldTag(obj interface{}, field, tag string) string {
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return ""
	}
	sf, ok := t.FieldByName(field)
	if !ok {
		return ""
	}
	return sf.Tag.Get(tag)
}
