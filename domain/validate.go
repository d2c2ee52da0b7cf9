package domain

import (
	"time"

	"github.com/asaskevich/govalidator"
)

// ValidateStruct runs the govalidator tags on a payload and converts any
// failures into a ValidationError with one entry per offending field.
func ValidateStruct(payload interface{}) *ValidationError {
	if _, err := govalidator.ValidateStruct(payload); err != nil {
		return &ValidationError{Errors: flattenErrors(err)}
	}
	return nil
}

func flattenErrors(err error) []FieldError {
	var out []FieldError

	switch e := err.(type) {
	case govalidator.Errors:
		for _, inner := range e.Errors() {
			out = append(out, flattenErrors(inner)...)
		}
	case govalidator.Error:
		out = append(out, FieldError{Field: e.Name, Message: e.Err.Error()})
	default:
		out = append(out, FieldError{Message: err.Error()})
	}

	return out
}

// CheckDate appends a field error unless the value is nil or a well-formed
// YYYY-MM-DD date.
func CheckDate(errs []FieldError, field string, value *string) []FieldError {
	if value == nil {
		return errs
	}
	if _, err := time.Parse("2006-01-02", *value); err != nil {
		return append(errs, FieldError{Field: field, Message: "Date must be in YYYY-MM-DD format"})
	}
	return errs
}

// CheckPastDate additionally requires the date to be before today.
func CheckPastDate(errs []FieldError, field string, value *string) []FieldError {
	if value == nil {
		return errs
	}
	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return append(errs, FieldError{Field: field, Message: "Date must be in YYYY-MM-DD format"})
	}
	// Compare date-to-date in UTC. Truncating time.Now() would round against
	// the epoch and shift the boundary by the host's UTC offset.
	y, m, d := time.Now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if !parsed.Before(today) {
		return append(errs, FieldError{Field: field, Message: "Date must be in the past"})
	}
	return errs
}

// CheckEnum appends a field error unless the value is nil or one of the
// allowed literals.
func CheckEnum(errs []FieldError, field string, value *string, allowed []string, message string) []FieldError {
	if value == nil {
		return errs
	}
	for _, a := range allowed {
		if *value == a {
			return errs
		}
	}
	return append(errs, FieldError{Field: field, Message: message})
}
