package domain

import "errors"

var (
	ErrUserNotFound      = errors.New("User not found")
	ErrMemberNotFound    = errors.New("Member not found")
	ErrActivityNotFound  = errors.New("Activity not found")
	ErrCheckinNotFound   = errors.New("Check-in not found")
	ErrVolunteerNotFound = errors.New("Volunteer not found")

	ErrUsernameTaken   = errors.New("Username already exists")
	ErrEmailTaken      = errors.New("Email already exists")
	ErrInvalidPassword = errors.New("Invalid password")

	// Dependent-records guards. Distinct per entity so callers can branch on
	// which parent refused the delete.
	ErrMemberHasCheckins   = errors.New("Cannot delete member with associated check-ins")
	ErrActivityHasCheckins = errors.New("Cannot delete activity with associated check-ins")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries a field-level breakdown instead of a single opaque
// message.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Message
	}
	return "Validation failed"
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}
