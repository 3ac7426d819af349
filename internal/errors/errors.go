package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrEmailAlreadyInUse  = errors.New("user already exists")
	ErrTitleAlreadyInUse  = errors.New("a blog with this title already exists")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("you are not authorized to perform this action")
	ErrNotFound           = errors.New("resource not found")
)

// Violation describes a single rejected input field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the full list of field violations for a rejected
// input, so the client sees everything wrong with the request at once.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "invalid input"
	}
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return strings.Join(msgs, "; ")
}

// NewValidation builds a ValidationError with a single violation.
func NewValidation(field, format string, args ...any) *ValidationError {
	return &ValidationError{Violations: []Violation{{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}}}
}
