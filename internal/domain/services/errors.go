package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"propertyops-http-service/internal/domain/models"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("record not found")

// ValidationError carries per-field messages for a rejected write.
type ValidationError struct {
	Errors models.ValidationErrors
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+" "+strings.Join(e.Errors[field], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// DecodeError wraps a request body that does not fit the params type.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode attributes: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func validationFailed(errs models.ValidationErrors) error {
	if errs.Any() {
		return &ValidationError{Errors: errs}
	}
	return nil
}
