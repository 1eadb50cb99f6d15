// Package validation holds the shared field-shape checks used by every
// entity service: trim-then-length for names, raw length for descriptions.
package validation

import (
	"strings"

	"Stashed/internal/apperrors"
)

const (
	MaxNameLength        = 255
	MaxDescriptionLength = 10000
)

// Name trims value and validates the trimmed form is 1..255 characters.
// The trimmed string is what gets persisted.
func Name(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", &apperrors.ValidationError{Field: field, Message: "must not be blank"}
	}
	if len(value) > MaxNameLength {
		return "", &apperrors.ValidationError{Field: field, Message: "must be at most 255 characters"}
	}
	return trimmed, nil
}

// Description validates an optional free-text field.
func Description(field, value string) (string, error) {
	if len(value) > MaxDescriptionLength {
		return "", &apperrors.ValidationError{Field: field, Message: "must be at most 10000 characters"}
	}
	return value, nil
}

// Quantity validates an optional positive count.
func Quantity(field string, value *int) error {
	if value != nil && *value < 1 {
		return &apperrors.ValidationError{Field: field, Message: "must be a positive integer"}
	}
	return nil
}
