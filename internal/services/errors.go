package services

import (
	"errors"

	"gorm.io/gorm"

	"Stashed/internal/apperrors"
)

// asNotFound converts a missing-row error into the typed NotFound outcome.
// Other errors pass through untouched.
func asNotFound(err error, kind string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &apperrors.NotFoundError{Kind: kind}
	}
	return err
}
