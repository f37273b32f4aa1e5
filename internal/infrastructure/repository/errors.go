package repository

import (
	"errors"

	"gorm.io/gorm"
)

// notFound maps gorm's missing-row error to (nil, nil) the way every
// Get* method in this package reports absence.
func notFound[T any](v *T, err error) (*T, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}
