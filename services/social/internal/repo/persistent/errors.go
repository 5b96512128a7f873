package persistent

import (
	"errors"

	"yadig/services/social/internal/entity"

	"gorm.io/gorm"
)

// wrap folds a gorm failure into the domain taxonomy. Errors that already
// belong to it pass through untouched.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if entity.IsDomain(err) {
		return err
	}
	return &entity.StorageError{Op: op, Err: err}
}

func notFoundOr(op, resource string, id uint, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.NotFoundError{Resource: resource, ID: id}
	}
	return wrap(op, err)
}
