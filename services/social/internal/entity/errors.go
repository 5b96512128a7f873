package entity

import (
	"errors"
	"fmt"
)

const (
	unauthorizedMessage = "You are not authorized to access this resource"
	credentialsMessage  = "Invalid Credentials"
)

// ValidationError reports the first entity invariant an input violates.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError reports a missing entity. ID is zero when the lookup was by another key.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// AuthorizationError carries one message for every denied action.
type AuthorizationError struct{}

func (e *AuthorizationError) Error() string { return unauthorizedMessage }

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// CredentialsError is returned for any failed login.
type CredentialsError struct{}

func (e *CredentialsError) Error() string { return credentialsMessage }

// StorageError wraps an opaque persistence failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure in %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsUnauthorized(err error) bool {
	var target *AuthorizationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

func IsCredentials(err error) bool {
	var target *CredentialsError
	return errors.As(err, &target)
}

func IsStorage(err error) bool {
	var target *StorageError
	return errors.As(err, &target)
}

// IsDomain reports whether err already belongs to the error taxonomy above.
func IsDomain(err error) bool {
	return IsValidation(err) || IsNotFound(err) || IsUnauthorized(err) ||
		IsConflict(err) || IsCredentials(err) || IsStorage(err)
}
