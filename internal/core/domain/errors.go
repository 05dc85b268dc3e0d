package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrConflict is a uniqueness violation: duplicate username or a
	// duplicate todo title for the same owner.
	ErrConflict = errors.New("already exists")

	// ErrAuthenticationFailed covers both unknown username and wrong
	// password so the login path cannot be used to enumerate usernames.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrNotFound is returned by repository lookups that miss.
	ErrNotFound = errors.New("not found")
)

// ConflictError names the offending field so registration rejections can
// tell the user which username is taken.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %s already registered", e.Value, e.Field)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

func NewConflictError(field, value string) *ConflictError {
	return &ConflictError{Field: field, Value: value}
}
