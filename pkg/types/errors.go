package types

import (
	"errors"
	"fmt"
)

var (
	ErrValidation          = errors.New("validation error")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrNotFound            = errors.New("not found")
	ErrStorageFailure      = errors.New("storage failure")
)

var (
	ErrClientNotFound     = fmt.Errorf("client %w", ErrNotFound)
	ErrDocumentNotFound   = fmt.Errorf("document %w", ErrNotFound)
	ErrDuplicateClarityID = fmt.Errorf("clarity id already in use: %w", ErrConstraintViolation)
)

// ValidationError reports missing or malformed caller input.
func ValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// StorageError marks err as a persistence failure while keeping it
// inspectable with errors.Is/As.
func StorageError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", msg, ErrStorageFailure, err)
}
