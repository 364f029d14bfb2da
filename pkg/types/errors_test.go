package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	assert.ErrorIs(t, ErrClientNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrDocumentNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrDuplicateClarityID, ErrConstraintViolation)
	assert.Equal(t, "client not found", ErrClientNotFound.Error())

	err := ValidationError("%s is required", "name")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "name is required")
}

func TestStorageError(t *testing.T) {
	assert.NoError(t, StorageError(nil, "ignored"))

	cause := errors.New("disk I/O error")
	err := StorageError(cause, "failed to create client")
	assert.ErrorIs(t, err, ErrStorageFailure)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNotFound)
}
