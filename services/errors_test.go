package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubjectErrorMessages(t *testing.T) {
	err := invalid("travelDate is in the past")
	assert.EqualError(t, err, "travelDate is in the past: invalid input")
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = notFoundErr("tour")
	assert.EqualError(t, err, "tour: not found")
	assert.ErrorIs(t, err, ErrNotFound)
}
