package services

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("invalid_or_conflict")
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSignature   = errors.New("invalid signature")
)

// notFound maps gorm's record-not-found onto ErrNotFound with a subject.
func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &subjectError{what: what, err: ErrNotFound}
	}
	return err
}

func notFoundErr(what string) error {
	return &subjectError{what: what, err: ErrNotFound}
}

type subjectError struct {
	what string
	err  error
}

func (e *subjectError) Error() string { return e.what + ": " + e.err.Error() }
func (e *subjectError) Unwrap() error { return e.err }

func invalid(msg string) error {
	return &subjectError{what: msg, err: ErrInvalidInput}
}
