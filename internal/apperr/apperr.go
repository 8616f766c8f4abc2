// Package apperr holds the error kinds shared by usecases and transports.
//
// Three kinds exist: validation failures (rejected before any store access),
// not-found (an empty result, not a fault) and everything else, which is treated
// as a store failure.
package apperr

import (
	"errors"
	"strings"
)

var ErrNotFound = errors.New("not found")

type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(e.Details, "; ")
}

func Validation(details ...string) error {
	return &ValidationError{Details: details}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

type notFoundError struct {
	what string
}

func (e notFoundError) Error() string { return e.what + " not found" }

func (e notFoundError) Is(target error) bool { return target == ErrNotFound }

// NotFound reports a missing entity; it matches ErrNotFound under errors.Is.
func NotFound(what string) error {
	return notFoundError{what: what}
}
