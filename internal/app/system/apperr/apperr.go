// Package apperr carries the error kinds the directories raise and the HTTP
// layer maps to status codes. Kinds are sentinel errors so callers can test
// with errors.Is regardless of the wrapped message.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means a referenced user or group id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict means a create or rename collided with an existing name.
	ErrConflict = errors.New("conflict")

	// ErrInvalidArgument means a value outside the allowed set, or a
	// semantic mismatch such as renaming against a group the user does not
	// belong to.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyResult means a listing operation found zero rows. Absence of
	// data is surfaced to the caller as an error, not an empty collection.
	ErrEmptyResult = errors.New("empty result")
)

// E wraps kind with a human-readable message. The kind stays visible to
// errors.Is; the message is what the HTTP layer returns as detail.
func E(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{kind}, args...)...)
}

// Detail returns the message portion of an error produced by E, without the
// kind prefix. For errors not produced by E it returns err.Error().
func Detail(err error) string {
	for _, kind := range []error{ErrNotFound, ErrConflict, ErrInvalidArgument, ErrEmptyResult} {
		if errors.Is(err, kind) {
			msg := err.Error()
			prefix := kind.Error() + ": "
			if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
				return msg[len(prefix):]
			}
			return msg
		}
	}
	return err.Error()
}
