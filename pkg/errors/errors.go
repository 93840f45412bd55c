// Package errors provides common, reusable error values and helpers.
package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Malformed input. Recovered locally by the core; only strict helpers return these.
	ErrMalformedAmount  = errors.New("malformed amount")
	ErrUnknownCurrency  = errors.New("unknown currency code")
	ErrUnknownWallet    = errors.New("unknown wallet type")
	ErrUnknownCategory  = errors.New("unknown portfolio category")
	ErrCreditOverLimit  = errors.New("available and used credit exceed credit limit")
	ErrStaleAccountData = errors.New("stale account data")

	// Collaborator failures
	ErrProfileUnavailable  = errors.New("user profile unavailable")
	ErrSessionUnavailable  = errors.New("session unavailable")
	ErrAccountsUnavailable = errors.New("account data unavailable")
	ErrFixtureInvalid      = errors.New("invalid fixture document")
)

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
