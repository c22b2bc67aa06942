package service

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidDataProvided is returned when a request is missing required
	// fields or carries values that cannot be processed.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers every failed credential check: unknown
	// email, wrong password. The two cases are deliberately
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountLocked is returned while the account's lockout window is
	// open. No password comparison happens in that state.
	ErrAccountLocked = errors.New("account is temporarily locked")

	// ErrEmailNotConfirmed is returned when the password check succeeded
	// but the account's email address has not been confirmed yet.
	ErrEmailNotConfirmed = errors.New("email address is not confirmed")

	// ErrInvalidCode is returned when a one-time code is wrong, expired or
	// already used. The cases are indistinguishable to the caller.
	ErrInvalidCode = errors.New("invalid or expired code")

	// ErrInvalidToken is returned when a mailed recovery token fails
	// validation: bad signature, expired, wrong purpose or wrong account.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrUserNotFound is returned by operations that do not mask account
	// existence, such as password reset redemption.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyRegistered is returned when registration collides with
	// an existing account.
	ErrEmailAlreadyRegistered = errors.New("email is already registered")

	// ErrEmailAlreadyConfirmed is returned when a confirmation is replayed
	// or a confirmation resend targets an already-confirmed account.
	ErrEmailAlreadyConfirmed = errors.New("email is already confirmed")

	// ErrSessionNotFound is returned when a session identifier does not
	// resolve to a live session.
	ErrSessionNotFound = errors.New("session not found")

	// ErrInstallerNotAvailable is returned when no installer artifact is
	// present for the requested platform.
	ErrInstallerNotAvailable = errors.New("installer is not available")
)

// ValidationError carries the individual reasons a request failed
// validation, so the transport layer can surface all of them at once.
type ValidationError struct {
	Reasons []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Reasons, "; ")
}

// Is makes errors.Is(err, ErrInvalidDataProvided) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidDataProvided
}

// NewValidationError wraps the given reasons into a *ValidationError.
func NewValidationError(reasons ...string) *ValidationError {
	return &ValidationError{Reasons: reasons}
}
