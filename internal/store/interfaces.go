package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-member-portal/models"
)

// UserRepository is the data-access surface for member accounts.
// All timestamps are supplied by the caller so that every state change is a
// single atomic write that cannot be torn by cancellation.
type UserRepository interface {
	// CreateUser persists a new account and returns the stored row.
	// Returns ErrEmailAlreadyExists when the (case-insensitive) email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its lowercased email.
	// Returns ErrNoUserWasFound when absent.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks an account up by its opaque identifier.
	// Returns ErrNoUserWasFound when absent.
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// UpdateProfile overwrites the mutable profile fields.
	UpdateProfile(ctx context.Context, userID, firstName, lastName, organization string) error

	// CompleteLogin stamps last_login_at and clears the failed-attempt
	// counter and lockout window in one statement.
	CompleteLogin(ctx context.Context, userID string, at time.Time) error

	// RegisterFailedAttempt increments the failed-attempt counter and, when
	// the incremented value reaches threshold, sets the lockout window end
	// to lockedUntil — all in one conditional statement. It returns the
	// post-increment counter value.
	RegisterFailedAttempt(ctx context.Context, userID string, threshold int, lockedUntil time.Time) (int, error)

	// ResetLockout clears the failed-attempt counter and lockout window.
	ResetLockout(ctx context.Context, userID string) error

	// SetPassword replaces the stored hash, stamps
	// last_password_changed_at, and clears require_password_change.
	SetPassword(ctx context.Context, userID, passwordHash string, at time.Time) error

	// ConfirmEmail marks the address confirmed. Returns
	// ErrEmailAlreadyConfirmed when it already was.
	ConfirmEmail(ctx context.Context, userID string) error

	// SetTwoFactorEnabled toggles the second-factor requirement.
	SetTwoFactorEnabled(ctx context.Context, userID string, enabled bool) error
}

// TwoFactorRepository owns the one-time code ledger.
type TwoFactorRepository interface {
	// SaveCode persists a freshly minted, unused code.
	SaveCode(ctx context.Context, code models.TwoFactorCode) error

	// ConsumeCode atomically marks the matching code used, but only if it
	// is still unused and unexpired at now. Returns ErrNoValidCode when no
	// such code exists; two concurrent calls can never both succeed.
	ConsumeCode(ctx context.Context, userID, code string, now time.Time) error

	// MarkCodeUsed idempotently flips the used flag on the matching record;
	// no-op if absent.
	MarkCodeUsed(ctx context.Context, userID, code string) error

	// DeleteExpiredCodes removes every record that is expired at now or
	// already used. Returns the number of rows removed.
	DeleteExpiredCodes(ctx context.Context, now time.Time) (int64, error)
}

// SessionRepository owns server-side authentication sessions.
type SessionRepository interface {
	// CreateSession persists a new session row.
	CreateSession(ctx context.Context, session models.Session) error

	// GetSession fetches a live session (expires_at > now).
	// Returns ErrNoSessionWasFound for unknown or expired identifiers.
	GetSession(ctx context.Context, sessionID string, now time.Time) (models.Session, error)

	// ExtendSession pushes the expiration forward (sliding lifetime).
	ExtendSession(ctx context.Context, sessionID string, expiresAt time.Time) error

	// DeleteSession removes a session; no-op if absent.
	DeleteSession(ctx context.Context, sessionID string) error

	// DeleteExpiredSessions removes every session dead at now.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// InstallHistoryRepository owns the append-only download log.
type InstallHistoryRepository interface {
	// AddRecord appends one record and returns it with the server-assigned ID.
	AddRecord(ctx context.Context, record models.InstallHistoryRecord) (models.InstallHistoryRecord, error)

	// ListByUser returns the user's records, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.InstallHistoryRecord, error)
}

// InstallerFileStore serves platform installer artifacts from the configured
// directory.
type InstallerFileStore interface {
	// WindowsInstaller opens the Windows installer artifact and returns the
	// stream together with its file name. Returns ErrInstallerNotFound when
	// the directory holds no matching artifact. The caller owns the stream
	// and must close it.
	WindowsInstaller(ctx context.Context) (io.ReadCloser, string, error)
}

// ErrorClassificator classifies low-level database errors as retryable or
// non-retryable for callers that want to distinguish transient failures.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
