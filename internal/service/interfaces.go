package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-member-portal/models"
)

// LoginResult is the outcome of a successful credential check. When the
// account demands a one-time code, RequiresTwoFactor is set and Session is
// zero; otherwise Session carries a freshly issued server-side session.
type LoginResult struct {
	UserID            string
	RequiresTwoFactor bool
	Session           models.Session
}

// AuthService drives the login state machine and owns server-side sessions.
type AuthService interface {
	// Login verifies the password and either issues a session or reports
	// that a one-time code is required. Failure modes:
	// [ErrInvalidCredentials], [ErrAccountLocked], [ErrEmailNotConfirmed].
	Login(ctx context.Context, req models.LoginRequest) (LoginResult, error)

	// LoginWithTwoFactor redeems a one-time code and completes a pending
	// two-factor login. The code is consumed atomically; a replay fails
	// with [ErrInvalidCode].
	LoginWithTwoFactor(ctx context.Context, userID, code string) (LoginResult, error)

	// SendTwoFactorCode mints a fresh one-time code and mails it.
	SendTwoFactorCode(ctx context.Context, userID string) error

	// VerifyTwoFactorCode consumes a code without establishing a session.
	VerifyTwoFactorCode(ctx context.Context, userID, code string) error

	// ValidateSession resolves a live session and slides its expiration
	// forward. Returns [ErrSessionNotFound] for unknown or expired ids.
	ValidateSession(ctx context.Context, sessionID string) (models.Session, error)

	// Logout terminates the session. Idempotent: terminating an absent
	// session succeeds.
	Logout(ctx context.Context, sessionID string) error
}

// AccountService owns the account lifecycle: registration, email
// confirmation, and the password recovery flows.
type AccountService interface {
	// Register creates a regular account and mails a confirmation link.
	// A failure to deliver the mail does not fail the registration.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// RegisterAdmin creates an administrator account the same way.
	RegisterAdmin(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// EnsureAdminAccount creates the configured bootstrap administrator if
	// it does not exist yet. A no-op when no bootstrap admin is configured.
	EnsureAdminAccount(ctx context.Context) error

	// ForgotPassword mails a reset link. An unknown address is reported as
	// success so the endpoint cannot be used to enumerate accounts.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword redeems a mailed reset token for a new password.
	// Unlike ForgotPassword this does not mask account existence:
	// an unknown email fails with [ErrUserNotFound].
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error

	// ConfirmEmail redeems a mailed confirmation token. A replay fails
	// with [ErrEmailAlreadyConfirmed].
	ConfirmEmail(ctx context.Context, userID, token string) error

	// ResendConfirmationEmail mails a fresh confirmation link. An unknown
	// address is reported as success; an already-confirmed one fails with
	// [ErrEmailAlreadyConfirmed].
	ResendConfirmationEmail(ctx context.Context, email string) error

	// ChangePassword replaces the password of an authenticated user after
	// re-verifying the current one.
	ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error
}

// ProfileService serves account projections and profile updates.
type ProfileService interface {
	// Info returns the read-only account projection.
	Info(ctx context.Context, userID string) (models.User, error)

	// MyPage returns the profile together with the install history,
	// newest first.
	MyPage(ctx context.Context, userID string) (models.User, []models.InstallHistoryRecord, error)

	// UpdateProfile overwrites the mutable profile fields.
	UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) error

	// SetTwoFactor switches the email-code second factor on or off for the
	// account. Takes effect on the next login.
	SetTwoFactor(ctx context.Context, userID string, enabled bool) error
}

// DownloadService gates installer downloads and records them.
type DownloadService interface {
	// WindowsInstaller opens the Windows installer stream and appends an
	// install-history record. The record is written only once the artifact
	// is confirmed present. The caller owns the stream.
	WindowsInstaller(ctx context.Context, userID string) (io.ReadCloser, string, error)
}

// ContactService relays contact-form inquiries to the administrator inbox.
type ContactService interface {
	Relay(ctx context.Context, req models.ContactRequest) error
}
