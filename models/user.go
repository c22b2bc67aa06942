package models

import "time"

// Role names assignable to a user account. Exactly one role is granted at
// registration time: RoleUser via the public endpoint, RoleAdmin via the
// admin endpoint.
const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// User represents a member account used for authentication and authorization.
// It contains identity attributes, credential state, and the lockout counters
// that drive the login state machine.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the opaque unique identifier of the user (UUID string).
	UserID string `json:"userId"`

	// Email is the unique, case-insensitive account identifier.
	// Stored lowercased; used during authentication and for all mail delivery.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// FirstName and LastName are the display names of the user.
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Organization is an optional affiliation; empty when omitted.
	Organization string `json:"organizationName"`

	// Role is the single role granted at creation: RoleUser or RoleAdmin.
	Role string `json:"-"`

	// EmailConfirmed reports whether the confirmation link has been redeemed.
	// Login is rejected until it is set.
	EmailConfirmed bool `json:"-"`

	// TwoFactorEnabled marks accounts that require an email one-time code
	// after a successful password check.
	TwoFactorEnabled bool `json:"-"`

	// RequirePasswordChange forces a password change on next login.
	// Cleared whenever the password is reset or changed.
	RequirePasswordChange bool `json:"-"`

	// FailedAttempts counts consecutive failed password checks.
	// Reset to zero on successful authentication.
	FailedAttempts int `json:"-"`

	// LockoutUntil is the end of the current lockout window, if any.
	// While it lies in the future all login attempts are rejected.
	LockoutUntil *time.Time `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`

	// LastLoginAt is stamped on every completed authentication.
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`

	// LastPasswordChangedAt is stamped on password reset and change.
	LastPasswordChangedAt *time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsLockedOut reports whether the account is inside an active lockout window
// at the given instant.
func (u User) IsLockedOut(now time.Time) bool {
	return u.LockoutUntil != nil && now.Before(*u.LockoutUntil)
}
