package models

import "time"

// Session is the server-held authentication context binding a request to a
// user. The client carries only the opaque SessionID in an HTTP-only cookie;
// all state lives in the database.
//
// Sessions use sliding expiration: every authenticated request pushes
// ExpiresAt forward by the configured lifetime.
type Session struct {
	// SessionID is the opaque identifier stored in the cookie (UUID string).
	SessionID string

	// UserID is the authenticated account the session belongs to.
	UserID string

	// CreatedAt is the time the session was established.
	CreatedAt time.Time

	// ExpiresAt is the current end of life; extended on activity,
	// enforced on every lookup.
	ExpiresAt time.Time
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
