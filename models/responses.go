package models

import "time"

// AuthResponse is returned by the registration and login endpoints.
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	UserID  string `json:"userId,omitempty"`

	// RequiresTwoFactor is true when the password check succeeded but the
	// account demands a one-time code before a session is established.
	RequiresTwoFactor bool `json:"requiresTwoFactor"`
}

// TwoFactorResponse is returned by the code send/verify endpoints.
type TwoFactorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// UserInfoResponse is the read-only account projection served by
// GET /api/auth/manage/info.
type UserInfoResponse struct {
	UserID       string     `json:"userId"`
	Email        string     `json:"email"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Organization string     `json:"organizationName"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
}

// UserProfileResponse is the profile-plus-history projection served by
// GET /api/auth/mypage.
type UserProfileResponse struct {
	UserID         string                 `json:"userId"`
	Email          string                 `json:"email"`
	FirstName      string                 `json:"firstName"`
	LastName       string                 `json:"lastName"`
	Organization   string                 `json:"organizationName"`
	InstallHistory []InstallHistoryRecord `json:"installHistory"`
}
