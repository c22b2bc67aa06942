package models

import "time"

// TwoFactorCode is a short-lived numeric one-time code delivered by email
// and presented as the second authentication factor.
//
// A code is valid iff it has not been used and its expiration lies in the
// future. Consumption is a single conditional update at the store layer, so
// two concurrent presentations of the same code cannot both succeed.
type TwoFactorCode struct {
	// UserID identifies the account the code was issued for.
	// Together with Code it forms the composite identity of the record.
	UserID string `json:"userId"`

	// Code is the six-digit value, stored as text to preserve leading
	// digits exactly as mailed.
	Code string `json:"code"`

	// ExpiresAt is the issue time plus the configured code lifetime.
	ExpiresAt time.Time `json:"-"`

	// Used is set once the code has been consumed. Used codes are never
	// accepted again and are removed by the periodic sweep.
	Used bool `json:"-"`
}

// TableName returns the name of the database table
// associated with the TwoFactorCode model.
func (c TwoFactorCode) TableName() string {
	return "two_factor_codes"
}
