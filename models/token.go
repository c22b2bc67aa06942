package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Recovery token purposes. A token minted for one purpose is never accepted
// for another.
const (
	PurposePasswordReset = "password_reset"
	PurposeEmailConfirm  = "email_confirm"
)

// RecoveryClaims is the claim set carried by recovery tokens: the standard
// registered claims plus the purpose the token was minted for.
type RecoveryClaims struct {
	jwt.RegisteredClaims

	// Purpose scopes the token to a single sensitive action
	// (PurposePasswordReset or PurposeEmailConfirm).
	Purpose string `json:"purpose"`
}

// RecoveryToken wraps a signed, time-boxed JWT that authorizes a single
// sensitive action (password reset or email confirmation) without a live
// session. The compact JWS form is URL-safe and is embedded directly in
// mailed links; tokens are never persisted server-side.
type RecoveryToken struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the account identifier extracted from the "sub" claim.
	UserID string `json:"-"`

	// Purpose is the cached "purpose" claim value.
	Purpose string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *RecoveryToken) String() string {
	return t.SignedString
}
