package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-member-portal/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateRecoveryToken creates a signed HMAC-SHA256 JWT authorizing a single
// sensitive action for a single user.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - purpose:         the action the token authorizes
//     (models.PurposePasswordReset or models.PurposeEmailConfirm)
//
// All parameters are required. Returns an error if any of them are empty or
// zero, or if signing fails.
func GenerateRecoveryToken(issuer, userID, purpose string, tokenDuration time.Duration, signKey string) (models.RecoveryToken, error) {
	if issuer == "" || userID == "" || purpose == "" || tokenDuration == 0 || signKey == "" {
		return models.RecoveryToken{}, errors.New("invalid params for generating recovery token")
	}

	now := time.Now()
	claims := &models.RecoveryClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Purpose: purpose,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.RecoveryToken{}, fmt.Errorf("error occurred during signing recovery token: %w", err)
	}

	return models.RecoveryToken{
		Token:        token,
		SignedString: tokenString,
		UserID:       userID,
		Purpose:      purpose,
	}, nil
}

// ValidateAndParseRecoveryToken validates the given recovery token string and
// extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided issuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
//   - "purpose" claim equality with wantPurpose, so that a password-reset
//     token can never confirm an email address and vice versa
//
// Returns the decoded token model on success, or an error on any validation
// failure. Callers normally collapse that error into a single generic
// invalid-token signal.
func ValidateAndParseRecoveryToken(tokenString, signKey, issuer, wantPurpose string) (models.RecoveryToken, error) {
	claims := &models.RecoveryClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.RecoveryToken{}, fmt.Errorf("error occurred validating and parsing recovery token: %w", err)
	}

	if claims.Subject == "" {
		return models.RecoveryToken{}, errors.New("empty subject in recovery token")
	}
	if claims.Purpose != wantPurpose {
		return models.RecoveryToken{}, errors.New("recovery token purpose mismatch")
	}

	return models.RecoveryToken{
		Token:        token,
		SignedString: tokenString,
		UserID:       claims.Subject,
		Purpose:      claims.Purpose,
	}, nil
}
