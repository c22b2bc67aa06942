// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-member-portal/internal/config"
	"github.com/MKhiriev/go-member-portal/internal/crypto"
	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/MKhiriev/go-member-portal/internal/store"
	"github.com/MKhiriev/go-member-portal/internal/utils"
	"github.com/MKhiriev/go-member-portal/internal/validators"
	"github.com/MKhiriev/go-member-portal/models"
)

// CredentialStore centralises everything that touches a credential: password
// hashing and verification, the password policy, and the mint/redeem cycle
// of mailed recovery tokens. Auth and account services delegate here so the
// rules live in exactly one place.
//
// All state is read-only after construction; the store is safe for
// concurrent use.
type CredentialStore struct {
	users  store.UserRepository
	policy validators.PasswordPolicy

	tokenSignKey         string
	tokenIssuer          string
	resetTokenDuration   time.Duration
	confirmTokenDuration time.Duration

	logger *logger.Logger
}

// NewCredentialStore constructs a [CredentialStore] with the default
// password policy and token parameters from cfg.
func NewCredentialStore(users store.UserRepository, cfg config.Auth, logger *logger.Logger) *CredentialStore {
	logger.Debug().Msg("creating credential store")
	return &CredentialStore{
		users:                users,
		policy:               validators.DefaultPasswordPolicy,
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		resetTokenDuration:   cfg.ResetTokenDuration,
		confirmTokenDuration: cfg.ConfirmTokenDuration,
		logger:               logger,
	}
}

// Policy returns the active password policy.
func (c *CredentialStore) Policy() validators.PasswordPolicy {
	return c.policy
}

// HashPassword validates password against the policy and returns its bcrypt
// hash. Policy violations surface as a *ValidationError listing every
// unmet requirement.
func (c *CredentialStore) HashPassword(password string) (string, error) {
	if ok, reasons := c.policy.Validate(password); !ok {
		return "", NewValidationError(reasons...)
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return hash, nil
}

// VerifyPassword compares password against the account's stored hash.
// A mismatch is reported as [ErrInvalidCredentials].
func (c *CredentialStore) VerifyPassword(user models.User, password string) error {
	if err := crypto.ComparePassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, crypto.ErrHashMismatch) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("error comparing password: %w", err)
	}

	return nil
}

// SetPassword validates, hashes and persists a new password for the user.
// The repository stamps the change time and clears the forced-change flag
// in the same statement.
func (c *CredentialStore) SetPassword(ctx context.Context, userID, newPassword string) error {
	log := logger.FromContext(ctx)

	hash, err := c.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := c.users.SetPassword(ctx, userID, hash, time.Now()); err != nil {
		log.Err(err).Str("func", "*CredentialStore.SetPassword").Msg("error persisting new password")
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("error persisting new password: %w", err)
	}

	return nil
}

// IssueResetToken mints a password-reset token for the user.
func (c *CredentialStore) IssueResetToken(userID string) (models.RecoveryToken, error) {
	token, err := utils.GenerateRecoveryToken(c.tokenIssuer, userID, models.PurposePasswordReset, c.resetTokenDuration, c.tokenSignKey)
	if err != nil {
		return models.RecoveryToken{}, fmt.Errorf("error issuing reset token: %w", err)
	}

	return token, nil
}

// IssueConfirmToken mints an email-confirmation token for the user.
func (c *CredentialStore) IssueConfirmToken(userID string) (models.RecoveryToken, error) {
	token, err := utils.GenerateRecoveryToken(c.tokenIssuer, userID, models.PurposeEmailConfirm, c.confirmTokenDuration, c.tokenSignKey)
	if err != nil {
		return models.RecoveryToken{}, fmt.Errorf("error issuing confirmation token: %w", err)
	}

	return token, nil
}

// RedeemToken validates tokenString for the given purpose and account.
// Every failure mode (bad signature, expiry, purpose mismatch, wrong
// account) collapses into [ErrInvalidToken] so callers leak nothing about
// which check failed.
func (c *CredentialStore) RedeemToken(tokenString, wantPurpose, wantUserID string) error {
	token, err := utils.ValidateAndParseRecoveryToken(tokenString, c.tokenSignKey, c.tokenIssuer, wantPurpose)
	if err != nil {
		return ErrInvalidToken
	}
	if token.UserID != wantUserID {
		return ErrInvalidToken
	}

	return nil
}
