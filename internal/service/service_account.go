// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-member-portal/internal/config"
	"github.com/MKhiriev/go-member-portal/internal/email"
	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/MKhiriev/go-member-portal/internal/store"
	"github.com/MKhiriev/go-member-portal/internal/utils"
	"github.com/MKhiriev/go-member-portal/internal/validators"
	"github.com/MKhiriev/go-member-portal/models"
)

// accountService is the concrete implementation of [AccountService]. It
// owns account creation, email confirmation and both password recovery
// flows.
//
// Enumeration masking is deliberately asymmetric: ForgotPassword and
// ResendConfirmationEmail report success for unknown addresses, while
// ResetPassword does not. A reset request is only actionable with a valid
// mailed token, so hiding account existence there buys nothing.
type accountService struct {
	users       store.UserRepository
	credentials *CredentialStore
	sender      email.Sender

	// appURL is the public base URL embedded in mailed links.
	appURL string

	// admin describes the optional bootstrap administrator ensured at
	// startup.
	admin config.Admin

	logger *logger.Logger
}

// NewAccountService constructs an [AccountService] wired to the given
// repositories and mail sender.
func NewAccountService(
	users store.UserRepository,
	credentials *CredentialStore,
	sender email.Sender,
	cfg config.Auth,
	admin config.Admin,
	logger *logger.Logger,
) AccountService {
	return &accountService{
		users:       users,
		credentials: credentials,
		sender:      sender,
		appURL:      cfg.AppURL,
		admin:       admin,
		logger:      logger,
	}
}

// Register creates a regular account and mails a confirmation link.
//
// The account is persisted before any mail goes out, and a delivery failure
// does not roll it back: the user can request a fresh link through
// ResendConfirmationEmail at any time.
func (a *accountService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return a.register(ctx, req, models.RoleUser)
}

// RegisterAdmin creates an administrator account the same way as Register.
func (a *accountService) RegisterAdmin(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return a.register(ctx, req, models.RoleAdmin)
}

func (a *accountService) register(ctx context.Context, req models.RegisterRequest, role string) (models.User, error) {
	log := logger.FromContext(ctx)

	if reasons := validators.RegisterRequest(req, a.credentials.Policy()); len(reasons) > 0 {
		return models.User{}, NewValidationError(reasons...)
	}

	hash, err := a.credentials.HashPassword(req.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		UserID:       utils.NewID(),
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Organization: req.Organization,
		Role:         role,
		CreatedAt:    time.Now(),
	}

	created, err := a.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrEmailAlreadyRegistered
		}
		log.Err(err).Str("func", "*accountService.register").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	// best effort: a failed delivery must not undo the registration
	if err := a.mailConfirmationLink(ctx, created); err != nil {
		log.Warn().Err(err).Str("userID", created.UserID).Msg("confirmation email was not delivered")
	}

	return created, nil
}

// EnsureAdminAccount creates the configured bootstrap administrator if no
// account with that email exists yet. The account is created with the email
// already confirmed so the administrator can sign in immediately.
func (a *accountService) EnsureAdminAccount(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if a.admin.Email == "" {
		return nil
	}

	_, err := a.users.FindUserByEmail(ctx, a.admin.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("error looking up bootstrap admin: %w", err)
	}

	hash, err := a.credentials.HashPassword(a.admin.Password)
	if err != nil {
		return fmt.Errorf("bootstrap admin password rejected: %w", err)
	}

	admin := models.User{
		UserID:         utils.NewID(),
		Email:          a.admin.Email,
		PasswordHash:   hash,
		FirstName:      "Admin",
		LastName:       "Admin",
		Role:           models.RoleAdmin,
		EmailConfirmed: true,
		CreatedAt:      time.Now(),
	}

	if _, err := a.users.CreateUser(ctx, admin); err != nil {
		// a concurrent instance may have won the race
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return nil
		}
		return fmt.Errorf("error creating bootstrap admin: %w", err)
	}

	log.Info().Str("email", a.admin.Email).Msg("bootstrap admin account created")
	return nil
}

// ForgotPassword mails a password-reset link. An unknown address returns
// success without sending anything, so the endpoint cannot be used to probe
// which emails have accounts.
func (a *accountService) ForgotPassword(ctx context.Context, emailAddr string) error {
	log := logger.FromContext(ctx)

	if !validators.ValidEmail(emailAddr) {
		return NewValidationError("a valid email address is required")
	}

	user, err := a.users.FindUserByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Msg("password reset requested for unknown address")
			return nil
		}
		return fmt.Errorf("user search by email failed: %w", err)
	}

	token, err := a.credentials.IssueResetToken(user.UserID)
	if err != nil {
		return err
	}

	msg := email.PasswordResetMessage(a.appURL, user.Email, token.String())
	if err := a.sender.Send(ctx, msg); err != nil {
		log.Err(err).Str("func", "*accountService.ForgotPassword").Msg("error mailing reset link")
		return fmt.Errorf("error mailing reset link: %w", err)
	}

	return nil
}

// ResetPassword redeems a mailed reset token for a new password. Unlike
// ForgotPassword, an unknown email is reported as [ErrUserNotFound]: the
// caller already holds a mailed token, so there is nothing left to mask.
func (a *accountService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if req.Email == "" || req.Token == "" {
		return ErrInvalidToken
	}

	user, err := a.users.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("user search by email failed: %w", err)
	}

	if err := a.credentials.RedeemToken(req.Token, models.PurposePasswordReset, user.UserID); err != nil {
		return err
	}

	return a.credentials.SetPassword(ctx, user.UserID, req.NewPassword)
}

// ConfirmEmail redeems a mailed confirmation token. The underlying update
// is guarded, so redeeming the same link twice fails with
// [ErrEmailAlreadyConfirmed].
func (a *accountService) ConfirmEmail(ctx context.Context, userID, token string) error {
	log := logger.FromContext(ctx)

	if userID == "" || token == "" {
		return ErrInvalidToken
	}

	if err := a.credentials.RedeemToken(token, models.PurposeEmailConfirm, userID); err != nil {
		return err
	}

	if err := a.users.ConfirmEmail(ctx, userID); err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyConfirmed):
			return ErrEmailAlreadyConfirmed
		case errors.Is(err, store.ErrNoUserWasFound):
			return ErrUserNotFound
		default:
			log.Err(err).Str("func", "*accountService.ConfirmEmail").Msg("error confirming email")
			return fmt.Errorf("error confirming email: %w", err)
		}
	}

	log.Info().Str("userID", userID).Msg("email confirmed")
	return nil
}

// ResendConfirmationEmail mails a fresh confirmation link. Unknown
// addresses are masked as success; an already-confirmed account is an
// explicit error so the frontend can tell the user to just sign in.
func (a *accountService) ResendConfirmationEmail(ctx context.Context, emailAddr string) error {
	log := logger.FromContext(ctx)

	if !validators.ValidEmail(emailAddr) {
		return NewValidationError("a valid email address is required")
	}

	user, err := a.users.FindUserByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Msg("confirmation resend requested for unknown address")
			return nil
		}
		return fmt.Errorf("user search by email failed: %w", err)
	}

	if user.EmailConfirmed {
		return ErrEmailAlreadyConfirmed
	}

	if err := a.mailConfirmationLink(ctx, user); err != nil {
		log.Err(err).Str("func", "*accountService.ResendConfirmationEmail").Msg("error mailing confirmation link")
		return fmt.Errorf("error mailing confirmation link: %w", err)
	}

	return nil
}

// ChangePassword replaces the password of an authenticated user after
// re-verifying the current one. A wrong current password surfaces as
// [ErrInvalidCredentials].
func (a *accountService) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error {
	if userID == "" || req.CurrentPassword == "" {
		return ErrInvalidCredentials
	}

	user, err := a.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if err := a.credentials.VerifyPassword(user, req.CurrentPassword); err != nil {
		return err
	}

	return a.credentials.SetPassword(ctx, userID, req.NewPassword)
}

func (a *accountService) mailConfirmationLink(ctx context.Context, user models.User) error {
	token, err := a.credentials.IssueConfirmToken(user.UserID)
	if err != nil {
		return err
	}

	return a.sender.Send(ctx, email.ConfirmationMessage(a.appURL, user.Email, user.UserID, token.String()))
}
