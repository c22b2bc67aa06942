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
	"github.com/MKhiriev/go-member-portal/internal/email"
	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/MKhiriev/go-member-portal/internal/store"
	"github.com/MKhiriev/go-member-portal/internal/utils"
	"github.com/MKhiriev/go-member-portal/models"
)

// authService is the concrete implementation of [AuthService]. It drives
// the login state machine: lockout window check, password verification,
// email-confirmation gating, the optional one-time code step, and finally
// session issuance. Every state transition is persisted before the method
// returns, so a crash never loses a recorded failed attempt or an issued
// session.
type authService struct {
	users       store.UserRepository
	codes       store.TwoFactorRepository
	sessions    store.SessionRepository
	credentials *CredentialStore
	sender      email.Sender

	// lockoutThreshold and lockoutWindow define the account lockout
	// policy: after lockoutThreshold consecutive failed password checks
	// all logins are rejected until lockoutWindow elapses.
	lockoutThreshold int
	lockoutWindow    time.Duration

	// sessionDuration is the sliding session lifetime.
	sessionDuration time.Duration

	// codeDuration is the validity window of mailed one-time codes.
	codeDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given
// repositories and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(
	users store.UserRepository,
	codes store.TwoFactorRepository,
	sessions store.SessionRepository,
	credentials *CredentialStore,
	sender email.Sender,
	cfg config.Auth,
	logger *logger.Logger,
) AuthService {
	return &authService{
		users:            users,
		codes:            codes,
		sessions:         sessions,
		credentials:      credentials,
		sender:           sender,
		lockoutThreshold: cfg.LockoutThreshold,
		lockoutWindow:    cfg.LockoutWindow,
		sessionDuration:  cfg.SessionDuration,
		codeDuration:     cfg.TwoFactorCodeDuration,
		logger:           logger,
	}
}

// Login authenticates an account by email and password.
//
// The checks run in a fixed order:
//  1. the account is looked up; an unknown email fails exactly like a
//     wrong password ([ErrInvalidCredentials]);
//  2. an open lockout window rejects the attempt ([ErrAccountLocked])
//     before any password comparison happens;
//  3. a failed password check is recorded synchronously and may arm the
//     lockout window; crossing the threshold on this very attempt is
//     already reported as [ErrAccountLocked];
//  4. an unconfirmed email rejects the otherwise valid credentials
//     ([ErrEmailNotConfirmed]);
//  5. accounts with the second factor enabled get a one-time code mailed
//     and no session; everyone else gets a fresh session and the
//     last-login stamp.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (LoginResult, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	user, err := a.users.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return LoginResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	now := time.Now()
	if user.IsLockedOut(now) {
		log.Warn().Str("userID", user.UserID).Time("lockedUntil", *user.LockoutUntil).Msg("login rejected: account locked")
		return LoginResult{}, ErrAccountLocked
	}

	if err := a.credentials.VerifyPassword(user, req.Password); err != nil {
		if !errors.Is(err, ErrInvalidCredentials) {
			return LoginResult{}, err
		}

		attempts, recErr := a.users.RegisterFailedAttempt(ctx, user.UserID, a.lockoutThreshold, now.Add(a.lockoutWindow))
		if recErr != nil {
			log.Err(recErr).Str("func", "*authService.Login").Msg("error recording failed attempt")
			return LoginResult{}, fmt.Errorf("error recording failed attempt: %w", recErr)
		}
		if attempts >= a.lockoutThreshold {
			log.Warn().Str("userID", user.UserID).Int("attempts", attempts).Msg("account locked out")
			return LoginResult{}, ErrAccountLocked
		}

		return LoginResult{}, ErrInvalidCredentials
	}

	if !user.EmailConfirmed {
		return LoginResult{}, ErrEmailNotConfirmed
	}

	if user.TwoFactorEnabled {
		if err := a.mintAndMailCode(ctx, user); err != nil {
			return LoginResult{}, err
		}
		return LoginResult{UserID: user.UserID, RequiresTwoFactor: true}, nil
	}

	return a.completeLogin(ctx, user.UserID)
}

// LoginWithTwoFactor completes a pending two-factor login by redeeming the
// mailed one-time code. The code is consumed in a single atomic statement;
// concurrent redemptions of the same code cannot both succeed, and a second
// presentation fails with [ErrInvalidCode].
func (a *authService) LoginWithTwoFactor(ctx context.Context, userID, code string) (LoginResult, error) {
	log := logger.FromContext(ctx)

	if userID == "" || code == "" {
		return LoginResult{}, ErrInvalidCode
	}

	if err := a.codes.ConsumeCode(ctx, userID, code, time.Now()); err != nil {
		if errors.Is(err, store.ErrNoValidCode) {
			return LoginResult{}, ErrInvalidCode
		}
		log.Err(err).Str("func", "*authService.LoginWithTwoFactor").Msg("error consuming one-time code")
		return LoginResult{}, fmt.Errorf("error consuming one-time code: %w", err)
	}

	return a.completeLogin(ctx, userID)
}

// SendTwoFactorCode mints a fresh one-time code for the account and mails
// it. The previous codes stay redeemable until they expire or are consumed.
func (a *authService) SendTwoFactorCode(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if userID == "" {
		return ErrInvalidDataProvided
	}

	user, err := a.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUserNotFound
		}
		log.Err(err).Str("func", "*authService.SendTwoFactorCode").Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	return a.mintAndMailCode(ctx, user)
}

// VerifyTwoFactorCode consumes a one-time code without establishing a
// session. Wrong, expired and already-used codes all fail with
// [ErrInvalidCode].
func (a *authService) VerifyTwoFactorCode(ctx context.Context, userID, code string) error {
	log := logger.FromContext(ctx)

	if userID == "" || code == "" {
		return ErrInvalidCode
	}

	if err := a.codes.ConsumeCode(ctx, userID, code, time.Now()); err != nil {
		if errors.Is(err, store.ErrNoValidCode) {
			return ErrInvalidCode
		}
		log.Err(err).Str("func", "*authService.VerifyTwoFactorCode").Msg("error consuming one-time code")
		return fmt.Errorf("error consuming one-time code: %w", err)
	}

	return nil
}

// ValidateSession resolves the session and slides its expiration forward by
// the configured lifetime. Unknown and expired sessions are
// indistinguishable and both fail with [ErrSessionNotFound].
func (a *authService) ValidateSession(ctx context.Context, sessionID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	if sessionID == "" {
		return models.Session{}, ErrSessionNotFound
	}

	now := time.Now()
	session, err := a.sessions.GetSession(ctx, sessionID, now)
	if err != nil {
		if errors.Is(err, store.ErrNoSessionWasFound) {
			return models.Session{}, ErrSessionNotFound
		}
		log.Err(err).Str("func", "*authService.ValidateSession").Msg("error fetching session")
		return models.Session{}, fmt.Errorf("error fetching session: %w", err)
	}

	newExpiry := now.Add(a.sessionDuration)
	if err := a.sessions.ExtendSession(ctx, sessionID, newExpiry); err != nil {
		// the session vanished between the two statements (logout race)
		if errors.Is(err, store.ErrNoSessionWasFound) {
			return models.Session{}, ErrSessionNotFound
		}
		log.Err(err).Str("func", "*authService.ValidateSession").Msg("error extending session")
		return models.Session{}, fmt.Errorf("error extending session: %w", err)
	}
	session.ExpiresAt = newExpiry

	return session, nil
}

// Logout terminates the session. Deleting an absent session is a no-op, so
// repeated logouts succeed.
func (a *authService) Logout(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	if sessionID == "" {
		return nil
	}

	if err := a.sessions.DeleteSession(ctx, sessionID); err != nil {
		log.Err(err).Str("func", "*authService.Logout").Msg("error deleting session")
		return fmt.Errorf("error deleting session: %w", err)
	}

	return nil
}

// completeLogin persists the success markers and issues a session. The
// last-login stamp and counter reset land in one statement; the session row
// is written before the result is returned, so the cookie the handler sets
// always refers to a stored session.
func (a *authService) completeLogin(ctx context.Context, userID string) (LoginResult, error) {
	log := logger.FromContext(ctx)

	now := time.Now()
	if err := a.users.CompleteLogin(ctx, userID, now); err != nil {
		log.Err(err).Str("func", "*authService.completeLogin").Msg("error recording login")
		return LoginResult{}, fmt.Errorf("error recording login: %w", err)
	}

	session := models.Session{
		SessionID: utils.NewID(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(a.sessionDuration),
	}
	if err := a.sessions.CreateSession(ctx, session); err != nil {
		log.Err(err).Str("func", "*authService.completeLogin").Msg("error creating session")
		return LoginResult{}, fmt.Errorf("error creating session: %w", err)
	}

	log.Info().Str("userID", userID).Msg("login completed")
	return LoginResult{UserID: userID, Session: session}, nil
}

// mintAndMailCode draws a fresh code, persists it and mails it. The code is
// stored before the mail goes out; a delivery failure surfaces as an error
// because the login cannot proceed without the code.
func (a *authService) mintAndMailCode(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	code, err := crypto.GenerateNumericCode()
	if err != nil {
		return err
	}

	record := models.TwoFactorCode{
		UserID:    user.UserID,
		Code:      code,
		ExpiresAt: time.Now().Add(a.codeDuration),
	}
	if err := a.codes.SaveCode(ctx, record); err != nil {
		log.Err(err).Str("func", "*authService.mintAndMailCode").Msg("error saving one-time code")
		return fmt.Errorf("error saving one-time code: %w", err)
	}

	if err := a.sender.Send(ctx, email.TwoFactorCodeMessage(user.Email, code)); err != nil {
		log.Err(err).Str("func", "*authService.mintAndMailCode").Msg("error mailing one-time code")
		return fmt.Errorf("error mailing one-time code: %w", err)
	}

	return nil
}
