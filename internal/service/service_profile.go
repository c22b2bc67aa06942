package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/MKhiriev/go-member-portal/internal/store"
	"github.com/MKhiriev/go-member-portal/internal/validators"
	"github.com/MKhiriev/go-member-portal/models"
)

// profileService is the concrete implementation of [ProfileService].
type profileService struct {
	users   store.UserRepository
	history store.InstallHistoryRepository
	logger  *logger.Logger
}

// NewProfileService constructs a [ProfileService] over the given
// repositories.
func NewProfileService(users store.UserRepository, history store.InstallHistoryRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		users:   users,
		history: history,
		logger:  logger,
	}
}

// Info returns the account record for the read-only info projection.
func (p *profileService) Info(ctx context.Context, userID string) (models.User, error) {
	user, err := p.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// MyPage returns the profile together with the install history, newest
// first. An account with no downloads yields an empty, non-nil slice.
func (p *profileService) MyPage(ctx context.Context, userID string) (models.User, []models.InstallHistoryRecord, error) {
	log := logger.FromContext(ctx)

	user, err := p.Info(ctx, userID)
	if err != nil {
		return models.User{}, nil, err
	}

	records, err := p.history.ListByUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*profileService.MyPage").Msg("error listing install history")
		return models.User{}, nil, fmt.Errorf("error listing install history: %w", err)
	}

	return user, records, nil
}

// UpdateProfile validates and persists the mutable profile fields.
func (p *profileService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) error {
	log := logger.FromContext(ctx)

	if reasons := validators.UpdateProfileRequest(req); len(reasons) > 0 {
		return NewValidationError(reasons...)
	}

	err := p.users.UpdateProfile(ctx, userID, req.FirstName, req.LastName, req.Organization)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUserNotFound
		}
		log.Err(err).Str("func", "*profileService.UpdateProfile").Msg("error updating profile")
		return fmt.Errorf("error updating profile: %w", err)
	}

	return nil
}

// SetTwoFactor switches the email-code second factor on or off. The change
// takes effect on the next login; live sessions are untouched.
func (p *profileService) SetTwoFactor(ctx context.Context, userID string, enabled bool) error {
	log := logger.FromContext(ctx)

	err := p.users.SetTwoFactorEnabled(ctx, userID, enabled)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUserNotFound
		}
		log.Err(err).Str("func", "*profileService.SetTwoFactor").Msg("error updating two-factor setting")
		return fmt.Errorf("error updating two-factor setting: %w", err)
	}

	return nil
}
