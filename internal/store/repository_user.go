package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/MKhiriev/go-member-portal/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles member account creation, lookup and credential state against
// the "users" table and works unchanged on both supported dialects.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is the subset of *sql.Row / *sql.Rows needed to hydrate models.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.UserID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Organization, &u.Role,
		&u.EmailConfirmed, &u.TwoFactorEnabled, &u.RequirePasswordChange,
		&u.FailedAttempts, &u.LockoutUntil, &u.CreatedAt, &u.LastLoginAt, &u.LastPasswordChangedAt,
	)
	return u, err
}

// CreateUser persists a new account record and returns the fully populated
// [models.User] as stored.
//
// The INSERT uses the [createUser] prepared query which returns all columns
// via a RETURNING clause, so the caller receives the canonical database
// representation of the newly created account. The email is lowercased
// before insertion so lookups stay case-insensitive.
//
// Error handling:
//   - unique constraint violation on email → [ErrEmailAlreadyExists];
//   - any other driver-level error → wrapped as "unexpected DB error";
//   - scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.UserID, strings.ToLower(user.Email), user.PasswordHash,
		user.FirstName, user.LastName, user.Organization, user.Role,
		user.EmailConfirmed, user.TwoFactorEnabled, user.RequirePasswordChange, user.CreatedAt,
	)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Bool("retryable", r.db.Classify(err) == Retryable).
			Msg("error: row is nil")

		if IsUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan saved user from db
	saved, err := scanUser(row)
	if err != nil {
		if IsUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return saved, nil
}

// FindUserByEmail retrieves the account whose email matches the given
// address (compared lowercased).
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound];
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByEmail, strings.ToLower(email))
	if err := row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).
			Str("func", "*userRepository.FindUserByEmail").
			Bool("retryable", r.db.Classify(err) == Retryable).
			Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, err
	}

	return found, nil
}

// FindUserByID retrieves the account with the given identifier.
// Returns [ErrNoUserWasFound] when no such account exists.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByID, userID)
	if err := row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).
			Str("func", "*userRepository.FindUserByID").
			Bool("retryable", r.db.Classify(err) == Retryable).
			Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		return models.User{}, err
	}

	return found, nil
}

// UpdateProfile overwrites the mutable profile fields of the account.
// The UPDATE is built with squirrel so the statement stays valid on both
// dialects. Returns [ErrNoUserWasFound] when no row matches.
func (r *userRepository) UpdateProfile(ctx context.Context, userID, firstName, lastName, organization string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update("users").
		Set("first_name", firstName).
		Set("last_name", lastName).
		Set("organization", organization).
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error building update query")
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error executing update")
		return errors.Join(ErrExecutingStatement, err)
	}

	return requireOneRow(result, ErrNoUserWasFound)
}

// CompleteLogin records a successful sign-in: it stamps last_login_at and
// clears the failed-attempt counter and lockout window in one statement.
func (r *userRepository) CompleteLogin(ctx context.Context, userID string, at time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, completeLogin, userID, at)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CompleteLogin").Msg("error executing update")
		return errors.Join(ErrExecutingStatement, err)
	}

	return requireOneRow(result, ErrNoUserWasFound)
}

// RegisterFailedAttempt increments the failed-attempt counter and arms the
// lockout window when the incremented value reaches threshold. The whole
// transition happens in a single conditional UPDATE so concurrent failures
// each observe a distinct counter value.
func (r *userRepository) RegisterFailedAttempt(ctx context.Context, userID string, threshold int, lockedUntil time.Time) (int, error) {
	log := logger.FromContext(ctx)

	var attempts int
	row := r.db.QueryRowContext(ctx, registerFailedAttempt, userID, threshold, lockedUntil)
	if err := row.Scan(&attempts); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.RegisterFailedAttempt").Msg("error executing update")
		return 0, errors.Join(ErrExecutingStatement, err)
	}

	return attempts, nil
}

// ResetLockout clears the failed-attempt counter and lockout window.
func (r *userRepository) ResetLockout(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, resetLockout, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ResetLockout").Msg("error executing update")
		return errors.Join(ErrExecutingStatement, err)
	}

	return requireOneRow(result, ErrNoUserWasFound)
}

// SetPassword replaces the stored hash, stamps last_password_changed_at and
// clears the require_password_change flag in one statement.
func (r *userRepository) SetPassword(ctx context.Context, userID, passwordHash string, at time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, setPassword, userID, passwordHash, at)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetPassword").Msg("error executing update")
		return errors.Join(ErrExecutingStatement, err)
	}

	return requireOneRow(result, ErrNoUserWasFound)
}

// ConfirmEmail marks the account's address confirmed. The UPDATE is guarded
// by email_confirmed = FALSE, so a replayed confirmation affects zero rows
// and is reported as [ErrEmailAlreadyConfirmed]. An unknown user is
// reported as [ErrNoUserWasFound].
func (r *userRepository) ConfirmEmail(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, confirmEmail, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ConfirmEmail").Msg("error executing update")
		return errors.Join(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Join(ErrExecutingStatement, err)
	}
	if affected == 1 {
		return nil
	}

	// zero rows: either the user is unknown or the address was already
	// confirmed. One extra lookup disambiguates.
	if _, err := r.FindUserByID(ctx, userID); err != nil {
		return err
	}
	return ErrEmailAlreadyConfirmed
}

// SetTwoFactorEnabled toggles the second-factor requirement for the account.
func (r *userRepository) SetTwoFactorEnabled(ctx context.Context, userID string, enabled bool) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, setTwoFactorEnabled, userID, enabled)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetTwoFactorEnabled").Msg("error executing update")
		return errors.Join(ErrExecutingStatement, err)
	}

	return requireOneRow(result, ErrNoUserWasFound)
}

// requireOneRow converts a zero-rows-affected result into the given sentinel.
func requireOneRow(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Join(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
