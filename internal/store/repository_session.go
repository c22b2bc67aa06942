// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/MKhiriev/go-member-portal/models"
)

// sessionRepository is the SQL-backed implementation of [SessionRepository]
// over the "sessions" table.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession persists a new session row.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, createSession,
		session.SessionID, session.UserID, session.CreatedAt, session.ExpiresAt)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error creating session")
		return errors.Join(ErrExecutingStatement, err)
	}

	return nil
}

// GetSession fetches a live session. The expires_at > now predicate lives in
// the query, so expired sessions are indistinguishable from unknown ones and
// both map to [ErrNoSessionWasFound].
func (r *sessionRepository) GetSession(ctx context.Context, sessionID string, now time.Time) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	row := r.db.QueryRowContext(ctx, getSession, sessionID, now)
	err := row.Scan(&session.SessionID, &session.UserID, &session.CreatedAt, &session.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrNoSessionWasFound
		}
		log.Err(err).Str("func", "*sessionRepository.GetSession").Msg("error scanning session")
		return models.Session{}, errors.Join(ErrScanningRow, err)
	}

	return session, nil
}

// ExtendSession pushes the session expiration forward (sliding lifetime).
func (r *sessionRepository) ExtendSession(ctx context.Context, sessionID string, expiresAt time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, extendSession, sessionID, expiresAt)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.ExtendSession").Msg("error extending session")
		return errors.Join(ErrExecutingStatement, err)
	}

	return requireOneRow(result, ErrNoSessionWasFound)
}

// DeleteSession removes a session. Deleting an absent session is a no-op so
// logout stays idempotent.
func (r *sessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, deleteSession, sessionID)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error deleting session")
		return errors.Join(ErrExecutingStatement, err)
	}

	return nil
}

// DeleteExpiredSessions removes every session dead at now and reports how
// many rows were removed.
func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteExpiredSessions, now)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error deleting sessions")
		return 0, errors.Join(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Join(ErrExecutingStatement, err)
	}

	return affected, nil
}
