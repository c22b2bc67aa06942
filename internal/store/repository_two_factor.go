// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/MKhiriev/go-member-portal/models"
)

// twoFactorRepository is the SQL-backed implementation of
// [TwoFactorRepository] over the "two_factor_codes" table.
type twoFactorRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTwoFactorRepository constructs a [TwoFactorRepository] backed by the
// provided database connection and logger.
func NewTwoFactorRepository(db *DB, logger *logger.Logger) TwoFactorRepository {
	logger.Debug().Msg("creating two-factor repository")
	return &twoFactorRepository{
		db:     db,
		logger: logger,
	}
}

// SaveCode persists a freshly minted, unused code.
func (r *twoFactorRepository) SaveCode(ctx context.Context, code models.TwoFactorCode) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, saveTwoFactorCode, code.UserID, code.Code, code.ExpiresAt)
	if err != nil {
		log.Err(err).Str("func", "*twoFactorRepository.SaveCode").Msg("error saving code")
		return errors.Join(ErrExecutingStatement, err)
	}

	return nil
}

// ConsumeCode atomically redeems the matching code. The conditional UPDATE
// flips used to TRUE only while the record is still unused and unexpired, so
// of any number of concurrent redemptions exactly one sees a row affected.
// Every miss (wrong code, expired, already used, unknown user) collapses
// into [ErrNoValidCode].
func (r *twoFactorRepository) ConsumeCode(ctx context.Context, userID, code string, now time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, consumeTwoFactorCode, userID, code, now)
	if err != nil {
		log.Err(err).Str("func", "*twoFactorRepository.ConsumeCode").Msg("error consuming code")
		return errors.Join(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Join(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoValidCode
	}

	return nil
}

// MarkCodeUsed idempotently flips the used flag on the matching record.
// Absent records are a no-op.
func (r *twoFactorRepository) MarkCodeUsed(ctx context.Context, userID, code string) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, markTwoFactorCodeUsed, userID, code)
	if err != nil {
		log.Err(err).Str("func", "*twoFactorRepository.MarkCodeUsed").Msg("error marking code used")
		return errors.Join(ErrExecutingStatement, err)
	}

	return nil
}

// DeleteExpiredCodes removes every record expired at now or already used and
// reports how many rows were removed.
func (r *twoFactorRepository) DeleteExpiredCodes(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteExpiredTwoFactorCodes, now)
	if err != nil {
		log.Err(err).Str("func", "*twoFactorRepository.DeleteExpiredCodes").Msg("error deleting codes")
		return 0, errors.Join(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Join(ErrExecutingStatement, err)
	}

	return affected, nil
}
