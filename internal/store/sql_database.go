// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"database/sql"

	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// Supported database dialects. The dialect is derived from the DSN scheme at
// connection time and later fed to goose when migrations run.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// DB wraps *sql.DB with the resolved dialect, an error classificator and a
// logger. All repositories in this package operate on top of it.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Dialect reports which SQL dialect the connection speaks
// ([DialectPostgres] or [DialectSQLite]).
func (db *DB) Dialect() string {
	return db.dialect
}

// Classify delegates to the connection's error classificator, defaulting to
// [NonRetryable] when no classificator is configured (SQLite connections).
func (db *DB) Classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

// IsUniqueViolation reports whether err was caused by a unique or primary key
// constraint violation, on either backend.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
