package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-member-portal/internal/config"
	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/MKhiriev/go-member-portal/migrations"
)

// Storages aggregates every repository of the application behind one handle.
// The backend is chosen from the DSN scheme: "postgres://" (or
// "postgresql://") selects PostgreSQL, anything else is treated as a SQLite
// file path.
type Storages struct {
	DB *DB

	UserRepository           UserRepository
	TwoFactorRepository      TwoFactorRepository
	SessionRepository        SessionRepository
	InstallHistoryRepository InstallHistoryRepository
	InstallerFileStore       InstallerFileStore
}

// NewStorages connects to the configured database, applies pending
// migrations and wires up all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	if isPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := migrations.Migrate(db.DB, db.Dialect()); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		DB:                       db,
		UserRepository:           NewUserRepository(db, log),
		TwoFactorRepository:      NewTwoFactorRepository(db, log),
		SessionRepository:        NewSessionRepository(db, log),
		InstallHistoryRepository: NewInstallHistoryRepository(db, log),
		InstallerFileStore:       NewInstallerFileStore(cfg.Files, log),
	}, nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://")
}
