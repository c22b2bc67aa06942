package store

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/MKhiriev/go-member-portal/models"
)

// installHistoryRepository is the SQL-backed implementation of
// [InstallHistoryRepository] over the append-only "install_history" table.
type installHistoryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewInstallHistoryRepository constructs an [InstallHistoryRepository]
// backed by the provided database connection and logger.
func NewInstallHistoryRepository(db *DB, logger *logger.Logger) InstallHistoryRepository {
	logger.Debug().Msg("creating install history repository")
	return &installHistoryRepository{
		db:     db,
		logger: logger,
	}
}

// AddRecord appends one record and returns it with the server-assigned ID.
func (r *installHistoryRepository) AddRecord(ctx context.Context, record models.InstallHistoryRecord) (models.InstallHistoryRecord, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, addInstallHistoryRecord, record.UserID, record.OS, record.InstalledAt)
	if err := row.Scan(&record.ID); err != nil {
		log.Err(err).Str("func", "*installHistoryRepository.AddRecord").Msg("error adding record")
		return models.InstallHistoryRecord{}, errors.Join(ErrExecutingStatement, err)
	}

	return record, nil
}

// ListByUser returns the user's records, newest first. The SELECT is built
// with squirrel so the statement stays valid on both dialects.
func (r *installHistoryRepository) ListByUser(ctx context.Context, userID string) ([]models.InstallHistoryRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("id", "user_id", "os", "installed_at").
		From("install_history").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("installed_at DESC", "id DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*installHistoryRepository.ListByUser").Msg("error building select query")
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*installHistoryRepository.ListByUser").Msg("error executing select")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.InstallHistoryRecord, 0)
	for rows.Next() {
		var record models.InstallHistoryRecord
		if err := rows.Scan(&record.ID, &record.UserID, &record.OS, &record.InstalledAt); err != nil {
			log.Err(err).Str("func", "*installHistoryRepository.ListByUser").Msg("error scanning record")
			return nil, errors.Join(ErrScanningRows, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrExecutingQuery, err)
	}

	return records, nil
}
