package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/MKhiriev/go-member-portal/models"
)

func newTestInstallHistoryRepo(t *testing.T) (*installHistoryRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &installHistoryRepository{
		db:     &DB{DB: db, dialect: DialectPostgres, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestAddRecord_ReturnsAssignedID(t *testing.T) {
	repo, mock, db := newTestInstallHistoryRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	record := models.InstallHistoryRecord{
		UserID:      "user-1",
		OS:          "Windows",
		InstalledAt: now,
	}

	mock.ExpectQuery("INSERT INTO install_history").
		WithArgs(record.UserID, record.OS, record.InstalledAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	saved, err := repo.AddRecord(ctx, record)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID != 42 {
		t.Errorf("expected ID=42, got %d", saved.ID)
	}
	if saved.OS != "Windows" {
		t.Errorf("expected OS=Windows, got %s", saved.OS)
	}
}

func TestListByUser_NewestFirst(t *testing.T) {
	repo, mock, db := newTestInstallHistoryRepo(t)
	defer db.Close()

	ctx := context.Background()
	newer := time.Now()
	older := newer.Add(-24 * time.Hour)

	rows := sqlmock.NewRows([]string{"id", "user_id", "os", "installed_at"}).
		AddRow(int64(2), "user-1", "Windows", newer).
		AddRow(int64(1), "user-1", "Windows", older)

	mock.ExpectQuery("SELECT (.+) FROM install_history").
		WithArgs("user-1").
		WillReturnRows(rows)

	records, err := repo.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != 2 || records[1].ID != 1 {
		t.Errorf("expected newest first ordering, got %d then %d", records[0].ID, records[1].ID)
	}
}

func TestListByUser_Empty(t *testing.T) {
	repo, mock, db := newTestInstallHistoryRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM install_history").
		WithArgs("user-2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "os", "installed_at"}))

	records, err := repo.ListByUser(ctx, "user-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}
