package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/MKhiriev/go-member-portal/models"
)

func newTestTwoFactorRepo(t *testing.T) (*twoFactorRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &twoFactorRepository{
		db:     &DB{DB: db, dialect: DialectPostgres, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSaveCode_Success(t *testing.T) {
	repo, mock, db := newTestTwoFactorRepo(t)
	defer db.Close()

	ctx := context.Background()
	code := models.TwoFactorCode{
		UserID:    "user-1",
		Code:      "482910",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}

	mock.ExpectExec("INSERT INTO two_factor_codes").
		WithArgs(code.UserID, code.Code, code.ExpiresAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.SaveCode(ctx, code); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConsumeCode_Success(t *testing.T) {
	repo, mock, db := newTestTwoFactorRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectExec("UPDATE two_factor_codes").
		WithArgs("user-1", "482910", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ConsumeCode(ctx, "user-1", "482910", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConsumeCode_NoValidCode(t *testing.T) {
	repo, mock, db := newTestTwoFactorRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	// wrong, expired and already consumed codes all touch zero rows
	mock.ExpectExec("UPDATE two_factor_codes").
		WithArgs("user-1", "000000", now).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ConsumeCode(ctx, "user-1", "000000", now)
	if !errors.Is(err, ErrNoValidCode) {
		t.Fatalf("expected ErrNoValidCode, got %v", err)
	}
}

func TestConsumeCode_SecondRedemptionFails(t *testing.T) {
	repo, mock, db := newTestTwoFactorRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectExec("UPDATE two_factor_codes").
		WithArgs("user-1", "482910", now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE two_factor_codes").
		WithArgs("user-1", "482910", now).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.ConsumeCode(ctx, "user-1", "482910", now); err != nil {
		t.Fatalf("unexpected error on first redemption: %v", err)
	}
	if err := repo.ConsumeCode(ctx, "user-1", "482910", now); !errors.Is(err, ErrNoValidCode) {
		t.Fatalf("expected ErrNoValidCode on second redemption, got %v", err)
	}
}

func TestMarkCodeUsed_AbsentCodeIsNoop(t *testing.T) {
	repo, mock, db := newTestTwoFactorRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE two_factor_codes").
		WithArgs("user-1", "482910").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.MarkCodeUsed(ctx, "user-1", "482910"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteExpiredCodes_ReportsCount(t *testing.T) {
	repo, mock, db := newTestTwoFactorRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectExec("DELETE FROM two_factor_codes").
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := repo.DeleteExpiredCodes(ctx, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 3 {
		t.Errorf("expected 3 deleted rows, got %d", deleted)
	}
}
