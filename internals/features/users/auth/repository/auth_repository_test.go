package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
		sqlDB.Close()
	})
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return db, mock
}

func TestCleanupExpiredBlacklist(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "token_blacklist" WHERE expired_at <= \$1`).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	n, err := CleanupExpiredBlacklist(context.Background(), db, now)
	if err != nil {
		t.Fatalf("CleanupExpiredBlacklist() error = %v", err)
	}
	if n != 3 {
		t.Errorf("rows = %d, want 3", n)
	}
}

func TestIsTokenBlacklisted(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT "id" FROM "token_blacklist" WHERE token = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		got, err := IsTokenBlacklisted(context.Background(), db, "tok")
		if err != nil || !got {
			t.Errorf("IsTokenBlacklisted() = (%v, %v), want (true, nil)", got, err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT "id" FROM "token_blacklist" WHERE token = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		got, err := IsTokenBlacklisted(context.Background(), db, "tok")
		if err != nil || got {
			t.Errorf("IsTokenBlacklisted() = (%v, %v), want (false, nil)", got, err)
		}
	})
}
