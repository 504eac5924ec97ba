package scheduler

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestRunStatusSyncCoversAllTables(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer sqlDB.Close()
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatal(err)
	}

	now := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	id := uuid.New()
	cols := []string{"id", "status", "start_date", "end_date"}

	// programs: tidak ada yang basi
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "programs"`)).
		WillReturnRows(sqlmock.NewRows(cols))
	// party_literasi: satu ongoing yang sudah lewat
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "party_literasi"`)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(id, "ongoing", now.AddDate(0, -1, 0), now.AddDate(0, 0, -1)))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "party_literasi" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if n := RunStatusSync(db, now); n != 1 {
		t.Fatalf("updated = %d, want 1", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
