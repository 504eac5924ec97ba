package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"galeri_backend/internals/features/events/eventbase"
	"galeri_backend/internals/features/events/lifecycle"
	"galeri_backend/internals/features/events/programs/model"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
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

func expectDelete(mock sqlmock.Sqlmock, id uuid.UUID, affected int64) {
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM program_media WHERE program_id = $1`)).
		WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM program_articles WHERE program_id = $1`)).
		WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "programs" WHERE id = $1`)).
		WithArgs(id).WillReturnResult(sqlmock.NewResult(0, affected))
}

func TestDelete_RemovesLinksThenProgram(t *testing.T) {
	db, mock := newMockGorm(t)
	id := uuid.New()
	expectDelete(mock, id, 1)
	mock.ExpectCommit()

	if err := NewProgramRepository(db).Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestDelete_MissingRollsBack(t *testing.T) {
	db, mock := newMockGorm(t)
	id := uuid.New()
	expectDelete(mock, id, 0)
	mock.ExpectRollback()

	err := NewProgramRepository(db).Delete(context.Background(), id)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGetByID_PublicScope(t *testing.T) {
	db, mock := newMockGorm(t)
	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "programs" WHERE id = $1 AND (is_public = $2 AND status <> $3)`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := NewProgramRepository(db).GetByID(context.Background(), id, true)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdate_ResolvesStatusWithWriteClock(t *testing.T) {
	db, mock := newMockGorm(t)
	id := uuid.New()
	now := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)

	// kolom SET urut field: title..end_date, status ($8), is_public, updated_at; id di WHERE ($11)
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "programs" SET .*"status"=\$8.*WHERE "id" = \$11`).
		WithArgs(
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), "ongoing", sqlmock.AnyArg(), sqlmock.AnyArg(), id,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	m := &model.ProgramModel{EventBase: eventbase.EventBase{
		ID:          id,
		Title:       "Kelas Menulis",
		Slug:        "kelas-menulis",
		Description: "d",
		StartDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		Status:      lifecycle.StatusDraft,
	}}
	ctx := lifecycle.WithClock(context.Background(), func() time.Time { return now })
	if err := NewProgramRepository(db).Update(ctx, m, nil, nil); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if m.Status != lifecycle.StatusOngoing {
		t.Fatalf("status = %s, want ongoing", m.Status)
	}
}

func TestUpdate_MissingRowRollsBack(t *testing.T) {
	db, mock := newMockGorm(t)
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "programs" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	m := &model.ProgramModel{EventBase: eventbase.EventBase{
		ID:        uuid.New(),
		Title:     "x",
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
	}}
	err := NewProgramRepository(db).Update(context.Background(), m, nil, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
