package controller

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"galeri_backend/internals/constants"
	helper "galeri_backend/internals/helpers"
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

func newApp(db *gorm.DB) *fiber.App {
	ctrl := NewBookController(db)
	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helper.LocUserRole, constants.RoleEditor)
		return c.Next()
	})
	app.Get("/books/isbn/:isbn", ctrl.GetByISBN)
	app.Post("/books", ctrl.Create)
	return app
}

func TestCreate_DuplicateISBN(t *testing.T) {
	db, mock := newMockGorm(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "books" WHERE isbn = $1`)).
		WithArgs("9780306406157").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	req := httptest.NewRequest(http.MethodPost, "/books",
		strings.NewReader(`{"title":"Bumi Manusia","author":"Pramoedya Ananta Toer","isbn":"978-0-306-40615-7"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := newApp(db).Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.StatusCode)
	}
}

func TestCreate_InvalidISBN(t *testing.T) {
	db, _ := newMockGorm(t)
	req := httptest.NewRequest(http.MethodPost, "/books",
		strings.NewReader(`{"title":"Bumi Manusia","author":"Pramoedya Ananta Toer","isbn":"12345"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := newApp(db).Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestGetByISBN_Normalized(t *testing.T) {
	db, mock := newMockGorm(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "books" WHERE isbn = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, err := newApp(db).Test(httptest.NewRequest(http.MethodGet, "/books/isbn/978-0-306-40615-7", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}
