package controller

import (
	"io"
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

const articleID = "7d3c9a0e-2f4b-4d1e-8c55-3b1f0f2a9e10"

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

func newApp(ctrl *ArticleController, role string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals(helper.LocUserID, "0f6a8a4e-5b7c-4a3e-9a57-0a6c1c4f4b21")
			c.Locals(helper.LocUserRole, role)
		}
		return c.Next()
	})
	app.Get("/articles/:id", ctrl.GetByID)
	app.Delete("/articles/:id", ctrl.Delete)
	app.Post("/articles", ctrl.Create)
	return app
}

func TestGetByID_AnonymousOnlySeesPublished(t *testing.T) {
	db, mock := newMockGorm(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "articles" WHERE id = $1 AND is_published = $2`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	app := newApp(NewArticleController(db), "")
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/articles/"+articleID, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestGetByID_InvalidUUID(t *testing.T) {
	db, _ := newMockGorm(t)
	app := newApp(NewArticleController(db), constants.RoleEditor)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/articles/bukan-uuid", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestDelete_NotFound(t *testing.T) {
	db, mock := newMockGorm(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "articles" WHERE id = $1`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	app := newApp(NewArticleController(db), constants.RoleAdmin)
	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/articles/"+articleID, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestCreate_ValidationError(t *testing.T) {
	db, _ := newMockGorm(t)
	app := newApp(NewArticleController(db), constants.RoleEditor)

	req := httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader(`{"title":"ab"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (%s)", resp.StatusCode, body)
	}
	if !strings.Contains(string(body), "Title") || !strings.Contains(string(body), "Content") {
		t.Fatalf("expected field errors for Title and Content, got %s", body)
	}
}
