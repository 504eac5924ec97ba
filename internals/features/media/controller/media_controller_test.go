package controller

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
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

	helper "galeri_backend/internals/helpers"
	helperOSS "galeri_backend/internals/helpers/oss"
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

func newApp(ctrl *MediaController) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	app.Post("/media", ctrl.Upload)
	app.Delete("/media/:id", ctrl.Delete)
	return app
}

func multipartBody(t *testing.T, field, filename string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = w.WriteField(k, v)
	}
	if field != "" {
		fw, err := w.CreateFormFile(field, filename)
		if err != nil {
			t.Fatal(err)
		}
		_, _ = fw.Write(content)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, w.FormDataContentType()
}

func TestUpload_NoStorage(t *testing.T) {
	db, _ := newMockGorm(t)
	app := newApp(NewMediaController(db, nil))

	body, ct := multipartBody(t, "file", "a.png", []byte("x"), nil)
	req := httptest.NewRequest(http.MethodPost, "/media", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", resp.StatusCode)
	}
}

func TestUpload_RequiresMultipart(t *testing.T) {
	db, _ := newMockGorm(t)
	app := newApp(NewMediaController(db, &helperOSS.MockBlobService{}))

	req := httptest.NewRequest(http.MethodPost, "/media", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnsupportedMediaType {
		t.Fatalf("status = %d, want 415", resp.StatusCode)
	}
}

func TestUpload_MissingFile(t *testing.T) {
	db, _ := newMockGorm(t)
	app := newApp(NewMediaController(db, &helperOSS.MockBlobService{}))

	body, ct := multipartBody(t, "", "", nil, map[string]string{"title": "Poster"})
	req := httptest.NewRequest(http.MethodPost, "/media", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestUpload_ImageGoesThroughWebPAndRollsBackOnDBError(t *testing.T) {
	db, mock := newMockGorm(t)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "media"`)).WillReturnError(errors.New("db down"))
	mock.ExpectRollback()

	var imageCalls, rawCalls int
	blob := &helperOSS.MockBlobService{
		UploadImageFn: func(_ context.Context, fh *multipart.FileHeader, dir string) (*helperOSS.UploadResult, error) {
			imageCalls++
			return &helperOSS.UploadResult{Key: dir + "/poster.webp", URL: "https://cdn.test/media/poster.webp", ThumbnailURL: "https://cdn.test/media/thumbs/poster.webp", ContentType: "image/webp", Size: 10}, nil
		},
		UploadRawFn: func(_ context.Context, fh *multipart.FileHeader, dir string) (*helperOSS.UploadResult, error) {
			rawCalls++
			return nil, errors.New("unexpected")
		},
	}
	app := newApp(NewMediaController(db, blob))

	body, ct := multipartBody(t, "file", "poster.png", []byte("png-bytes"), map[string]string{"title": "Poster"})
	req := httptest.NewRequest(http.MethodPost, "/media", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
	if imageCalls != 1 || rawCalls != 0 {
		t.Fatalf("image=%d raw=%d, want image upload only", imageCalls, rawCalls)
	}
	// thumbnail ikut dipindah oleh MoveToTrash, cukup sekali per objek utama
	if len(blob.Trashed) != 1 || blob.Trashed[0] != "https://cdn.test/media/poster.webp" {
		t.Fatalf("trashed = %v, want only the uploaded url", blob.Trashed)
	}
}

func TestDelete_NotFound(t *testing.T) {
	db, mock := newMockGorm(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "media" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	blob := &helperOSS.MockBlobService{}
	app := newApp(NewMediaController(db, blob))
	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/media/7d3c9a0e-2f4b-4d1e-8c55-3b1f0f2a9e10", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if len(blob.Trashed) != 0 {
		t.Fatal("nothing should be trashed")
	}
}
