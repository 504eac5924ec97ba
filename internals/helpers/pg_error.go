package helper

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// SQLState mengambil kode SQLSTATE dari error pgx maupun lib/pq; "" kalau bukan error PG.
func SQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

func IsUniqueViolation(err error) bool { return SQLState(err) == pgUniqueViolation }

// MapPGError: 23505 → 409, 23503/23502/23514 → 400, selain itu 500.
func MapPGError(err error) (int, string) {
	switch SQLState(err) {
	case pgUniqueViolation:
		return http.StatusConflict, "Data duplikat (unique violation)."
	case pgForeignKeyViolation:
		return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
	case pgNotNullViolation:
		return http.StatusBadRequest, "Kolom wajib tidak boleh kosong."
	case pgCheckViolation:
		return http.StatusBadRequest, "Data melanggar constraint."
	}
	return http.StatusInternalServerError, "Terjadi kesalahan pada database."
}

func WritePGError(c *fiber.Ctx, err error) error {
	code, msg := MapPGError(err)
	if code >= http.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
	}
	return JsonError(c, code, msg)
}
