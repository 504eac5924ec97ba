package controller

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"galeri_backend/internals/features/books/dto"
	"galeri_backend/internals/features/books/model"
	helper "galeri_backend/internals/helpers"
)

const (
	bookTable   = "books"
	notFoundMsg = "Buku tidak ditemukan"
	isbnTaken   = "ISBN sudah terdaftar"
)

type BookController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBookController(db *gorm.DB) *BookController {
	return &BookController{DB: db, Validate: validator.New()}
}

// =============================
// 📄 GET /api/books?q=&genre=&author=
// =============================
func (ctrl *BookController) List(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.UserContext()).Model(&model.BookModel{})
	if s := strings.TrimSpace(q.Q); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(author) LIKE ?", like, like)
	}
	if a := strings.TrimSpace(q.Author); a != "" {
		tx = tx.Where("LOWER(author) LIKE ?", "%"+strings.ToLower(a)+"%")
	}
	if g := strings.ToLower(strings.TrimSpace(q.Genre)); g != "" {
		tx = tx.Where("? = ANY(genres)", g)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung buku")
	}
	var rows []model.BookModel
	if err := tx.Order("title ASC, id").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil buku")
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows))
	return helper.JsonList(c, "ok", dto.FromModels(rows), &pg)
}

// 🔍 GET /api/books/:id
func (ctrl *BookController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	return ctrl.respondOne(c, "id = ?", id)
}

// GET /api/books/slug/:slug
func (ctrl *BookController) GetBySlug(c *fiber.Ctx) error {
	slug := strings.ToLower(strings.TrimSpace(c.Params("slug")))
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug wajib diisi")
	}
	return ctrl.respondOne(c, "LOWER(slug) = ?", slug)
}

// GET /api/books/isbn/:isbn
func (ctrl *BookController) GetByISBN(c *fiber.Ctx) error {
	raw := c.Params("isbn")
	isbn := dto.NormalizeISBN(&raw)
	if isbn == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ISBN wajib diisi")
	}
	return ctrl.respondOne(c, "isbn = ?", *isbn)
}

func (ctrl *BookController) respondOne(c *fiber.Ctx, cond string, arg any) error {
	var m model.BookModel
	if err := ctrl.DB.WithContext(c.UserContext()).Where(cond, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, notFoundMsg)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil buku")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(m))
}

// isbnExists: cek duplikat sebelum insert supaya pesan 409 jelas.
func (ctrl *BookController) isbnExists(ctx context.Context, isbn *string, exclude uuid.UUID) (bool, error) {
	if isbn == nil {
		return false, nil
	}
	var n int64
	q := ctrl.DB.WithContext(ctx).Model(&model.BookModel{}).Where("isbn = ?", *isbn)
	if exclude != uuid.Nil {
		q = q.Where("id <> ?", exclude)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// =============================
// ➕ POST /api/books
// =============================
func (ctrl *BookController) Create(c *fiber.Ctx) error {
	var req dto.CreateBookRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ctx := c.UserContext()
	m := req.ToModel(helper.OptionalUserID(c))
	m.ID = uuid.New()

	taken, err := ctrl.isbnExists(ctx, m.ISBN, uuid.Nil)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if taken {
		return helper.JsonError(c, fiber.StatusConflict, isbnTaken)
	}

	if m.Slug, err = helper.EnsureUniqueSlugCI(ctx, ctrl.DB, bookTable, "slug",
		helper.Slugify(m.Title, helper.DefaultSlugMaxLen), nil, helper.DefaultSlugMaxLen); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}
	if err := ctrl.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return writeBookError(c, err)
	}
	return helper.JsonCreated(c, "Buku dibuat", dto.FromModel(m))
}

// =============================
// 🔄 PUT /api/books/:id
// =============================
func (ctrl *BookController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateBookRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ctx := c.UserContext()
	var m model.BookModel
	if err := ctrl.DB.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, notFoundMsg)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil buku")
	}

	titleChanged := req.Apply(&m)
	if req.ISBN != nil {
		taken, err := ctrl.isbnExists(ctx, m.ISBN, m.ID)
		if err != nil {
			return helper.WritePGError(c, err)
		}
		if taken {
			return helper.JsonError(c, fiber.StatusConflict, isbnTaken)
		}
	}
	if titleChanged {
		if m.Slug, err = helper.EnsureUniqueSlugCI(ctx, ctrl.DB, bookTable, "slug",
			helper.Slugify(m.Title, helper.DefaultSlugMaxLen), helper.ExcludeID("id", m.ID), helper.DefaultSlugMaxLen); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
		}
	}

	res := ctrl.DB.WithContext(ctx).Model(&m).Select("*").Omit("id", "created_at", "created_by").Updates(&m)
	if res.Error != nil {
		return writeBookError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, notFoundMsg)
	}
	return helper.JsonUpdated(c, "Buku diperbarui", dto.FromModel(m))
}

// 🗑️ DELETE /api/books/:id
func (ctrl *BookController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctrl.DB.WithContext(c.UserContext()).Where("id = ?", id).Delete(&model.BookModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, notFoundMsg)
	}
	return helper.JsonDeleted(c, "Buku dihapus", fiber.Map{"id": id})
}

// race antar request: unique index tetap jadi penjaga terakhir
func writeBookError(c *fiber.Ctx, err error) error {
	if helper.IsUniqueViolation(err) {
		return helper.JsonError(c, fiber.StatusConflict, isbnTaken)
	}
	return helper.WritePGError(c, err)
}
