package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"galeri_backend/internals/constants"
	"galeri_backend/internals/features/articles/dto"
	"galeri_backend/internals/features/articles/model"
	helper "galeri_backend/internals/helpers"
)

const articleTable = "articles"

type ArticleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewArticleController(db *gorm.DB) *ArticleController {
	return &ArticleController{DB: db, Validate: validator.New()}
}

// pengunjung hanya melihat artikel yang sudah terbit
func canSeeDrafts(c *fiber.Ctx) bool {
	return helper.HasAnyRole(c, constants.EditorAndAbove)
}

// =============================
// 📄 GET /api/articles?q=&tag=&published=
// =============================
func (ctrl *ArticleController) List(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	p := helper.ResolvePaging(c, 12, 100)

	tx := ctrl.DB.WithContext(c.UserContext()).Model(&model.ArticleModel{})
	switch {
	case !canSeeDrafts(c):
		tx = tx.Where("is_published = ?", true)
	case q.Published != nil:
		tx = tx.Where("is_published = ?", *q.Published)
	}
	if s := strings.TrimSpace(q.Q); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(COALESCE(excerpt, '')) LIKE ?", like, like)
	}
	if tag := strings.ToLower(strings.TrimSpace(q.Tag)); tag != "" {
		tx = tx.Where("? = ANY(tags)", tag)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung artikel")
	}
	var rows []model.ArticleModel
	if err := tx.Order("published_at DESC NULLS LAST, created_at DESC").
		Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil artikel")
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows))
	return helper.JsonList(c, "ok", dto.FromModels(rows), &pg)
}

// =============================
// 🔍 GET /api/articles/:id
// =============================
func (ctrl *ArticleController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	return ctrl.findOne(c, "id = ?", id)
}

// GET /api/articles/slug/:slug
func (ctrl *ArticleController) GetBySlug(c *fiber.Ctx) error {
	slug := strings.ToLower(strings.TrimSpace(c.Params("slug")))
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug wajib diisi")
	}
	return ctrl.findOne(c, "LOWER(slug) = ?", slug)
}

func (ctrl *ArticleController) findOne(c *fiber.Ctx, cond string, arg any) error {
	tx := ctrl.DB.WithContext(c.UserContext()).Where(cond, arg)
	if !canSeeDrafts(c) {
		tx = tx.Where("is_published = ?", true)
	}
	var m model.ArticleModel
	if err := tx.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Artikel tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil artikel")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(m))
}

// =============================
// ➕ POST /api/articles
// =============================
func (ctrl *ArticleController) Create(c *fiber.Ctx) error {
	var req dto.CreateArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ctx := c.UserContext()
	m := req.ToModel(helper.OptionalUserID(c))
	m.ID = uuid.New()

	slug, err := helper.EnsureUniqueSlugCI(ctx, ctrl.DB, articleTable, "slug",
		helper.Slugify(m.Title, helper.DefaultSlugMaxLen), nil, helper.DefaultSlugMaxLen)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}
	m.Slug = slug

	if err := ctrl.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Artikel dibuat", dto.FromModel(m))
}

// =============================
// 🔄 PUT /api/articles/:id
// =============================
func (ctrl *ArticleController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ctx := c.UserContext()
	var m model.ArticleModel
	if err := ctrl.DB.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Artikel tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil artikel")
	}

	if req.Apply(&m) {
		slug, err := helper.EnsureUniqueSlugCI(ctx, ctrl.DB, articleTable, "slug",
			helper.Slugify(m.Title, helper.DefaultSlugMaxLen), helper.ExcludeID("id", m.ID), helper.DefaultSlugMaxLen)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
		}
		m.Slug = slug
	}

	res := ctrl.DB.WithContext(ctx).Model(&m).Select("*").Omit("id", "created_at").Updates(&m)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Artikel tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Artikel diperbarui", dto.FromModel(m))
}

// =============================
// 🗑️ DELETE /api/articles/:id
// =============================
// Baris program_articles ikut terhapus lewat FK ON DELETE CASCADE.
func (ctrl *ArticleController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctrl.DB.WithContext(c.UserContext()).Where("id = ?", id).Delete(&model.ArticleModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Artikel tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Artikel dihapus", fiber.Map{"id": id})
}
