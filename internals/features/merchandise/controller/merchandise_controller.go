package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"galeri_backend/internals/features/merchandise/dto"
	"galeri_backend/internals/features/merchandise/model"
	helper "galeri_backend/internals/helpers"
)

const (
	merchTable  = "merchandise"
	notFoundMsg = "Merchandise tidak ditemukan"
)

type MerchandiseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMerchandiseController(db *gorm.DB) *MerchandiseController {
	return &MerchandiseController{DB: db, Validate: validator.New()}
}

// =============================
// 📄 GET /api/merchandise?q=&available=
// =============================
func (ctrl *MerchandiseController) List(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.UserContext()).Model(&model.MerchandiseModel{})
	if q.Available != nil {
		tx = tx.Where("is_available = ?", *q.Available)
	}
	if s := strings.TrimSpace(q.Q); s != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung merchandise")
	}
	var rows []model.MerchandiseModel
	if err := tx.Order("created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil merchandise")
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows))
	return helper.JsonList(c, "ok", dto.FromModels(rows), &pg)
}

// 🔍 GET /api/merchandise/:id
func (ctrl *MerchandiseController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	m, err := ctrl.find(c, "id = ?", id)
	if err != nil {
		return ctrl.findError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(*m))
}

// GET /api/merchandise/slug/:slug
func (ctrl *MerchandiseController) GetBySlug(c *fiber.Ctx) error {
	slug := strings.ToLower(strings.TrimSpace(c.Params("slug")))
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug wajib diisi")
	}
	m, err := ctrl.find(c, "LOWER(slug) = ?", slug)
	if err != nil {
		return ctrl.findError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(*m))
}

func (ctrl *MerchandiseController) find(c *fiber.Ctx, cond string, arg any) (*model.MerchandiseModel, error) {
	var m model.MerchandiseModel
	if err := ctrl.DB.WithContext(c.UserContext()).Where(cond, arg).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (ctrl *MerchandiseController) findError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, notFoundMsg)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil merchandise")
}

// =============================
// ➕ POST /api/merchandise
// =============================
func (ctrl *MerchandiseController) Create(c *fiber.Ctx) error {
	var req dto.CreateMerchandiseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel(helper.OptionalUserID(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Varian tidak valid")
	}
	m.ID = uuid.New()

	ctx := c.UserContext()
	if m.Slug, err = helper.EnsureUniqueSlugCI(ctx, ctrl.DB, merchTable, "slug",
		helper.Slugify(m.Name, helper.DefaultSlugMaxLen), nil, helper.DefaultSlugMaxLen); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}
	if err := ctrl.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Merchandise dibuat", dto.FromModel(m))
}

// =============================
// 🔄 PUT /api/merchandise/:id
// =============================
func (ctrl *MerchandiseController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateMerchandiseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ctx := c.UserContext()
	m, err := ctrl.find(c, "id = ?", id)
	if err != nil {
		return ctrl.findError(c, err)
	}
	nameChanged, err := req.Apply(m)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Varian tidak valid")
	}
	if nameChanged {
		if m.Slug, err = helper.EnsureUniqueSlugCI(ctx, ctrl.DB, merchTable, "slug",
			helper.Slugify(m.Name, helper.DefaultSlugMaxLen), helper.ExcludeID("id", m.ID), helper.DefaultSlugMaxLen); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
		}
	}

	res := ctrl.DB.WithContext(ctx).Model(m).Select("*").Omit("id", "created_at", "created_by").Updates(m)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, notFoundMsg)
	}
	return helper.JsonUpdated(c, "Merchandise diperbarui", dto.FromModel(*m))
}

// 🗑️ DELETE /api/merchandise/:id
func (ctrl *MerchandiseController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctrl.DB.WithContext(c.UserContext()).Where("id = ?", id).Delete(&model.MerchandiseModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, notFoundMsg)
	}
	return helper.JsonDeleted(c, "Merchandise dihapus", fiber.Map{"id": id})
}
