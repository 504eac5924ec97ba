package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"galeri_backend/internals/features/events/eventbase"
	"galeri_backend/internals/features/events/lifecycle"
	"galeri_backend/internals/features/events/party_literasi/dto"
	"galeri_backend/internals/features/events/party_literasi/model"
	"galeri_backend/internals/features/events/party_literasi/repository"
	helper "galeri_backend/internals/helpers"
	"galeri_backend/internals/helpers/dbtime"
)

const notFoundMsg = "Party literasi tidak ditemukan"

type PartyLiterasiController struct {
	Repo     repository.PartyLiterasiRepository
	Validate *validator.Validate
	Now      func() time.Time
}

func NewPartyLiterasiController(db *gorm.DB) *PartyLiterasiController {
	return &PartyLiterasiController{
		Repo:     repository.NewPartyLiterasiRepository(db),
		Validate: validator.New(),
		Now:      dbtime.Now,
	}
}

// 📄 GET /api/party-literasi
func (pc *PartyLiterasiController) List(c *fiber.Ctx) error {
	f, p, err := eventbase.FilterFromRequest(c)
	if err != nil {
		return err
	}
	rows, total, err := pc.Repo.List(c.UserContext(), f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil party literasi")
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows))
	return helper.JsonList(c, "ok", dto.FromModels(rows, pc.Now()), &pg)
}

// 🔍 GET /api/party-literasi/:id
func (pc *PartyLiterasiController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	m, err := pc.Repo.GetByID(c.UserContext(), id, !eventbase.CanManage(c))
	if err != nil {
		return eventbase.WriteError(c, err, notFoundMsg)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(*m, pc.Now()))
}

func (pc *PartyLiterasiController) GetBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug wajib diisi")
	}
	m, err := pc.Repo.GetBySlug(c.UserContext(), slug, !eventbase.CanManage(c))
	if err != nil {
		return eventbase.WriteError(c, err, notFoundMsg)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(*m, pc.Now()))
}

// ➕ POST /api/party-literasi
func (pc *PartyLiterasiController) Create(c *fiber.Ctx) error {
	var req dto.CreatePartyLiterasiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := pc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	base, err := req.Build(helper.OptionalUserID(c))
	if err != nil {
		return eventbase.WriteError(c, err, notFoundMsg)
	}
	m := model.PartyLiterasiModel{EventBase: base}

	ctx := lifecycle.WithClock(c.UserContext(), pc.Now)
	if m.Slug, err = pc.Repo.UniqueSlug(ctx, m.Title, uuid.Nil); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}
	if err := pc.Repo.Create(ctx, &m, req.MediaIDs); err != nil {
		return eventbase.WriteError(c, err, notFoundMsg)
	}

	saved, err := pc.Repo.GetByID(ctx, m.ID, false)
	if err != nil {
		saved = &m
	}
	return helper.JsonCreated(c, "Party literasi dibuat", dto.FromModel(*saved, pc.Now()))
}

// 🔄 PUT /api/party-literasi/:id
func (pc *PartyLiterasiController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdatePartyLiterasiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := pc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ctx := lifecycle.WithClock(c.UserContext(), pc.Now)
	m, err := pc.Repo.GetByID(ctx, id, false)
	if err != nil {
		return eventbase.WriteError(c, err, notFoundMsg)
	}
	titleChanged, err := req.Apply(&m.EventBase)
	if err != nil {
		return eventbase.WriteError(c, err, notFoundMsg)
	}
	if titleChanged {
		if m.Slug, err = pc.Repo.UniqueSlug(ctx, m.Title, m.ID); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
		}
	}
	if err := pc.Repo.Update(ctx, m, req.MediaIDs); err != nil {
		return eventbase.WriteError(c, err, notFoundMsg)
	}

	saved, err := pc.Repo.GetByID(ctx, id, false)
	if err != nil {
		saved = m
	}
	return helper.JsonUpdated(c, "Party literasi diperbarui", dto.FromModel(*saved, pc.Now()))
}

// 🗑️ DELETE /api/party-literasi/:id
func (pc *PartyLiterasiController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := pc.Repo.Delete(c.UserContext(), id); err != nil {
		return eventbase.WriteError(c, err, notFoundMsg)
	}
	return helper.JsonDeleted(c, "Party literasi dihapus", fiber.Map{"id": id})
}
