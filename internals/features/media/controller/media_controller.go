package controller

import (
	"errors"
	"log"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"galeri_backend/internals/constants"
	"galeri_backend/internals/features/media/dto"
	"galeri_backend/internals/features/media/model"
	helper "galeri_backend/internals/helpers"
	helperOSS "galeri_backend/internals/helpers/oss"
)

const uploadDir = "media"

type MediaController struct {
	DB       *gorm.DB
	Blob     helperOSS.BlobService
	Validate *validator.Validate
}

func NewMediaController(db *gorm.DB, blob helperOSS.BlobService) *MediaController {
	return &MediaController{DB: db, Blob: blob, Validate: validator.New()}
}

// =============================
// ⬆️ POST /api/media (multipart)
// =============================
func (mc *MediaController) Upload(c *fiber.Ctx) error {
	if mc.Blob == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Object storage belum dikonfigurasi")
	}
	if !helperOSS.IsMultipart(c) {
		return helper.JsonError(c, fiber.StatusUnsupportedMediaType, "Gunakan multipart/form-data")
	}

	var req dto.UploadMediaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Form tidak valid")
	}
	if err := mc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	fh, err := helperOSS.GetFormFile(c, "file")
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	kind := constants.DetectFileTypeFromExt(fh.Filename)

	var up *helperOSS.UploadResult
	if helperOSS.IsImageFilename(fh.Filename) {
		up, err = mc.Blob.UploadImage(ctx, fh, uploadDir)
	} else {
		up, err = mc.Blob.UploadRaw(ctx, fh, uploadDir)
	}
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] upload media %q: %v", fh.Filename, err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal mengunggah file")
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = strings.TrimSuffix(fh.Filename, filepath.Ext(fh.Filename))
	}
	meta, _ := sonic.Marshal(fiber.Map{
		"original_name": fh.Filename,
		"original_size": fh.Size,
		"original_type": fh.Header.Get(fiber.HeaderContentType),
	})

	m := model.MediaModel{
		ID:         uuid.New(),
		Title:      title,
		AltText:    req.AltText,
		FileName:   fh.Filename,
		URL:        up.URL,
		ObjectKey:  up.Key,
		MimeType:   up.ContentType,
		Kind:       string(kind),
		SizeBytes:  up.Size,
		Metadata:   datatypes.JSON(meta),
		UploadedBy: helper.OptionalUserID(c),
	}
	if up.ThumbnailURL != "" {
		m.ThumbnailURL = &up.ThumbnailURL
	}
	if up.Width > 0 && up.Height > 0 {
		m.Width, m.Height = &up.Width, &up.Height
	}

	if err := mc.DB.WithContext(ctx).Create(&m).Error; err != nil {
		// objek sudah terlanjur naik → buang ke trash
		if _, terr := mc.Blob.MoveToTrash(ctx, up.URL); terr != nil {
			log.Printf("[WARN] rollback upload %s gagal: %v", up.URL, terr)
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Media diunggah", dto.FromModel(m))
}

// =============================
// 📄 GET /api/media?q=&kind=
// =============================
func (mc *MediaController) List(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	p := helper.ResolvePaging(c, 24, 100)

	tx := mc.DB.WithContext(c.UserContext()).Model(&model.MediaModel{})
	if s := strings.TrimSpace(q.Q); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(file_name) LIKE ?", like, like)
	}
	if k := strings.ToLower(strings.TrimSpace(q.Kind)); k != "" {
		tx = tx.Where("kind = ?", k)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung media")
	}
	var rows []model.MediaModel
	if err := tx.Order("created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil media")
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows))
	return helper.JsonList(c, "ok", dto.FromModels(rows), &pg)
}

func (mc *MediaController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	m, err := mc.find(c, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.FromModel(*m))
}

func (mc *MediaController) find(c *fiber.Ctx, id uuid.UUID) (*model.MediaModel, error) {
	var m model.MediaModel
	if err := mc.DB.WithContext(c.UserContext()).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Media tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil media")
	}
	return &m, nil
}

// =============================
// 🔄 PUT /api/media/:id (title / alt_text)
// =============================
func (mc *MediaController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateMediaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := mc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	updates := req.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := mc.DB.WithContext(c.UserContext()).Model(&model.MediaModel{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Media tidak ditemukan")
	}
	m, err := mc.find(c, id)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Media diperbarui", dto.FromModel(*m))
}

// =============================
// 🗑️ DELETE /api/media/:id
// =============================
// Row dihapus (relasi program/party literasi ikut via FK cascade),
// file dipindah ke spam/ dan dibersihkan reaper.
func (mc *MediaController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	m, err := mc.find(c, id)
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	res := mc.DB.WithContext(ctx).Where("id = ?", id).Delete(&model.MediaModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Media tidak ditemukan")
	}

	var trashURL string
	if mc.Blob != nil {
		if trashURL, err = mc.Blob.MoveToTrash(ctx, m.URL); err != nil {
			log.Printf("[WARN] move-to-trash %s gagal: %v", m.URL, err)
		}
	}
	return helper.JsonDeleted(c, "Media dihapus", fiber.Map{"id": id, "trash_url": trashURL})
}
