package helper

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type UploadResult struct {
	Key          string
	URL          string
	ThumbnailURL string
	ContentType  string
	Size         int64
	Width        int
	Height       int
}

// BlobService dipakai controller media; OSSService untuk produksi, MockBlobService untuk test.
type BlobService interface {
	UploadImage(ctx context.Context, fh *multipart.FileHeader, dir string) (*UploadResult, error)
	UploadRaw(ctx context.Context, fh *multipart.FileHeader, dir string) (*UploadResult, error)
	MoveToTrash(ctx context.Context, publicURL string) (string, error)
}

type MockBlobService struct {
	UploadImageFn func(ctx context.Context, fh *multipart.FileHeader, dir string) (*UploadResult, error)
	UploadRawFn   func(ctx context.Context, fh *multipart.FileHeader, dir string) (*UploadResult, error)
	MoveToTrashFn func(ctx context.Context, publicURL string) (string, error)

	Trashed []string
}

func (m *MockBlobService) UploadImage(ctx context.Context, fh *multipart.FileHeader, dir string) (*UploadResult, error) {
	if m.UploadImageFn != nil {
		return m.UploadImageFn(ctx, fh, dir)
	}
	return &UploadResult{
		Key:          dir + "/" + webpName(fh.Filename),
		URL:          "https://cdn.test/" + dir + "/" + webpName(fh.Filename),
		ThumbnailURL: "https://cdn.test/" + dir + "/thumbs/" + webpName(fh.Filename),
		ContentType:  "image/webp",
		Size:         fh.Size,
	}, nil
}

func (m *MockBlobService) UploadRaw(ctx context.Context, fh *multipart.FileHeader, dir string) (*UploadResult, error) {
	if m.UploadRawFn != nil {
		return m.UploadRawFn(ctx, fh, dir)
	}
	return &UploadResult{
		Key:         dir + "/" + fh.Filename,
		URL:         "https://cdn.test/" + dir + "/" + fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	}, nil
}

func (m *MockBlobService) MoveToTrash(ctx context.Context, publicURL string) (string, error) {
	m.Trashed = append(m.Trashed, publicURL)
	if m.MoveToTrashFn != nil {
		return m.MoveToTrashFn(ctx, publicURL)
	}
	return "", nil
}

func isUnsupported(err error) bool { return errors.Is(err, ErrUnsupportedImage) }

/* =======================================================================
   Multipart helpers
======================================================================= */

func IsMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEMultipartForm)
}

var defaultFileFields = []string{"file", "files", "files[]", "upload", "image"}

// GetFormFile: ambil file pertama dari kandidat nama field.
func GetFormFile(c *fiber.Ctx, candidates ...string) (*multipart.FileHeader, error) {
	if len(candidates) == 0 {
		candidates = defaultFileFields
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Form multipart tidak valid")
	}
	for _, k := range candidates {
		if fhs := form.File[k]; len(fhs) > 0 && fhs[0] != nil && fhs[0].Filename != "" {
			return fhs[0], nil
		}
	}
	return nil, fiber.NewError(fiber.StatusBadRequest, "File wajib diunggah (field: file)")
}
