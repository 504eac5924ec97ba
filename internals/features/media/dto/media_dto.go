package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"galeri_backend/internals/features/media/model"
	"galeri_backend/internals/helpers/dbtime"
)

// form-data: file, title, alt_text
type UploadMediaRequest struct {
	Title   string  `form:"title" validate:"omitempty,max=200"`
	AltText *string `form:"alt_text" validate:"omitempty,max=255"`
}

type UpdateMediaRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=1,max=200"`
	AltText *string `json:"alt_text" validate:"omitempty,max=255"`
}

func (r UpdateMediaRequest) ToUpdates() map[string]any {
	out := map[string]any{}
	if r.Title != nil {
		out["title"] = *r.Title
	}
	if r.AltText != nil {
		out["alt_text"] = *r.AltText
	}
	return out
}

type ListQuery struct {
	Q    string `query:"q"`
	Kind string `query:"kind"`
}

type MediaResponse struct {
	ID           uuid.UUID      `json:"id"`
	Title        string         `json:"title"`
	AltText      *string        `json:"alt_text,omitempty"`
	FileName     string         `json:"file_name"`
	URL          string         `json:"url"`
	ThumbnailURL *string        `json:"thumbnail_url,omitempty"`
	MimeType     string         `json:"mime_type"`
	Kind         string         `json:"kind"`
	SizeBytes    int64          `json:"size_bytes"`
	Width        *int           `json:"width,omitempty"`
	Height       *int           `json:"height,omitempty"`
	Metadata     datatypes.JSON `json:"metadata,omitempty"`
	UploadedBy   *uuid.UUID     `json:"uploaded_by,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func FromModel(m model.MediaModel) MediaResponse {
	return MediaResponse{
		ID:           m.ID,
		Title:        m.Title,
		AltText:      m.AltText,
		FileName:     m.FileName,
		URL:          m.URL,
		ThumbnailURL: m.ThumbnailURL,
		MimeType:     m.MimeType,
		Kind:         m.Kind,
		SizeBytes:    m.SizeBytes,
		Width:        m.Width,
		Height:       m.Height,
		Metadata:     m.Metadata,
		UploadedBy:   m.UploadedBy,
		CreatedAt:    dbtime.ToLocal(m.CreatedAt),
		UpdatedAt:    dbtime.ToLocal(m.UpdatedAt),
	}
}

func FromModels(rows []model.MediaModel) []MediaResponse {
	out := make([]MediaResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}

// MediaBrief: bentuk ringkas untuk ditempel di program / party literasi.
type MediaBrief struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	AltText      *string   `json:"alt_text,omitempty"`
	Kind         string    `json:"kind"`
}

func BriefsFromModels(rows []model.MediaModel) []MediaBrief {
	out := make([]MediaBrief, 0, len(rows))
	for _, m := range rows {
		out = append(out, MediaBrief{
			ID:           m.ID,
			Title:        m.Title,
			URL:          m.URL,
			ThumbnailURL: m.ThumbnailURL,
			AltText:      m.AltText,
			Kind:         m.Kind,
		})
	}
	return out
}
