package eventbase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"galeri_backend/internals/features/events/lifecycle"
	mediaDto "galeri_backend/internals/features/media/dto"
	mediaModel "galeri_backend/internals/features/media/model"
	"galeri_backend/internals/helpers/dbtime"
)

// EventInput: body POST. Tanggal diterima RFC3339 atau YYYY-MM-DD.
type EventInput struct {
	Title         string      `json:"title" validate:"required,min=3,max=200"`
	Description   string      `json:"description" validate:"required"`
	Location      *string     `json:"location" validate:"omitempty,max=255"`
	CoverImageURL *string     `json:"cover_image_url" validate:"omitempty,url"`
	StartDate     string      `json:"start_date"`
	EndDate       string      `json:"end_date"`
	Status        string      `json:"status" validate:"omitempty,oneof=draft scheduled ongoing completed cancelled"`
	IsPublic      bool        `json:"is_public"`
	MediaIDs      []uuid.UUID `json:"media_ids" validate:"omitempty,max=50"`
}

// Build mengisi field dasar. Rentang tanggal dicek di sini (400 sebelum ada write).
func (in EventInput) Build(createdBy *uuid.UUID) (EventBase, error) {
	start, end, err := ParseWindow(in.StartDate, in.EndDate)
	if err != nil {
		return EventBase{}, err
	}
	status, err := lifecycle.ParseStatus(in.Status)
	if err != nil {
		return EventBase{}, &lifecycle.ValidationError{Field: "status", Message: err.Error()}
	}
	return EventBase{
		ID:            uuid.New(),
		Title:         strings.TrimSpace(in.Title),
		Description:   in.Description,
		Location:      trimPtr(in.Location),
		CoverImageURL: trimPtr(in.CoverImageURL),
		StartDate:     start,
		EndDate:       end,
		Status:        status,
		IsPublic:      in.IsPublic,
		CreatedBy:     createdBy,
	}, nil
}

// EventPatch: body PUT, semua field opsional.
type EventPatch struct {
	Title         *string      `json:"title" validate:"omitempty,min=3,max=200"`
	Description   *string      `json:"description" validate:"omitempty,min=1"`
	Location      *string      `json:"location" validate:"omitempty,max=255"`
	CoverImageURL *string      `json:"cover_image_url" validate:"omitempty,url"`
	StartDate     *string      `json:"start_date"`
	EndDate       *string      `json:"end_date"`
	Status        *string      `json:"status" validate:"omitempty,oneof=draft scheduled ongoing completed cancelled"`
	IsPublic      *bool        `json:"is_public"`
	MediaIDs      *[]uuid.UUID `json:"media_ids" validate:"omitempty,max=50"`
}

// Apply menulis patch ke e. Tanggal hasil gabungan dicek ulang.
func (p EventPatch) Apply(e *EventBase) (titleChanged bool, err error) {
	start, end := e.StartDate, e.EndDate
	if p.StartDate != nil {
		if start, err = parseField("start_date", *p.StartDate); err != nil {
			return false, err
		}
	}
	if p.EndDate != nil {
		if end, err = parseField("end_date", *p.EndDate); err != nil {
			return false, err
		}
	}
	if err := lifecycle.ValidateRange(start, end); err != nil {
		return false, err
	}
	if p.Status != nil {
		st, err := lifecycle.ParseStatus(*p.Status)
		if err != nil {
			return false, &lifecycle.ValidationError{Field: "status", Message: err.Error()}
		}
		e.Status = st
	}

	e.StartDate, e.EndDate = start, end
	if p.Title != nil {
		t := strings.TrimSpace(*p.Title)
		titleChanged = t != e.Title
		e.Title = t
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Location != nil {
		e.Location = trimPtr(p.Location)
	}
	if p.CoverImageURL != nil {
		e.CoverImageURL = trimPtr(p.CoverImageURL)
	}
	if p.IsPublic != nil {
		e.IsPublic = *p.IsPublic
	}
	return titleChanged, nil
}

// ParseWindow: parse + cek end >= start.
func ParseWindow(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := parseField("start_date", startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseField("end_date", endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if err := lifecycle.ValidateRange(start, end); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func parseField(field, raw string) (time.Time, error) {
	t, err := dbtime.ParseDate(raw)
	if err != nil {
		return time.Time{}, lifecycle.MalformedDate(field, raw)
	}
	return t, nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// ListQuery: ?q=&status=&public=true
type ListQuery struct {
	Q      string `query:"q"`
	Status string `query:"status"`
	Public bool   `query:"public"`
}

// EventResponse: status selalu hasil resolve saat response dibuat.
type EventResponse struct {
	ID            uuid.UUID             `json:"id"`
	Title         string                `json:"title"`
	Slug          string                `json:"slug"`
	Description   string                `json:"description"`
	Location      *string               `json:"location,omitempty"`
	CoverImageURL *string               `json:"cover_image_url,omitempty"`
	StartDate     time.Time             `json:"start_date"`
	EndDate       time.Time             `json:"end_date"`
	Status        lifecycle.Status      `json:"status"`
	IsPublic      bool                  `json:"is_public"`
	Media         []mediaDto.MediaBrief `json:"media"`
	CreatedBy     *uuid.UUID            `json:"created_by,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

func NewEventResponse(e EventBase, media []mediaModel.MediaModel, now time.Time) EventResponse {
	return EventResponse{
		ID:            e.ID,
		Title:         e.Title,
		Slug:          e.Slug,
		Description:   e.Description,
		Location:      e.Location,
		CoverImageURL: e.CoverImageURL,
		StartDate:     dbtime.ToLocal(e.StartDate),
		EndDate:       dbtime.ToLocal(e.EndDate),
		Status:        lifecycle.Project(&e, now),
		IsPublic:      e.IsPublic,
		Media:         mediaDto.BriefsFromModels(media),
		CreatedBy:     e.CreatedBy,
		CreatedAt:     dbtime.ToLocal(e.CreatedAt),
		UpdatedAt:     dbtime.ToLocal(e.UpdatedAt),
	}
}
