// Package eventbase berisi kolom & perilaku yang sama antara program dan party literasi.
package eventbase

import (
	"time"

	"github.com/google/uuid"

	"galeri_backend/internals/features/events/lifecycle"
)

// EventBase di-embed ke ProgramModel / PartyLiterasiModel.
type EventBase struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title         string           `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Slug          string           `gorm:"column:slug;type:varchar(160);not null;uniqueIndex" json:"slug"`
	Description   string           `gorm:"column:description;type:text;not null" json:"description"`
	Location      *string          `gorm:"column:location;type:varchar(255)" json:"location,omitempty"`
	CoverImageURL *string          `gorm:"column:cover_image_url;type:text" json:"cover_image_url,omitempty"`
	StartDate     time.Time        `gorm:"column:start_date;type:timestamptz;not null;index" json:"start_date"`
	EndDate       time.Time        `gorm:"column:end_date;type:timestamptz;not null" json:"end_date"`
	Status        lifecycle.Status `gorm:"column:status;type:varchar(20);not null;default:'draft';index" json:"status"`
	IsPublic      bool             `gorm:"column:is_public;not null;default:false;index" json:"is_public"`
	CreatedBy     *uuid.UUID       `gorm:"column:created_by;type:uuid" json:"created_by,omitempty"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (e *EventBase) LifecycleStatus() lifecycle.Status     { return e.Status }
func (e *EventBase) SetLifecycleStatus(s lifecycle.Status) { e.Status = s }
func (e *EventBase) LifecycleWindow() (time.Time, time.Time) {
	return e.StartDate, e.EndDate
}

var _ lifecycle.Record = (*EventBase)(nil)
