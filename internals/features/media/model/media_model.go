package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MediaModel struct {
	ID           uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title        string         `gorm:"column:title;type:varchar(200);not null" json:"title"`
	AltText      *string        `gorm:"column:alt_text;type:varchar(255)" json:"alt_text,omitempty"`
	FileName     string         `gorm:"column:file_name;type:varchar(255);not null" json:"file_name"`
	URL          string         `gorm:"column:url;type:text;not null" json:"url"`
	ThumbnailURL *string        `gorm:"column:thumbnail_url;type:text" json:"thumbnail_url,omitempty"`
	ObjectKey    string         `gorm:"column:object_key;type:text;not null" json:"-"`
	MimeType     string         `gorm:"column:mime_type;type:varchar(100);not null" json:"mime_type"`
	Kind         string         `gorm:"column:kind;type:varchar(20);not null;index" json:"kind"`
	SizeBytes    int64          `gorm:"column:size_bytes;not null;default:0" json:"size_bytes"`
	Width        *int           `gorm:"column:width" json:"width,omitempty"`
	Height       *int           `gorm:"column:height" json:"height,omitempty"`
	Metadata     datatypes.JSON `gorm:"column:metadata;type:jsonb" json:"metadata,omitempty"`
	UploadedBy   *uuid.UUID     `gorm:"column:uploaded_by;type:uuid;index" json:"uploaded_by,omitempty"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MediaModel) TableName() string {
	return "media"
}
