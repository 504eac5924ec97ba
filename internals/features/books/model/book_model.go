package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BookModel struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title         string            `gorm:"type:varchar(255);not null" json:"title"`
	Slug          string            `gorm:"type:varchar(160);not null;uniqueIndex" json:"slug"`
	Author        string            `gorm:"type:varchar(200);not null" json:"author"`
	Publisher     *string           `gorm:"type:varchar(200)" json:"publisher,omitempty"`
	ISBN          *string           `gorm:"column:isbn;type:varchar(17);uniqueIndex" json:"isbn,omitempty"`
	Year          *int              `gorm:"column:year" json:"year,omitempty"`
	Price         int64             `gorm:"not null;default:0;check:price >= 0" json:"price"`
	Stock         int               `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	CoverImageURL *string           `gorm:"type:text" json:"cover_image_url,omitempty"`
	Description   *string           `gorm:"type:text" json:"description,omitempty"`
	Genres        pq.StringArray    `gorm:"type:text[];not null;default:'{}'" json:"genres"`
	Metadata      datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" json:"metadata"`
	CreatedBy     *uuid.UUID        `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt     time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BookModel) TableName() string {
	return "books"
}

func (b *BookModel) BeforeSave(tx *gorm.DB) error {
	if b.Genres == nil {
		b.Genres = pq.StringArray{}
	}
	if b.Metadata == nil {
		b.Metadata = datatypes.JSONMap{}
	}
	return nil
}
