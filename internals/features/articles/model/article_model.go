package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"galeri_backend/internals/helpers/dbtime"
)

type ArticleModel struct {
	ID            uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title         string         `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Slug          string         `gorm:"column:slug;type:varchar(160);not null;uniqueIndex" json:"slug"`
	Content       string         `gorm:"column:content;type:text;not null" json:"content"`
	Excerpt       *string        `gorm:"column:excerpt;type:text" json:"excerpt,omitempty"`
	CoverImageURL *string        `gorm:"column:cover_image_url;type:text" json:"cover_image_url,omitempty"`
	Tags          pq.StringArray `gorm:"column:tags;type:text[];not null;default:'{}'" json:"tags"`
	AuthorID      *uuid.UUID     `gorm:"column:author_id;type:uuid;index" json:"author_id,omitempty"`
	IsPublished   bool           `gorm:"column:is_published;not null;default:false;index" json:"is_published"`
	PublishedAt   *time.Time     `gorm:"column:published_at" json:"published_at,omitempty"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ArticleModel) TableName() string {
	return "articles"
}

// BeforeSave: published_at diisi sekali saat pertama kali terbit.
func (a *ArticleModel) BeforeSave(tx *gorm.DB) error {
	if a.Tags == nil {
		a.Tags = pq.StringArray{}
	}
	if a.IsPublished && a.PublishedAt == nil {
		now := dbtime.Now()
		a.PublishedAt = &now
	}
	return nil
}
