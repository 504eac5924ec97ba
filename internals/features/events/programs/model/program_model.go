package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	articleModel "galeri_backend/internals/features/articles/model"
	"galeri_backend/internals/features/events/eventbase"
	"galeri_backend/internals/features/events/lifecycle"
	mediaModel "galeri_backend/internals/features/media/model"
)

type ProgramModel struct {
	eventbase.EventBase

	// diisi repository dari program_media / program_articles (urut position)
	Media    []mediaModel.MediaModel     `gorm:"-" json:"media,omitempty"`
	Articles []articleModel.ArticleModel `gorm:"-" json:"articles,omitempty"`
}

func (ProgramModel) TableName() string {
	return "programs"
}

// BeforeSave: status di-resolve dengan jam write (dari context statement).
func (p *ProgramModel) BeforeSave(tx *gorm.DB) error {
	return lifecycle.Apply(p, lifecycle.NowFrom(tx.Statement.Context))
}

type ProgramMediaModel struct {
	ProgramID uuid.UUID              `gorm:"column:program_id;type:uuid;primaryKey"`
	MediaID   uuid.UUID              `gorm:"column:media_id;type:uuid;primaryKey;index"`
	Position  int                    `gorm:"column:position;not null;default:0"`
	Program   *ProgramModel          `gorm:"foreignKey:ProgramID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Media     *mediaModel.MediaModel `gorm:"foreignKey:MediaID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ProgramMediaModel) TableName() string {
	return "program_media"
}

type ProgramArticleModel struct {
	ProgramID uuid.UUID                  `gorm:"column:program_id;type:uuid;primaryKey"`
	ArticleID uuid.UUID                  `gorm:"column:article_id;type:uuid;primaryKey;index"`
	Position  int                        `gorm:"column:position;not null;default:0"`
	Program   *ProgramModel              `gorm:"foreignKey:ProgramID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Article   *articleModel.ArticleModel `gorm:"foreignKey:ArticleID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ProgramArticleModel) TableName() string {
	return "program_articles"
}
