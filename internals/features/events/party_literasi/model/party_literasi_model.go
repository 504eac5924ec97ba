package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"galeri_backend/internals/features/events/eventbase"
	"galeri_backend/internals/features/events/lifecycle"
	mediaModel "galeri_backend/internals/features/media/model"
)

// PartyLiterasiModel: acara literasi. Kolom sama dengan program, tanpa artikel.
type PartyLiterasiModel struct {
	eventbase.EventBase

	Media []mediaModel.MediaModel `gorm:"-" json:"media,omitempty"`
}

func (PartyLiterasiModel) TableName() string {
	return "party_literasi"
}

func (p *PartyLiterasiModel) BeforeSave(tx *gorm.DB) error {
	return lifecycle.Apply(p, lifecycle.NowFrom(tx.Statement.Context))
}

type PartyLiterasiMediaModel struct {
	PartyLiterasiID uuid.UUID              `gorm:"column:party_literasi_id;type:uuid;primaryKey"`
	MediaID         uuid.UUID              `gorm:"column:media_id;type:uuid;primaryKey;index"`
	Position        int                    `gorm:"column:position;not null;default:0"`
	PartyLiterasi   *PartyLiterasiModel    `gorm:"foreignKey:PartyLiterasiID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Media           *mediaModel.MediaModel `gorm:"foreignKey:MediaID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (PartyLiterasiMediaModel) TableName() string {
	return "party_literasi_media"
}
