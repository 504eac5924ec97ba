package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MerchandiseModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string         `gorm:"type:varchar(200);not null" json:"name"`
	Slug        string         `gorm:"type:varchar(160);not null;uniqueIndex" json:"slug"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	Price       int64          `gorm:"not null;default:0;check:price >= 0" json:"price"` // rupiah
	Stock       int            `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	ImageURL    *string        `gorm:"type:text" json:"image_url,omitempty"`
	Variants    datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"variants"`
	IsAvailable bool           `gorm:"not null;default:true;index" json:"is_available"`
	CreatedBy   *uuid.UUID     `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MerchandiseModel) TableName() string {
	return "merchandise"
}

func (m *MerchandiseModel) BeforeSave(tx *gorm.DB) error {
	if len(m.Variants) == 0 {
		m.Variants = datatypes.JSON("[]")
	}
	return nil
}
