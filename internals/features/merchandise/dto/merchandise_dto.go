package dto

import (
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"galeri_backend/internals/features/merchandise/model"
	"galeri_backend/internals/helpers/dbtime"
)

// Variant: ukuran / warna. Price & Stock opsional, nil = ikut induk.
type Variant struct {
	Name  string `json:"name" validate:"required,max=80"`
	SKU   string `json:"sku,omitempty" validate:"omitempty,max=60"`
	Price *int64 `json:"price,omitempty" validate:"omitempty,min=0"`
	Stock *int   `json:"stock,omitempty" validate:"omitempty,min=0"`
}

type CreateMerchandiseRequest struct {
	Name        string    `json:"name" validate:"required,min=2,max=200"`
	Description *string   `json:"description"`
	Price       int64     `json:"price" validate:"min=0"`
	Stock       int       `json:"stock" validate:"min=0"`
	ImageURL    *string   `json:"image_url" validate:"omitempty,url"`
	Variants    []Variant `json:"variants" validate:"omitempty,max=50,dive"`
	IsAvailable *bool     `json:"is_available"`
}

func (r CreateMerchandiseRequest) ToModel(createdBy *uuid.UUID) (model.MerchandiseModel, error) {
	variants, err := EncodeVariants(r.Variants)
	if err != nil {
		return model.MerchandiseModel{}, err
	}
	available := true
	if r.IsAvailable != nil {
		available = *r.IsAvailable
	}
	return model.MerchandiseModel{
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		ImageURL:    r.ImageURL,
		Variants:    variants,
		IsAvailable: available,
		CreatedBy:   createdBy,
	}, nil
}

type UpdateMerchandiseRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=2,max=200"`
	Description *string    `json:"description"`
	Price       *int64     `json:"price" validate:"omitempty,min=0"`
	Stock       *int       `json:"stock" validate:"omitempty,min=0"`
	ImageURL    *string    `json:"image_url" validate:"omitempty,url"`
	Variants    *[]Variant `json:"variants" validate:"omitempty,max=50,dive"`
	IsAvailable *bool      `json:"is_available"`
}

// Apply: return true kalau nama berubah (slug perlu dibuat ulang).
func (r UpdateMerchandiseRequest) Apply(m *model.MerchandiseModel) (nameChanged bool, err error) {
	if r.Variants != nil {
		v, err := EncodeVariants(*r.Variants)
		if err != nil {
			return false, err
		}
		m.Variants = v
	}
	if r.Name != nil {
		n := strings.TrimSpace(*r.Name)
		nameChanged = n != m.Name
		m.Name = n
	}
	if r.Description != nil {
		m.Description = r.Description
	}
	if r.Price != nil {
		m.Price = *r.Price
	}
	if r.Stock != nil {
		m.Stock = *r.Stock
	}
	if r.ImageURL != nil {
		m.ImageURL = r.ImageURL
	}
	if r.IsAvailable != nil {
		m.IsAvailable = *r.IsAvailable
	}
	return nameChanged, nil
}

func EncodeVariants(v []Variant) (datatypes.JSON, error) {
	if len(v) == 0 {
		return datatypes.JSON("[]"), nil
	}
	for i := range v {
		v[i].Name = strings.TrimSpace(v[i].Name)
	}
	raw, err := sonic.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// DecodeVariants: kolom rusak dianggap kosong, bukan error.
func DecodeVariants(raw datatypes.JSON) []Variant {
	out := []Variant{}
	if len(raw) == 0 {
		return out
	}
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return []Variant{}
	}
	return out
}

type ListQuery struct {
	Q         string `query:"q"`
	Available *bool  `query:"available"`
}

type MerchandiseResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	Price       int64     `json:"price"`
	Stock       int       `json:"stock"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Variants    []Variant `json:"variants"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromModel(m model.MerchandiseModel) MerchandiseResponse {
	return MerchandiseResponse{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		Price:       m.Price,
		Stock:       m.Stock,
		ImageURL:    m.ImageURL,
		Variants:    DecodeVariants(m.Variants),
		IsAvailable: m.IsAvailable,
		CreatedAt:   dbtime.ToLocal(m.CreatedAt),
		UpdatedAt:   dbtime.ToLocal(m.UpdatedAt),
	}
}

func FromModels(rows []model.MerchandiseModel) []MerchandiseResponse {
	out := make([]MerchandiseResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
