package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"galeri_backend/internals/features/books/model"
	"galeri_backend/internals/helpers/dbtime"
)

type CreateBookRequest struct {
	Title         string         `json:"title" validate:"required,min=1,max=255"`
	Author        string         `json:"author" validate:"required,max=200"`
	Publisher     *string        `json:"publisher" validate:"omitempty,max=200"`
	ISBN          *string        `json:"isbn" validate:"omitempty,isbn"`
	Year          *int           `json:"year" validate:"omitempty,min=1000,max=9999"`
	Price         int64          `json:"price" validate:"min=0"`
	Stock         int            `json:"stock" validate:"min=0"`
	CoverImageURL *string        `json:"cover_image_url" validate:"omitempty,url"`
	Description   *string        `json:"description"`
	Genres        []string       `json:"genres" validate:"omitempty,max=20,dive,min=1,max=60"`
	Metadata      map[string]any `json:"metadata"`
}

func (r CreateBookRequest) ToModel(createdBy *uuid.UUID) model.BookModel {
	return model.BookModel{
		Title:         strings.TrimSpace(r.Title),
		Author:        strings.TrimSpace(r.Author),
		Publisher:     r.Publisher,
		ISBN:          NormalizeISBN(r.ISBN),
		Year:          r.Year,
		Price:         r.Price,
		Stock:         r.Stock,
		CoverImageURL: r.CoverImageURL,
		Description:   r.Description,
		Genres:        NormalizeGenres(r.Genres),
		Metadata:      datatypes.JSONMap(r.Metadata),
		CreatedBy:     createdBy,
	}
}

type UpdateBookRequest struct {
	Title         *string         `json:"title" validate:"omitempty,min=1,max=255"`
	Author        *string         `json:"author" validate:"omitempty,min=1,max=200"`
	Publisher     *string         `json:"publisher" validate:"omitempty,max=200"`
	ISBN          *string         `json:"isbn" validate:"omitempty,isbn"`
	Year          *int            `json:"year" validate:"omitempty,min=1000,max=9999"`
	Price         *int64          `json:"price" validate:"omitempty,min=0"`
	Stock         *int            `json:"stock" validate:"omitempty,min=0"`
	CoverImageURL *string         `json:"cover_image_url" validate:"omitempty,url"`
	Description   *string         `json:"description"`
	Genres        *[]string       `json:"genres" validate:"omitempty,max=20,dive,min=1,max=60"`
	Metadata      *map[string]any `json:"metadata"`
}

func (r UpdateBookRequest) Apply(m *model.BookModel) (titleChanged bool) {
	if r.Title != nil {
		t := strings.TrimSpace(*r.Title)
		titleChanged = t != m.Title
		m.Title = t
	}
	if r.Author != nil {
		m.Author = strings.TrimSpace(*r.Author)
	}
	if r.Publisher != nil {
		m.Publisher = r.Publisher
	}
	if r.ISBN != nil {
		m.ISBN = NormalizeISBN(r.ISBN)
	}
	if r.Year != nil {
		m.Year = r.Year
	}
	if r.Price != nil {
		m.Price = *r.Price
	}
	if r.Stock != nil {
		m.Stock = *r.Stock
	}
	if r.CoverImageURL != nil {
		m.CoverImageURL = r.CoverImageURL
	}
	if r.Description != nil {
		m.Description = r.Description
	}
	if r.Genres != nil {
		m.Genres = NormalizeGenres(*r.Genres)
	}
	if r.Metadata != nil {
		m.Metadata = datatypes.JSONMap(*r.Metadata)
	}
	return titleChanged
}

// NormalizeISBN membuang spasi & tanda hubung. String kosong jadi nil
// supaya unique index tidak bentrok antar buku tanpa ISBN.
func NormalizeISBN(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToUpper(strings.NewReplacer("-", "", " ", "").Replace(*s))
	if v == "" {
		return nil
	}
	return &v
}

func NormalizeGenres(in []string) pq.StringArray {
	out := make(pq.StringArray, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, g := range in {
		g = strings.ToLower(strings.TrimSpace(g))
		if g == "" {
			continue
		}
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}

// ListQuery: ?q= (judul/penulis) &genre= &author=
type ListQuery struct {
	Q      string `query:"q"`
	Genre  string `query:"genre"`
	Author string `query:"author"`
}

type BookResponse struct {
	ID            uuid.UUID      `json:"id"`
	Title         string         `json:"title"`
	Slug          string         `json:"slug"`
	Author        string         `json:"author"`
	Publisher     *string        `json:"publisher,omitempty"`
	ISBN          *string        `json:"isbn,omitempty"`
	Year          *int           `json:"year,omitempty"`
	Price         int64          `json:"price"`
	Stock         int            `json:"stock"`
	CoverImageURL *string        `json:"cover_image_url,omitempty"`
	Description   *string        `json:"description,omitempty"`
	Genres        []string       `json:"genres"`
	Metadata      map[string]any `json:"metadata"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func FromModel(m model.BookModel) BookResponse {
	genres := []string(m.Genres)
	if genres == nil {
		genres = []string{}
	}
	meta := map[string]any(m.Metadata)
	if meta == nil {
		meta = map[string]any{}
	}
	return BookResponse{
		ID:            m.ID,
		Title:         m.Title,
		Slug:          m.Slug,
		Author:        m.Author,
		Publisher:     m.Publisher,
		ISBN:          m.ISBN,
		Year:          m.Year,
		Price:         m.Price,
		Stock:         m.Stock,
		CoverImageURL: m.CoverImageURL,
		Description:   m.Description,
		Genres:        genres,
		Metadata:      meta,
		CreatedAt:     dbtime.ToLocal(m.CreatedAt),
		UpdatedAt:     dbtime.ToLocal(m.UpdatedAt),
	}
}

func FromModels(rows []model.BookModel) []BookResponse {
	out := make([]BookResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
