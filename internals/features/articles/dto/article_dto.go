package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"galeri_backend/internals/features/articles/model"
	"galeri_backend/internals/helpers/dbtime"
)

type CreateArticleRequest struct {
	Title         string   `json:"title" validate:"required,min=3,max=200"`
	Content       string   `json:"content" validate:"required"`
	Excerpt       *string  `json:"excerpt" validate:"omitempty,max=500"`
	CoverImageURL *string  `json:"cover_image_url" validate:"omitempty,url"`
	Tags          []string `json:"tags" validate:"omitempty,max=20,dive,min=1,max=40"`
	IsPublished   bool     `json:"is_published"`
}

func (r CreateArticleRequest) ToModel(authorID *uuid.UUID) model.ArticleModel {
	return model.ArticleModel{
		Title:         strings.TrimSpace(r.Title),
		Content:       r.Content,
		Excerpt:       r.Excerpt,
		CoverImageURL: r.CoverImageURL,
		Tags:          NormalizeTags(r.Tags),
		AuthorID:      authorID,
		IsPublished:   r.IsPublished,
	}
}

type UpdateArticleRequest struct {
	Title         *string   `json:"title" validate:"omitempty,min=3,max=200"`
	Content       *string   `json:"content" validate:"omitempty,min=1"`
	Excerpt       *string   `json:"excerpt" validate:"omitempty,max=500"`
	CoverImageURL *string   `json:"cover_image_url" validate:"omitempty,url"`
	Tags          *[]string `json:"tags" validate:"omitempty,max=20,dive,min=1,max=40"`
	IsPublished   *bool     `json:"is_published"`
}

// Apply menulis field yang dikirim ke m. Return true kalau judul berubah.
func (r UpdateArticleRequest) Apply(m *model.ArticleModel) (titleChanged bool) {
	if r.Title != nil {
		t := strings.TrimSpace(*r.Title)
		titleChanged = t != m.Title
		m.Title = t
	}
	if r.Content != nil {
		m.Content = *r.Content
	}
	if r.Excerpt != nil {
		m.Excerpt = r.Excerpt
	}
	if r.CoverImageURL != nil {
		m.CoverImageURL = r.CoverImageURL
	}
	if r.Tags != nil {
		m.Tags = NormalizeTags(*r.Tags)
	}
	// published_at tetap tanggal terbit pertama
	if r.IsPublished != nil {
		m.IsPublished = *r.IsPublished
	}
	return titleChanged
}

// NormalizeTags: lowercase, trim, unik, urutan dipertahankan.
func NormalizeTags(in []string) pq.StringArray {
	out := make(pq.StringArray, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, t := range in {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

type ListQuery struct {
	Q         string `query:"q"`
	Tag       string `query:"tag"`
	Published *bool  `query:"published"`
}

type ArticleResponse struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Content       string     `json:"content"`
	Excerpt       *string    `json:"excerpt,omitempty"`
	CoverImageURL *string    `json:"cover_image_url,omitempty"`
	Tags          []string   `json:"tags"`
	AuthorID      *uuid.UUID `json:"author_id,omitempty"`
	IsPublished   bool       `json:"is_published"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func FromModel(m model.ArticleModel) ArticleResponse {
	tags := []string(m.Tags)
	if tags == nil {
		tags = []string{}
	}
	return ArticleResponse{
		ID:            m.ID,
		Title:         m.Title,
		Slug:          m.Slug,
		Content:       m.Content,
		Excerpt:       m.Excerpt,
		CoverImageURL: m.CoverImageURL,
		Tags:          tags,
		AuthorID:      m.AuthorID,
		IsPublished:   m.IsPublished,
		PublishedAt:   dbtime.ToLocalPtr(m.PublishedAt),
		CreatedAt:     dbtime.ToLocal(m.CreatedAt),
		UpdatedAt:     dbtime.ToLocal(m.UpdatedAt),
	}
}

func FromModels(rows []model.ArticleModel) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}

// ArticleBrief: ringkasan artikel yang ditempel di program.
type ArticleBrief struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Excerpt       *string   `json:"excerpt,omitempty"`
	CoverImageURL *string   `json:"cover_image_url,omitempty"`
}

func BriefsFromModels(rows []model.ArticleModel) []ArticleBrief {
	out := make([]ArticleBrief, 0, len(rows))
	for _, a := range rows {
		out = append(out, ArticleBrief{
			ID:            a.ID,
			Title:         a.Title,
			Slug:          a.Slug,
			Excerpt:       a.Excerpt,
			CoverImageURL: a.CoverImageURL,
		})
	}
	return out
}
