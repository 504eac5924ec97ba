package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"galeri_backend/internals/features/events/eventbase"
	"galeri_backend/internals/features/events/party_literasi/model"
	helper "galeri_backend/internals/helpers"
)

const table = "party_literasi"

var (
	ErrNotFound = eventbase.ErrNotFound

	mediaLinks = eventbase.LinkTable{Table: "party_literasi_media", OwnerCol: "party_literasi_id", RefCol: "media_id"}
)

type PartyLiterasiRepository interface {
	List(ctx context.Context, f eventbase.ListFilter) ([]model.PartyLiterasiModel, int64, error)
	GetByID(ctx context.Context, id uuid.UUID, publicOnly bool) (*model.PartyLiterasiModel, error)
	GetBySlug(ctx context.Context, slug string, publicOnly bool) (*model.PartyLiterasiModel, error)
	Create(ctx context.Context, m *model.PartyLiterasiModel, mediaIDs []uuid.UUID) error
	// mediaIDs nil = relasi media tidak disentuh
	Update(ctx context.Context, m *model.PartyLiterasiModel, mediaIDs *[]uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	UniqueSlug(ctx context.Context, title string, exclude uuid.UUID) (string, error)
}

type partyLiterasiRepository struct {
	db *gorm.DB
}

func NewPartyLiterasiRepository(db *gorm.DB) PartyLiterasiRepository {
	return &partyLiterasiRepository{db: db}
}

func (r *partyLiterasiRepository) List(ctx context.Context, f eventbase.ListFilter) ([]model.PartyLiterasiModel, int64, error) {
	q := f.Apply(r.db.WithContext(ctx).Model(&model.PartyLiterasiModel{}))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.PartyLiterasiModel
	if err := q.Order("start_date DESC, id").Limit(f.Limit).Offset(f.Offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	if err := r.attach(ctx, rows); err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *partyLiterasiRepository) GetByID(ctx context.Context, id uuid.UUID, publicOnly bool) (*model.PartyLiterasiModel, error) {
	return r.first(ctx, publicOnly, "id = ?", id)
}

func (r *partyLiterasiRepository) GetBySlug(ctx context.Context, slug string, publicOnly bool) (*model.PartyLiterasiModel, error) {
	return r.first(ctx, publicOnly, "LOWER(slug) = ?", strings.ToLower(strings.TrimSpace(slug)))
}

func (r *partyLiterasiRepository) first(ctx context.Context, publicOnly bool, cond string, arg any) (*model.PartyLiterasiModel, error) {
	q := r.db.WithContext(ctx).Where(cond, arg)
	if publicOnly {
		q = q.Scopes(eventbase.PublicScope)
	}
	var m model.PartyLiterasiModel
	if err := q.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	rows := []model.PartyLiterasiModel{m}
	if err := r.attach(ctx, rows); err != nil {
		return nil, err
	}
	return &rows[0], nil
}

func (r *partyLiterasiRepository) attach(ctx context.Context, rows []model.PartyLiterasiModel) error {
	if len(rows) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for _, p := range rows {
		ids = append(ids, p.ID)
	}
	media, err := eventbase.LoadMedia(ctx, r.db, mediaLinks, ids)
	if err != nil {
		return err
	}
	for i := range rows {
		rows[i].Media = media[rows[i].ID]
	}
	return nil
}

func (r *partyLiterasiRepository) Create(ctx context.Context, m *model.PartyLiterasiModel, mediaIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(m).Error; err != nil {
			return err
		}
		return eventbase.ReplaceLinks(tx, mediaLinks, m.ID, mediaIDs)
	})
}

func (r *partyLiterasiRepository) Update(ctx context.Context, m *model.PartyLiterasiModel, mediaIDs *[]uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(m).Select("*").Omit("id", "created_at", "created_by").Updates(m)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		if mediaIDs == nil {
			return nil
		}
		return eventbase.ReplaceLinks(tx, mediaLinks, m.ID, *mediaIDs)
	})
}

func (r *partyLiterasiRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := eventbase.ClearLinks(tx, mediaLinks, id); err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.PartyLiterasiModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *partyLiterasiRepository) UniqueSlug(ctx context.Context, title string, exclude uuid.UUID) (string, error) {
	var scope helper.SlugScope
	if exclude != uuid.Nil {
		scope = helper.ExcludeID("id", exclude)
	}
	return helper.EnsureUniqueSlugCI(ctx, r.db, table, "slug",
		helper.Slugify(title, helper.DefaultSlugMaxLen), scope, helper.DefaultSlugMaxLen)
}
