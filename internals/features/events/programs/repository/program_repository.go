package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"galeri_backend/internals/features/events/eventbase"
	"galeri_backend/internals/features/events/programs/model"
	helper "galeri_backend/internals/helpers"
)

const table = "programs"

var (
	ErrNotFound = eventbase.ErrNotFound

	mediaLinks   = eventbase.LinkTable{Table: "program_media", OwnerCol: "program_id", RefCol: "media_id"}
	articleLinks = eventbase.LinkTable{Table: "program_articles", OwnerCol: "program_id", RefCol: "article_id"}
)

// ProgramRepository: akses data program. Controller hanya bergantung ke interface ini.
type ProgramRepository interface {
	List(ctx context.Context, f eventbase.ListFilter) ([]model.ProgramModel, int64, error)
	GetByID(ctx context.Context, id uuid.UUID, publicOnly bool) (*model.ProgramModel, error)
	GetBySlug(ctx context.Context, slug string, publicOnly bool) (*model.ProgramModel, error)
	// mediaIDs / articleIDs nil = relasi tidak diubah (khusus Update)
	Create(ctx context.Context, m *model.ProgramModel, mediaIDs, articleIDs []uuid.UUID) error
	Update(ctx context.Context, m *model.ProgramModel, mediaIDs, articleIDs *[]uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	UniqueSlug(ctx context.Context, title string, exclude uuid.UUID) (string, error)
}

type programRepository struct {
	db *gorm.DB
}

func NewProgramRepository(db *gorm.DB) ProgramRepository {
	return &programRepository{db: db}
}

func (r *programRepository) List(ctx context.Context, f eventbase.ListFilter) ([]model.ProgramModel, int64, error) {
	q := f.Apply(r.db.WithContext(ctx).Model(&model.ProgramModel{}))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.ProgramModel
	if err := q.Order("start_date DESC, id").Limit(f.Limit).Offset(f.Offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	if err := r.attach(ctx, rows); err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *programRepository) GetByID(ctx context.Context, id uuid.UUID, publicOnly bool) (*model.ProgramModel, error) {
	return r.first(ctx, publicOnly, "id = ?", id)
}

func (r *programRepository) GetBySlug(ctx context.Context, slug string, publicOnly bool) (*model.ProgramModel, error) {
	return r.first(ctx, publicOnly, "LOWER(slug) = ?", strings.ToLower(strings.TrimSpace(slug)))
}

func (r *programRepository) first(ctx context.Context, publicOnly bool, cond string, arg any) (*model.ProgramModel, error) {
	q := r.db.WithContext(ctx).Where(cond, arg)
	if publicOnly {
		q = q.Scopes(eventbase.PublicScope)
	}
	var m model.ProgramModel
	if err := q.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	rows := []model.ProgramModel{m}
	if err := r.attach(ctx, rows); err != nil {
		return nil, err
	}
	return &rows[0], nil
}

// attach mengisi Media & Articles untuk semua row dalam dua query.
func (r *programRepository) attach(ctx context.Context, rows []model.ProgramModel) error {
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
	articles, err := eventbase.LoadArticles(ctx, r.db, articleLinks, ids)
	if err != nil {
		return err
	}
	for i := range rows {
		rows[i].Media = media[rows[i].ID]
		rows[i].Articles = articles[rows[i].ID]
	}
	return nil
}

func (r *programRepository) Create(ctx context.Context, m *model.ProgramModel, mediaIDs, articleIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(m).Error; err != nil {
			return err
		}
		if err := eventbase.ReplaceLinks(tx, mediaLinks, m.ID, mediaIDs); err != nil {
			return err
		}
		return eventbase.ReplaceLinks(tx, articleLinks, m.ID, articleIDs)
	})
}

func (r *programRepository) Update(ctx context.Context, m *model.ProgramModel, mediaIDs, articleIDs *[]uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(m).Select("*").Omit("id", "created_at", "created_by").Updates(m)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		if mediaIDs != nil {
			if err := eventbase.ReplaceLinks(tx, mediaLinks, m.ID, *mediaIDs); err != nil {
				return err
			}
		}
		if articleIDs != nil {
			if err := eventbase.ReplaceLinks(tx, articleLinks, m.ID, *articleIDs); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete: hard delete. Media & artikel tidak ikut terhapus, hanya baris relasinya.
func (r *programRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := eventbase.ClearLinks(tx, mediaLinks, id); err != nil {
			return err
		}
		if err := eventbase.ClearLinks(tx, articleLinks, id); err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.ProgramModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *programRepository) UniqueSlug(ctx context.Context, title string, exclude uuid.UUID) (string, error) {
	var scope helper.SlugScope
	if exclude != uuid.Nil {
		scope = helper.ExcludeID("id", exclude)
	}
	return helper.EnsureUniqueSlugCI(ctx, r.db, table, "slug",
		helper.Slugify(title, helper.DefaultSlugMaxLen), scope, helper.DefaultSlugMaxLen)
}
