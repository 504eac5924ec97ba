package eventbase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	articleModel "galeri_backend/internals/features/articles/model"
	mediaModel "galeri_backend/internals/features/media/model"
)

// LinkTable mendeskripsikan tabel relasi berurutan (owner → ref, position).
type LinkTable struct {
	Table    string // program_media
	OwnerCol string // program_id
	RefCol   string // media_id
}

// UniqueIDs membuang duplikat & uuid.Nil, urutan pertama dipertahankan.
func UniqueIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// ReplaceLinks menghapus semua relasi owner lalu menulis ulang sesuai urutan refs.
// Harus dipanggil di dalam transaksi.
func ReplaceLinks(tx *gorm.DB, lt LinkTable, ownerID uuid.UUID, refs []uuid.UUID) error {
	if err := ClearLinks(tx, lt, ownerID); err != nil {
		return err
	}
	refs = UniqueIDs(refs)
	if len(refs) == 0 {
		return nil
	}
	rows := make([]map[string]any, 0, len(refs))
	for i, ref := range refs {
		rows = append(rows, map[string]any{
			lt.OwnerCol: ownerID,
			lt.RefCol:   ref,
			"position":  i,
		})
	}
	return tx.Table(lt.Table).Create(rows).Error
}

func ClearLinks(tx *gorm.DB, lt LinkTable, ownerID uuid.UUID) error {
	return tx.Exec(fmt.Sprintf("DELETE FROM %s WHERE %s = ?", lt.Table, lt.OwnerCol), ownerID).Error
}

type mediaRow struct {
	mediaModel.MediaModel
	OwnerID uuid.UUID `gorm:"column:owner_id"`
}

// LoadMedia mengambil media untuk banyak owner sekaligus, terurut per position.
func LoadMedia(ctx context.Context, db *gorm.DB, lt LinkTable, ownerIDs []uuid.UUID) (map[uuid.UUID][]mediaModel.MediaModel, error) {
	out := make(map[uuid.UUID][]mediaModel.MediaModel, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return out, nil
	}
	var rows []mediaRow
	err := db.WithContext(ctx).
		Table("media AS m").
		Select(fmt.Sprintf("m.*, l.%s AS owner_id", lt.OwnerCol)).
		Joins(fmt.Sprintf("JOIN %s l ON l.%s = m.id", lt.Table, lt.RefCol)).
		Where(fmt.Sprintf("l.%s IN ?", lt.OwnerCol), ownerIDs).
		Order(fmt.Sprintf("l.%s, l.position ASC", lt.OwnerCol)).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.OwnerID] = append(out[r.OwnerID], r.MediaModel)
	}
	return out, nil
}

type articleRow struct {
	articleModel.ArticleModel
	OwnerID uuid.UUID `gorm:"column:owner_id"`
}

// LoadArticles: sama seperti LoadMedia untuk artikel.
func LoadArticles(ctx context.Context, db *gorm.DB, lt LinkTable, ownerIDs []uuid.UUID) (map[uuid.UUID][]articleModel.ArticleModel, error) {
	out := make(map[uuid.UUID][]articleModel.ArticleModel, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return out, nil
	}
	var rows []articleRow
	err := db.WithContext(ctx).
		Table("articles AS a").
		Select(fmt.Sprintf("a.*, l.%s AS owner_id", lt.OwnerCol)).
		Joins(fmt.Sprintf("JOIN %s l ON l.%s = a.id", lt.Table, lt.RefCol)).
		Where(fmt.Sprintf("l.%s IN ?", lt.OwnerCol), ownerIDs).
		Order(fmt.Sprintf("l.%s, l.position ASC", lt.OwnerCol)).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.OwnerID] = append(out[r.OwnerID], r.ArticleModel)
	}
	return out, nil
}
