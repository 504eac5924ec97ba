package eventbase

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"galeri_backend/internals/features/events/lifecycle"
)

var ErrNotFound = errors.New("event tidak ditemukan")

type ListFilter struct {
	PublicOnly bool
	Status     lifecycle.Status
	Q          string
	Limit      int
	Offset     int
}

// PublicScope: is_public = true dan bukan draft.
func PublicScope(db *gorm.DB) *gorm.DB {
	return db.Where("is_public = ? AND status <> ?", true, lifecycle.StatusDraft)
}

// Apply memasang WHERE dari filter (tanpa limit/offset).
func (f ListFilter) Apply(db *gorm.DB) *gorm.DB {
	if f.PublicOnly {
		db = db.Scopes(PublicScope)
	}
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if s := strings.TrimSpace(f.Q); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(COALESCE(location, '')) LIKE ?", like, like)
	}
	return db
}
