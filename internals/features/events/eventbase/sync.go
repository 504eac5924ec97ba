package eventbase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"galeri_backend/internals/features/events/lifecycle"
)

type statusRow struct {
	ID        uuid.UUID        `gorm:"column:id"`
	Status    lifecycle.Status `gorm:"column:status"`
	StartDate time.Time        `gorm:"column:start_date"`
	EndDate   time.Time        `gorm:"column:end_date"`
}

// SyncStatuses menulis ulang status tersimpan yang sudah basi.
// Hanya baris non-terminal yang discan; update pakai guard status lama.
func SyncStatuses(ctx context.Context, db *gorm.DB, table string, now time.Time) (int64, error) {
	var rows []statusRow
	if err := db.WithContext(ctx).Table(table).
		Select("id, status, start_date, end_date").
		Where("status NOT IN ?", []lifecycle.Status{lifecycle.StatusCancelled, lifecycle.StatusCompleted}).
		Find(&rows).Error; err != nil {
		return 0, fmt.Errorf("scan %s: %w", table, err)
	}

	var updated int64
	for _, r := range rows {
		next, err := lifecycle.Resolve(r.Status, r.StartDate, r.EndDate, now)
		if err != nil || next == r.Status {
			continue
		}
		res := db.WithContext(ctx).Table(table).
			Where("id = ? AND status = ?", r.ID, r.Status).
			Updates(map[string]any{"status": next, "updated_at": now})
		if res.Error != nil {
			return updated, fmt.Errorf("update %s %s: %w", table, r.ID, res.Error)
		}
		updated += res.RowsAffected
	}
	return updated, nil
}
