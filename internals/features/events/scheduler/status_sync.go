package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"galeri_backend/internals/configs"
	"galeri_backend/internals/features/events/eventbase"
	"galeri_backend/internals/helpers/dbtime"
)

// Tabel acara yang statusnya disinkronkan.
var EventTables = []string{"programs", "party_literasi"}

// StartStatusSyncScheduler menjalankan resolve ulang status tersimpan.
// Default tiap 10 menit; override via EVENT_STATUS_SYNC_SCHEDULE.
func StartStatusSyncScheduler(db *gorm.DB) *cron.Cron {
	spec := configs.GetEnv("EVENT_STATUS_SYNC_SCHEDULE", "*/10 * * * *")

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddFunc(spec, func() { RunStatusSync(db, dbtime.Now()) }); err != nil {
		log.Printf("[STATUS SYNC ERROR] jadwal %q tidak valid: %v", spec, err)
		return nil
	}
	c.Start()
	log.Printf("[INFO] sinkron status acara dijadwalkan (%s)", spec)

	// sekali di awal supaya data lama langsung segar
	go RunStatusSync(db, dbtime.Now())
	return c
}

// RunStatusSync mengembalikan total baris yang berubah.
func RunStatusSync(db *gorm.DB, now time.Time) int64 {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var total int64
	for _, table := range EventTables {
		n, err := eventbase.SyncStatuses(ctx, db, table, now)
		if err != nil {
			log.Printf("[STATUS SYNC ERROR] %s: %v", table, err)
		}
		if n > 0 {
			log.Printf("[STATUS SYNC] %d status %s diperbarui", n, table)
		}
		total += n
	}
	return total
}
