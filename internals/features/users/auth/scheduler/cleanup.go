package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"galeri_backend/internals/configs"
	authRepo "galeri_backend/internals/features/users/auth/repository"
)

// StartBlacklistCleanupScheduler menghapus blacklist & refresh token kadaluarsa.
// Default tiap jam; override via TOKEN_CLEANUP_SCHEDULE (format cron 5 field).
func StartBlacklistCleanupScheduler(db *gorm.DB) *cron.Cron {
	spec := configs.GetEnv("TOKEN_CLEANUP_SCHEDULE", "@hourly")

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddFunc(spec, func() { RunTokenCleanup(db) }); err != nil {
		log.Printf("[CLEANUP ERROR] jadwal %q tidak valid: %v", spec, err)
		return nil
	}
	c.Start()
	log.Printf("[INFO] token cleanup dijadwalkan (%s)", spec)
	return c
}

func RunTokenCleanup(db *gorm.DB) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	now := time.Now().UTC()

	if n, err := authRepo.CleanupExpiredBlacklist(ctx, db, now); err != nil {
		log.Printf("[CLEANUP ERROR] token_blacklist: %v", err)
	} else if n > 0 {
		log.Printf("[CLEANUP] %d token blacklist kadaluarsa dihapus", n)
	}

	if n, err := authRepo.CleanupExpiredRefreshTokens(ctx, db, now); err != nil {
		log.Printf("[CLEANUP ERROR] refresh_tokens: %v", err)
	} else if n > 0 {
		log.Printf("[CLEANUP] %d refresh token kadaluarsa dihapus", n)
	}
}
