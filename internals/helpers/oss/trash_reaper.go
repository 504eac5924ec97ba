package helper

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/robfig/cron/v3"
)

type TrashReaperConfig struct {
	Prefix        string
	RetentionDays int
	CronSchedule  string
	DryRun        bool
}

func TrashReaperConfigFromEnv() TrashReaperConfig {
	cfg := TrashReaperConfig{
		Prefix:        TrashPrefix + "/",
		RetentionDays: envInt("TRASH_RETENTION_DAYS", 30),
		CronSchedule:  getEnv("TRASH_REAPER_SCHEDULE"),
	}
	if cfg.CronSchedule == "" {
		cfg.CronSchedule = "15 2 * * *"
	}
	switch strings.ToLower(getEnv("TRASH_REAPER_DRY_RUN")) {
	case "1", "true", "yes", "on":
		cfg.DryRun = true
	}
	return cfg
}

// StartTrashReaperCron: hapus permanen objek di spam/ yang lebih tua dari retensi.
// Dipanggil dari main.go; return nil kalau schedule invalid.
func StartTrashReaperCron(svc *OSSService) *cron.Cron {
	if svc == nil || svc.Bucket == nil {
		log.Println("[TRASH-REAPER] OSS belum dikonfigurasi, reaper tidak dijalankan")
		return nil
	}
	cfg := TrashReaperConfigFromEnv()

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err := c.AddFunc(cfg.CronSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
		defer cancel()
		retention := time.Duration(cfg.RetentionDays) * 24 * time.Hour
		if err := runOSSReaper(ctx, svc.Bucket, cfg.Prefix, time.Now().Add(-retention), cfg.DryRun); err != nil {
			log.Printf("[TRASH-REAPER] OSS error: %v", err)
		}
	})
	if err != nil {
		log.Printf("[TRASH-REAPER] add cron gagal: %v", err)
		return nil
	}
	log.Printf("[TRASH-REAPER] started schedule=%q prefix=%q retention=%dd dryRun=%v",
		cfg.CronSchedule, cfg.Prefix, cfg.RetentionDays, cfg.DryRun)
	c.Start()
	return c
}

func expiredKeys(objects []oss.ObjectProperties, threshold time.Time) []string {
	var keys []string
	for _, obj := range objects {
		if obj.Key == "" || strings.HasSuffix(obj.Key, "/") {
			continue
		}
		if obj.LastModified.Before(threshold) {
			keys = append(keys, obj.Key)
		}
	}
	return keys
}

func runOSSReaper(ctx context.Context, bucket *oss.Bucket, prefix string, threshold time.Time, dryRun bool) error {
	log.Printf("[OSS-REAPER] scanning prefix=%q threshold=%s dry=%v", prefix, threshold.Format(time.RFC3339), dryRun)

	marker := oss.Marker("")
	var toDelete []string
	total := 0
	for {
		lor, err := bucket.ListObjects(oss.Prefix(prefix), marker, oss.MaxKeys(1000), oss.WithContext(ctx))
		if err != nil {
			return err
		}
		total += len(lor.Objects)
		toDelete = append(toDelete, expiredKeys(lor.Objects, threshold)...)
		if !lor.IsTruncated {
			break
		}
		marker = oss.Marker(lor.NextMarker)
	}

	if len(toDelete) == 0 {
		log.Printf("[OSS-REAPER] nothing to delete; scanned=%d", total)
		return nil
	}
	if dryRun {
		log.Printf("[OSS-REAPER] DRY-RUN would delete %d/%d objects", len(toDelete), total)
		return nil
	}

	deleted := 0
	for i := 0; i < len(toDelete); i += 1000 {
		end := i + 1000
		if end > len(toDelete) {
			end = len(toDelete)
		}
		batch := toDelete[i:end]
		if _, err := bucket.DeleteObjects(batch, oss.DeleteObjectsQuiet(true), oss.WithContext(ctx)); err != nil {
			log.Printf("[OSS-REAPER] delete batch %d-%d gagal: %v", i, end, err)
			continue
		}
		deleted += len(batch)
	}
	log.Printf("[OSS-REAPER] deleted %d objects (scanned=%d)", deleted, total)
	return nil
}
