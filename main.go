package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/robfig/cron/v3"

	"galeri_backend/internals/configs"
	database "galeri_backend/internals/databases"
	eventScheduler "galeri_backend/internals/features/events/scheduler"
	authScheduler "galeri_backend/internals/features/users/auth/scheduler"
	helperOSS "galeri_backend/internals/helpers/oss"
	middlewares "galeri_backend/internals/middlewares"
	routes "galeri_backend/internals/route"
	"galeri_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            middlewares.ErrorHandler,
		BodyLimit:               int(helperOSS.MaxUploadSize) + 1<<20,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          configs.SplitList(configs.GetEnv("TRUSTED_PROXIES", "0.0.0.0/0")),
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()
	if err := database.AutoMigrate(database.DB); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	seeds.RunAllSeeds(database.DB)

	// 🗂️ OSS: kalau env belum lengkap, server tetap jalan tanpa upload
	var blob helperOSS.BlobService
	ossSvc, err := helperOSS.NewOSSServiceFromEnv()
	if err != nil {
		log.Printf("[WARN] OSS tidak aktif: %v", err)
	} else {
		blob = ossSvc
	}

	// ⏱ scheduler setelah DB siap
	crons := []*cron.Cron{
		authScheduler.StartBlacklistCleanupScheduler(database.DB),
		eventScheduler.StartStatusSyncScheduler(database.DB),
	}
	if ossSvc != nil {
		crons = append(crons, helperOSS.StartTrashReaperCron(ossSvc))
	}

	// ✅ Routes (termasuk /health)
	routes.SetupRoutes(app, database.DB, blob)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 30 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown: stop cron, tutup server, tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] shutdown...")

	for _, c := range crons {
		if c != nil {
			<-c.Stop().Done()
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("[ERROR] shutdown: %v", err)
	}

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("👋 bye")
}
