package seeds

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"galeri_backend/internals/configs"
	"galeri_backend/internals/seeds/books"
	"galeri_backend/internals/seeds/users"
)

// RunAllSeeds jalan kalau RUN_SEEDS=true. File bisa dioverride via SEED_*_FILE.
func RunAllSeeds(db *gorm.DB) {
	if !configs.GetEnvBool("RUN_SEEDS", false) {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	//* User (admin / editor awal)
	if err := users.SeedUsersFromJSON(ctx, db, configs.GetEnv("SEED_USERS_FILE", "internals/seeds/users/data_users.json")); err != nil {
		log.Printf("[ERROR] seed users: %v", err)
	}

	//* Katalog buku
	if err := books.SeedBooksFromJSON(ctx, db, configs.GetEnv("SEED_BOOKS_FILE", "internals/seeds/books/data_books.json")); err != nil {
		log.Printf("[ERROR] seed books: %v", err)
	}
}
