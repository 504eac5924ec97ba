package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"galeri_backend/internals/configs"
	articleModel "galeri_backend/internals/features/articles/model"
	bookModel "galeri_backend/internals/features/books/model"
	partyModel "galeri_backend/internals/features/events/party_literasi/model"
	programModel "galeri_backend/internals/features/events/programs/model"
	mediaModel "galeri_backend/internals/features/media/model"
	merchModel "galeri_backend/internals/features/merchandise/model"
	authModel "galeri_backend/internals/features/users/auth/model"
	userModel "galeri_backend/internals/features/users/user/model"
)

// Models: urutan penting, tabel induk dulu baru tabel relasi.
func Models() []any {
	return []any{
		&userModel.UserModel{},
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklistModel{},
		&mediaModel.MediaModel{},
		&articleModel.ArticleModel{},
		&programModel.ProgramModel{},
		&programModel.ProgramMediaModel{},
		&programModel.ProgramArticleModel{},
		&partyModel.PartyLiterasiModel{},
		&partyModel.PartyLiterasiMediaModel{},
		&merchModel.MerchandiseModel{},
		&bookModel.BookModel{},
	}
}

// AutoMigrate hanya jalan kalau AUTO_MIGRATE=true. Produksi pakai migrasi SQL.
func AutoMigrate(db *gorm.DB) error {
	if !configs.GetEnvBool("AUTO_MIGRATE", false) {
		return nil
	}
	log.Println("[INFO] AUTO_MIGRATE aktif, menjalankan AutoMigrate...")

	// gen_random_uuid() butuh pgcrypto di PG < 13
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto").Error; err != nil {
		return fmt.Errorf("pgcrypto: %w", err)
	}
	for _, m := range Models() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	log.Println("✅ AutoMigrate selesai.")
	return nil
}
