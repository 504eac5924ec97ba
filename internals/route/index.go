package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	articleRoute "galeri_backend/internals/features/articles/route"
	bookRoute "galeri_backend/internals/features/books/route"
	partyRoute "galeri_backend/internals/features/events/party_literasi/route"
	programRoute "galeri_backend/internals/features/events/programs/route"
	mediaRoute "galeri_backend/internals/features/media/route"
	merchRoute "galeri_backend/internals/features/merchandise/route"
	authRoute "galeri_backend/internals/features/users/auth/route"
	userRoute "galeri_backend/internals/features/users/user/route"
	helperOSS "galeri_backend/internals/helpers/oss"
)

var startTime time.Time

// SetupRoutes: blob boleh nil (OSS tidak dikonfigurasi) → upload media 503.
func SetupRoutes(app *fiber.App, db *gorm.DB, blob helperOSS.BlobService) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	api := app.Group("/api")

	// ===================== AUTH / USER =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(api, db)

	log.Println("[INFO] Setting up UserAdminRoutes...")
	userRoute.UserAdminRoutes(api, db)

	// ===================== KONTEN =====================
	log.Println("[INFO] Setting up ArticleRoutes...")
	articleRoute.ArticleRoutes(api, db)

	log.Println("[INFO] Setting up MediaRoutes...")
	mediaRoute.MediaRoutes(api, db, blob)

	// ===================== ACARA =====================
	log.Println("[INFO] Setting up ProgramRoutes...")
	programRoute.ProgramRoutes(api, db)

	log.Println("[INFO] Setting up PartyLiterasiRoutes...")
	partyRoute.PartyLiterasiRoutes(api, db)

	// ===================== TOKO =====================
	log.Println("[INFO] Setting up MerchandiseRoutes...")
	merchRoute.MerchandiseRoutes(api, db)

	log.Println("[INFO] Setting up BookRoutes...")
	bookRoute.BookRoutes(api, db)

	log.Println("[INFO] Semua route terpasang.")
}
