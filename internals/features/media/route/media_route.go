package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"galeri_backend/internals/constants"
	"galeri_backend/internals/features/media/controller"
	helperOSS "galeri_backend/internals/helpers/oss"
	"galeri_backend/internals/middlewares"
	authMiddleware "galeri_backend/internals/middlewares/auth"
)

// MediaRoutes: /api/media. Baca publik, tulis editor/admin.
func MediaRoutes(api fiber.Router, db *gorm.DB, blob helperOSS.BlobService) {
	ctrl := controller.NewMediaController(db, blob)

	auth := authMiddleware.AuthMiddleware(db)
	editorOnly := authMiddleware.OnlyRolesSlice(constants.RoleErrorEditor("media"), constants.EditorAndAbove)

	g := api.Group("/media")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", auth, editorOnly, middlewares.UploadRateLimiter(), ctrl.Upload)
	g.Put("/:id", auth, editorOnly, ctrl.Update)
	g.Delete("/:id", auth, editorOnly, ctrl.Delete)
}
