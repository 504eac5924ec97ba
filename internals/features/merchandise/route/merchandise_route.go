package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"galeri_backend/internals/constants"
	"galeri_backend/internals/features/merchandise/controller"
	authMiddleware "galeri_backend/internals/middlewares/auth"
)

// MerchandiseRoutes: katalog publik, tulis editor/admin.
func MerchandiseRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMerchandiseController(db)

	auth := authMiddleware.AuthMiddleware(db)
	editorOnly := authMiddleware.OnlyRolesSlice(constants.RoleErrorEditor("merchandise"), constants.EditorAndAbove)

	g := api.Group("/merchandise")
	g.Get("/", ctrl.List) // ?available=true
	g.Get("/slug/:slug", ctrl.GetBySlug)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", auth, editorOnly, ctrl.Create)
	g.Put("/:id", auth, editorOnly, ctrl.Update)
	g.Delete("/:id", auth, editorOnly, ctrl.Delete)
}
