package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"galeri_backend/internals/constants"
	"galeri_backend/internals/features/events/programs/controller"
	authMiddleware "galeri_backend/internals/middlewares/auth"
)

// ProgramRoutes: /api/programs. GET publik (token opsional), tulis editor/admin.
func ProgramRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProgramController(db)

	optional := authMiddleware.OptionalAuthMiddleware(db)
	auth := authMiddleware.AuthMiddleware(db)
	editorOnly := authMiddleware.OnlyRolesSlice(constants.RoleErrorEditor("program"), constants.EditorAndAbove)

	g := api.Group("/programs")
	g.Get("/", optional, ctrl.List)                 // 📄 list (?public=true)
	g.Get("/slug/:slug", optional, ctrl.GetBySlug)  // 🔍 by slug
	g.Get("/:id", optional, ctrl.GetByID)           // 🔍 detail
	g.Post("/", auth, editorOnly, ctrl.Create)      // ➕
	g.Put("/:id", auth, editorOnly, ctrl.Update)    // 🔄 termasuk cancel manual
	g.Delete("/:id", auth, editorOnly, ctrl.Delete) // 🗑️ hard delete
}
