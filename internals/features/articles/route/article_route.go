package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"galeri_backend/internals/constants"
	"galeri_backend/internals/features/articles/controller"
	authMiddleware "galeri_backend/internals/middlewares/auth"
)

// ArticleRoutes: /api/articles
func ArticleRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewArticleController(db)

	optional := authMiddleware.OptionalAuthMiddleware(db)
	auth := authMiddleware.AuthMiddleware(db)
	editorOnly := authMiddleware.OnlyRolesSlice(constants.RoleErrorEditor("artikel"), constants.EditorAndAbove)

	g := api.Group("/articles")
	g.Get("/", optional, ctrl.List)                 // 📄 list
	g.Get("/slug/:slug", optional, ctrl.GetBySlug)  // 🔍 by slug
	g.Get("/:id", optional, ctrl.GetByID)           // 🔍 detail
	g.Post("/", auth, editorOnly, ctrl.Create)      // ➕
	g.Put("/:id", auth, editorOnly, ctrl.Update)    // 🔄
	g.Delete("/:id", auth, editorOnly, ctrl.Delete) // 🗑️
}
