package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"galeri_backend/internals/constants"
	"galeri_backend/internals/features/books/controller"
	authMiddleware "galeri_backend/internals/middlewares/auth"
)

func BookRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBookController(db)

	auth := authMiddleware.AuthMiddleware(db)
	editorOnly := authMiddleware.OnlyRolesSlice(constants.RoleErrorEditor("buku"), constants.EditorAndAbove)

	g := api.Group("/books")
	g.Get("/", ctrl.List)                           // 📚 ?q=&genre=&author=
	g.Get("/slug/:slug", ctrl.GetBySlug)            // 🔍
	g.Get("/isbn/:isbn", ctrl.GetByISBN)            // 🔍
	g.Get("/:id", ctrl.GetByID)                     // 🔍
	g.Post("/", auth, editorOnly, ctrl.Create)      // ➕
	g.Put("/:id", auth, editorOnly, ctrl.Update)    // 🔄
	g.Delete("/:id", auth, editorOnly, ctrl.Delete) // 🗑️
}
