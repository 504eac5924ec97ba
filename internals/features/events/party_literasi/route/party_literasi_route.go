package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"galeri_backend/internals/constants"
	"galeri_backend/internals/features/events/party_literasi/controller"
	authMiddleware "galeri_backend/internals/middlewares/auth"
)

func PartyLiterasiRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPartyLiterasiController(db)

	optional := authMiddleware.OptionalAuthMiddleware(db)
	auth := authMiddleware.AuthMiddleware(db)
	editorOnly := authMiddleware.OnlyRolesSlice(constants.RoleErrorEditor("party literasi"), constants.EditorAndAbove)

	g := api.Group("/party-literasi")
	g.Get("/", optional, ctrl.List)
	g.Get("/slug/:slug", optional, ctrl.GetBySlug)
	g.Get("/:id", optional, ctrl.GetByID)
	g.Post("/", auth, editorOnly, ctrl.Create)
	g.Put("/:id", auth, editorOnly, ctrl.Update)
	g.Delete("/:id", auth, editorOnly, ctrl.Delete)
}
