package middlewares

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"galeri_backend/internals/configs"
	helper "galeri_backend/internals/helpers"
	"galeri_backend/internals/middlewares/logger"
)

func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	// default 15 detik, upload media ikut lewat sini
	app.Use(RequestContext(time.Duration(configs.GetEnvInt("REQUEST_TIMEOUT_SECONDS", 15)) * time.Second))
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}

// ErrorHandler: *fiber.Error → envelope standar; error lain → 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
}
