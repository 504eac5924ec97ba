package logger

import (
	"io"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"galeri_backend/internals/helpers/dbtime"
)

const accessFormat = "[${time}] ${ip} - ${locals:reqid} ${method} ${path} - ${status} - ${latency} user=${locals:user_id}\n"

// LoggerMiddleware: access log ke stdout, zona waktu ikut APP_TIMEZONE.
func LoggerMiddleware() fiber.Handler {
	return New(os.Stdout)
}

// New: probe /health dari load balancer tidak dicatat.
func New(out io.Writer) fiber.Handler {
	return logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/health")
		},
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   dbtime.Location().String(),
		Format:     accessFormat,
		Output:     out,
	})
}
