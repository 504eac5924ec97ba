package middlewares

import (
	"log"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware: panic → 500 lewat ErrorHandler, stack dicatat bersama request id.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace:  true,
		StackTraceHandler: logPanic,
	})
}

func logPanic(c *fiber.Ctx, e interface{}) {
	reqID, _ := c.Locals(LocRequestID).(string)
	log.Printf("[PANIC] %s %s %s: %v\n%s", reqID, c.Method(), c.OriginalURL(), e, debug.Stack())
}
