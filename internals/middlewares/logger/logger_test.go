package logger

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestAccessLogSkipsHealth(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("reqid", "req-1")
		return c.Next()
	})
	app.Use(New(&buf))
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/api/programs", func(c *fiber.Ctx) error { return c.SendString("[]") })

	for _, path := range []string{"/health", "/api/programs"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
	}

	out := buf.String()
	if strings.Contains(out, "/health") {
		t.Errorf("health probe logged: %q", out)
	}
	if !strings.Contains(out, "req-1 GET /api/programs - 200") {
		t.Errorf("access line missing: %q", out)
	}
}
