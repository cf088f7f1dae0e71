package auth_test

import (
	"net/http/httptest"
	"testing"

	"deposit-desk/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newTestApp(apiKey string) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: apiKey}))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		sent       string
		wantStatus int
	}{
		{"Valid key", "secret", "secret", fiber.StatusOK},
		{"Wrong key", "secret", "nope", fiber.StatusUnauthorized},
		{"Missing key", "secret", "", fiber.StatusUnauthorized},
		{"Auth disabled", "", "", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(tt.configured)

			req := httptest.NewRequest("GET", "/ping", nil)
			if tt.sent != "" {
				req.Header.Set(auth.HeaderName, tt.sent)
			}

			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
