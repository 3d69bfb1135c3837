package rayid_test

import (
	"net/http/httptest"
	"testing"

	"scene-inspector/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// TestNew_GeneratesID tests that a request without a ray id gets one,
// visible to handlers and mirrored in the response.
func TestNew_GeneratesID(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())

	var seen string
	app.Get("/", func(c *fiber.Ctx) error {
		seen, _ = c.Locals(rayid.LocalsKey).(string)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, resp.Header.Get(rayid.HeaderName))
}

// TestNew_KeepsClientID tests that an id presented by the client is
// reused rather than replaced.
func TestNew_KeepsClientID(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.HeaderName, "trace-123")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "trace-123", resp.Header.Get(rayid.HeaderName))
}
