package httpserver

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"roadwatch.dev/backend/internal/pkg/rwerr"
)

func TestFromFiberErrorNotFound(t *testing.T) {
	e := fromFiberError(fiber.NewError(fiber.StatusNotFound, "Cannot GET /api/v1/nope"))

	assert.Equal(t, fiber.StatusNotFound, e.StatusCode)
	assert.Equal(t, rwerr.CodeNotFound, e.ErrorCode)
	assert.Equal(t, "Cannot GET /api/v1/nope", e.Message)
}

func TestFromFiberErrorKeepsStatus(t *testing.T) {
	e := fromFiberError(fiber.ErrMethodNotAllowed)

	assert.Equal(t, fiber.StatusMethodNotAllowed, e.StatusCode)
	assert.Equal(t, rwerr.CodeUnknown, e.ErrorCode)
	assert.Equal(t, fiber.ErrMethodNotAllowed.Message, e.Message)
}

func TestErrorHandlerUnmatchedRoute(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/known", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/unknown", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Cannot GET /unknown", gjson.GetBytes(body, "error").String())
}
