package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"roadwatch.dev/backend/internal/pkg/rwerr"
)

// RequireContentType rejects requests whose body is not one of mimes.
func RequireContentType(mimes ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ct := strings.ToLower(ctx.Get(fiber.HeaderContentType))
		for _, mime := range mimes {
			if strings.HasPrefix(ct, mime) {
				return ctx.Next()
			}
		}

		return rwerr.ErrInvalidReq.Msg("invalid or missing Content-Type header, accepts: %s", strings.Join(mimes, ", "))
	}
}

var RequireJSON = RequireContentType(fiber.MIMEApplicationJSON)
