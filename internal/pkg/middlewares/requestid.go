package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"roadwatch.dev/backend/internal/constant"
	"roadwatch.dev/backend/internal/pkg/flog"
)

// RequestID copies the request id injected by Logger into ctx.Locals.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := flog.IDFromCtx(c.UserContext())
		if ok {
			c.Locals(constant.ContextKeyRequestID, id.String())
		}
		return c.Next()
	}
}
