package cachectrl

import (
	"github.com/gofiber/fiber/v2"
)

// OptOut marks the response as live data that intermediaries must not cache.
func OptOut(ctx *fiber.Ctx) {
	ctx.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
	ctx.Set(fiber.HeaderPragma, "no-cache")
	ctx.Set(fiber.HeaderExpires, "0")
}

// NoStore is OptOut as a middleware.
func NoStore(ctx *fiber.Ctx) error {
	OptOut(ctx)
	return ctx.Next()
}
