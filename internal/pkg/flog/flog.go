// Package flog ties zerolog loggers to fiber requests.
package flog

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type idKey struct{}

// FromFiberCtx gets the logger carried by the request's user context.
func FromFiberCtx(c *fiber.Ctx) *zerolog.Logger {
	return log.Ctx(c.UserContext())
}

// InjectLogger places a per-request copy of l into the request's user context
// and enriches it with request id, client ip, method and path.
// The request id is echoed back through headerName when it is not empty.
func InjectLogger(l zerolog.Logger, headerName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := IDFromCtx(c.UserContext())
		if !ok {
			id = xid.New()
		}
		if headerName != "" {
			c.Set(headerName, id.String())
		}

		// copy the logger so UpdateContext does not race with other requests
		rl := l.With().
			Str("request_id", id.String()).
			Str("ip", c.IP()).
			Str("method", c.Method()).
			Str("url", c.Path()).
			Str("user_agent", c.Get(fiber.HeaderUserAgent)).
			Logger()

		ctx := context.WithValue(c.UserContext(), idKey{}, id)
		c.SetUserContext(rl.WithContext(ctx))
		return c.Next()
	}
}

// IDFromCtx returns the request id stored by InjectLogger, if any.
func IDFromCtx(ctx context.Context) (id xid.ID, ok bool) {
	id, ok = ctx.Value(idKey{}).(xid.ID)
	return
}

// AccessHandler calls f after each request with the time spent serving it.
// Errors are rendered through the app's ErrorHandler first so f sees the final status.
func AccessHandler(f func(c *fiber.Ctx, duration time.Duration)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		f(c, time.Since(start))
		return nil
	}
}

func DebugFrom(c *fiber.Ctx, evt string) *zerolog.Event {
	return FromFiberCtx(c).Debug().Str("evt.name", evt)
}

func InfoFrom(c *fiber.Ctx, evt string) *zerolog.Event {
	return FromFiberCtx(c).Info().Str("evt.name", evt)
}

func WarnFrom(c *fiber.Ctx, evt string) *zerolog.Event {
	return FromFiberCtx(c).Warn().Str("evt.name", evt)
}

func ErrorFrom(c *fiber.Ctx, evt string) *zerolog.Event {
	return FromFiberCtx(c).Error().Str("evt.name", evt)
}
