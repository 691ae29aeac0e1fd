package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"roadwatch.dev/backend/internal/app/appconfig"
	"roadwatch.dev/backend/internal/constant"
	"roadwatch.dev/backend/internal/pkg/fiberstore"
)

// ReportRateLimit limits report submissions per client IP. Limiter state is
// shared through Redis when client is not nil, and kept in memory otherwise.
func ReportRateLimit(conf *appconfig.Config, client *redis.Client) fiber.Handler {
	if conf.RateLimitMax <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	var storage fiber.Storage
	if client != nil {
		storage = fiberstore.NewRedis(client, constant.ReportRateLimitRedisHashKey)
	}

	window := conf.RateLimitWindow
	if window <= 0 {
		window = time.Minute
	}

	return limiter.New(limiter.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Method() != fiber.MethodPost
		},
		Max:        conf.RateLimitMax,
		Expiration: window,
		Storage:    storage,
		LimitReached: func(c *fiber.Ctx) error {
			log.Ctx(c.UserContext()).Warn().
				Str("evt.name", "http.ratelimit.reached").
				Msg("report submission rate limit reached")
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "too many reports submitted, please retry later",
			})
		},
	})
}
