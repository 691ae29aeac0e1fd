package testentry

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"roadwatch.dev/backend/internal/app"
	"roadwatch.dev/backend/internal/app/appcontext"
)

// Populate boots the whole application graph against an in-memory report
// store and fills targets from it. The app is stopped when t finishes.
func Populate(t testing.TB, targets ...any) {
	t.Setenv("ROADWATCH_DB_CONNECTION", "memory://")
	t.Setenv("ROADWATCH_LOG_FILE", "")
	t.Setenv("ROADWATCH_REDIS_URL", "")
	t.Setenv("ROADWATCH_NATS_URL", "")
	t.Setenv("ROADWATCH_SENTRY_DSN", "")

	opts := app.Options(appcontext.Declare(appcontext.EnvServer),
		fx.Populate(targets...),
		// for testing, logger is too annoying. therefore, we use a NopLogger here
		fx.NopLogger,
	)
	log.Logger = log.Logger.Output(zerolog.NewTestWriter(t))

	fxapp := fxtest.New(t, opts...)
	fxapp.RequireStart()
	t.Cleanup(fxapp.RequireStop)
}
