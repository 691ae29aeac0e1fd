package server

import (
	"context"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"roadwatch.dev/backend/internal/app"
	"roadwatch.dev/backend/internal/app/appconfig"
	"roadwatch.dev/backend/internal/app/appcontext"
)

// Run starts the HTTP server and blocks until the process is signalled.
func Run() {
	app.New(appcontext.Declare(appcontext.EnvServer), fx.Invoke(run)).Run()
}

func run(serverapp *fiber.App, conf *appconfig.Config, lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", conf.ListenAddress())
			if err != nil {
				return err
			}

			log.Info().
				Str("evt.name", "http.listen").
				Str("address", ln.Addr().String()).
				Msg("server is listening")

			go func() {
				if err := serverapp.Listener(ln); err != nil {
					log.Error().Err(err).Msg("server terminated unexpectedly")
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return serverapp.ShutdownWithTimeout(conf.HTTPServerShutdownTimeout)
		},
	})
}
