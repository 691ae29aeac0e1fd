package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"roadwatch.dev/backend/cmd/app/server"
	"roadwatch.dev/backend/cmd/app/submit"
	"roadwatch.dev/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        bininfo.Name,
		Description: "Roadwatch collects photo reports of road issues. Built with Go, fiber and go.uber.org/fx. Stores reports in MongoDB or PostgreSQL and publishes report events to NATS.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			submit.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
