package submit

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"roadwatch.dev/backend/internal/client"
	"roadwatch.dev/backend/internal/constant"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:      "submit",
		Usage:     "submit a photo report to a running server",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "server", Value: "http://localhost:3000", Usage: "base URL of the server", EnvVars: []string{"ROADWATCH_SERVER"}},
			&cli.PathFlag{Name: "photo", Required: true, Usage: "path of the photo to attach"},
			&cli.StringFlag{Name: "title", Required: true, Usage: "report title"},
			&cli.StringFlag{Name: "type", Required: true, Usage: fmt.Sprintf("report category, e.g. %q", constant.CategoryPotholes)},
			&cli.StringFlag{Name: "description", Usage: "optional description"},
			&cli.StringFlag{Name: "location", Usage: "free-text address"},
			&cli.StringFlag{Name: "user", Usage: "user name of the reporter", EnvVars: []string{"USER"}},
			&cli.DurationFlag{Name: "timeout", Value: client.DefaultTimeout, Usage: "request timeout"},
		},
		Action: func(c *cli.Context) error {
			return Run(c.Context, Options{
				Server:      c.String("server"),
				PhotoPath:   c.Path("photo"),
				Title:       c.String("title"),
				Type:        c.String("type"),
				Description: c.String("description"),
				Location:    c.String("location"),
				UserName:    c.String("user"),
				Timeout:     c.Duration("timeout"),
				Out:         c.App.Writer,
			})
		},
	}
}
