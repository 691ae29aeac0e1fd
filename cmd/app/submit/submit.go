package submit

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"roadwatch.dev/backend/internal/client"
)

type Options struct {
	Server      string
	PhotoPath   string
	Title       string
	Type        string
	Description string
	Location    string
	UserName    string
	Timeout     time.Duration
	Out         io.Writer
}

// Run walks the capture screens with the photo at opts.PhotoPath and submits the report.
func Run(ctx context.Context, opts Options) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	screen := client.NewScreen()
	if err := screen.OpenCamera(); err != nil {
		return err
	}
	photo, err := client.CapturePhoto(opts.PhotoPath)
	if err != nil {
		return err
	}
	if err := screen.Capture(photo); err != nil {
		return err
	}
	if err := screen.Confirm(); err != nil {
		return err
	}
	defer func() { _ = screen.Close() }()

	held, _ := screen.Photo()
	flow := client.NewFlow(client.NewAPI(opts.Server, opts.Timeout), held)
	flow.OnChange(func(s client.SubmissionState) {
		log.Debug().
			Str("evt.name", "client.submit.state").
			Stringer("state", s).
			Msg("submission state changed")
	})

	flow.SetUserName(opts.UserName)
	flow.SetTitle(opts.Title)
	flow.SetType(opts.Type)
	flow.SetDescription(opts.Description)
	flow.SetLocation(opts.Location)

	report, err := flow.Submit(ctx)
	if notice := flow.Notice(); notice != nil {
		fmt.Fprintf(opts.Out, "%s: %s\n", notice.Title, notice.Message)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(opts.Out, "report %s stored at %s\n", report.ID, report.CreatedAt.Format(time.RFC3339))
	return nil
}
