package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"roadwatch.dev/backend/internal/model"
)

// SubmissionState is the state of a Flow.
type SubmissionState int

const (
	SubmissionIdle SubmissionState = iota
	SubmissionSubmitting
	SubmissionSuccess
	SubmissionFailure
)

func (s SubmissionState) String() string {
	switch s {
	case SubmissionIdle:
		return "idle"
	case SubmissionSubmitting:
		return "submitting"
	case SubmissionSuccess:
		return "success"
	case SubmissionFailure:
		return "failure"
	}
	return fmt.Sprintf("SubmissionState(%d)", int(s))
}

var ErrSubmissionInFlight = errors.New("client: a submission is already in flight")

type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
)

// Notice is the user-facing outcome of the last submission.
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string
}

// Submitter sends a report payload to the server.
type Submitter interface {
	CreateReport(ctx context.Context, payload *ReportPayload) (*model.Report, error)
}

// Form holds the editable report fields.
type Form struct {
	UserName    string
	Title       string
	Type        string
	Description string
	Location    string
}

// Flow submits one report form with its photo. At most one submission is in
// flight; the form is cleared on success and kept on failure.
type Flow struct {
	mu        sync.Mutex
	api       Submitter
	photo     Photo
	form      Form
	state     SubmissionState
	inFlight  bool
	notice    *Notice
	observers []func(SubmissionState)
}

func NewFlow(api Submitter, photo Photo) *Flow {
	return &Flow{
		api:   api,
		photo: photo,
		state: SubmissionIdle,
	}
}

// OnChange registers f to be called on every state transition.
func (f *Flow) OnChange(fn func(SubmissionState)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.observers = append(f.observers, fn)
}

func (f *Flow) edit(apply func(*Form)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	apply(&f.form)
}

func (f *Flow) SetUserName(v string)    { f.edit(func(fm *Form) { fm.UserName = v }) }
func (f *Flow) SetTitle(v string)       { f.edit(func(fm *Form) { fm.Title = v }) }
func (f *Flow) SetType(v string)        { f.edit(func(fm *Form) { fm.Type = v }) }
func (f *Flow) SetDescription(v string) { f.edit(func(fm *Form) { fm.Description = v }) }
func (f *Flow) SetLocation(v string)    { f.edit(func(fm *Form) { fm.Location = v }) }

func (f *Flow) Form() Form {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.form
}

func (f *Flow) State() SubmissionState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// CanSubmit reports whether the submit trigger is enabled.
func (f *Flow) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.inFlight
}

// Notice returns the outcome of the last finished submission, or nil.
func (f *Flow) Notice() *Notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.notice == nil {
		return nil
	}
	n := *f.notice
	return &n
}

// finish records the outcome of the in-flight submission and releases the
// trigger. The flow returns to idle unless a new submission started while the
// outcome observers ran.
func (f *Flow) finish(outcome SubmissionState, apply func()) {
	f.mu.Lock()
	f.state = outcome
	f.inFlight = false
	apply()
	observers := append([]func(SubmissionState){}, f.observers...)
	f.mu.Unlock()

	notify(observers, outcome)

	f.mu.Lock()
	if f.inFlight || f.state != outcome {
		f.mu.Unlock()
		return
	}
	f.state = SubmissionIdle
	observers = append([]func(SubmissionState){}, f.observers...)
	f.mu.Unlock()

	notify(observers, SubmissionIdle)
}

func notify(observers []func(SubmissionState), state SubmissionState) {
	for _, fn := range observers {
		fn(state)
	}
}

// Submit posts the form and the photo. It returns the stored report on success.
func (f *Flow) Submit(ctx context.Context) (*model.Report, error) {
	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	payload := &ReportPayload{
		UserName:    f.form.UserName,
		Title:       f.form.Title,
		Type:        f.form.Type,
		Description: f.form.Description,
		Location:    f.form.Location,
		Image:       f.photo.Base64,
	}
	f.inFlight = true
	f.state = SubmissionSubmitting
	observers := append([]func(SubmissionState){}, f.observers...)
	f.mu.Unlock()

	notify(observers, SubmissionSubmitting)

	report, err := f.api.CreateReport(ctx, payload)
	if err != nil {
		log.Warn().
			Str("component", "client.flow").
			Str("evt.name", "client.submit.failed").
			Err(err).
			Msg("report submission failed")

		f.finish(SubmissionFailure, func() {
			f.notice = &Notice{Kind: NoticeError, Title: "Errore", Message: failureMessage(err)}
		})
		return nil, err
	}

	f.finish(SubmissionSuccess, func() {
		f.notice = &Notice{Kind: NoticeSuccess, Title: "Successo", Message: "Report inviato con successo!"}
		f.form = Form{}
	})
	return report, nil
}

func failureMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr.Err.Error()
	}
	return "Errore nell'invio del report."
}
