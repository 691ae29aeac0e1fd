package client

import (
	"encoding/base64"
	"fmt"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// Stage is the screen currently shown by the capture UI.
type Stage int

const (
	StageIdle Stage = iota
	StageCamera
	StagePreview
	StageReportForm
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageCamera:
		return "camera"
	case StagePreview:
		return "preview"
	case StageReportForm:
		return "report_form"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

var ErrInvalidTransition = errors.New("client: invalid screen transition")

// Photo is a captured picture. Base64 is what gets uploaded.
type Photo struct {
	URI    string
	Base64 string
}

// CapturePhoto reads the picture at path and encodes it for upload.
func CapturePhoto(path string) (Photo, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Photo{}, errors.Wrap(err, "client: read photo")
	}
	if len(b) == 0 {
		return Photo{}, errors.Errorf("client: photo %s is empty", path)
	}
	return Photo{
		URI:    path,
		Base64: base64.StdEncoding.EncodeToString(b),
	}, nil
}

// Screen drives the idle → camera → preview → report form stages.
// A photo is held only while in Preview or ReportForm.
type Screen struct {
	mu    sync.Mutex
	stage Stage
	photo *Photo
}

func NewScreen() *Screen {
	return &Screen{stage: StageIdle}
}

func (s *Screen) Stage() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// Photo returns the held photo, if any.
func (s *Screen) Photo() (Photo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.photo == nil {
		return Photo{}, false
	}
	return *s.photo, true
}

func (s *Screen) transition(from, to Stage, event string, apply func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != from {
		return errors.Wrapf(ErrInvalidTransition, "%s from %s", event, s.stage)
	}
	if apply != nil {
		apply()
	}
	s.stage = to
	return nil
}

func (s *Screen) OpenCamera() error {
	return s.transition(StageIdle, StageCamera, "open camera", nil)
}

func (s *Screen) Capture(photo Photo) error {
	return s.transition(StageCamera, StagePreview, "capture", func() {
		s.photo = &photo
	})
}

func (s *Screen) Retake() error {
	return s.transition(StagePreview, StageCamera, "retake", func() {
		s.photo = nil
	})
}

func (s *Screen) Cancel() error {
	return s.transition(StagePreview, StageIdle, "cancel", func() {
		s.photo = nil
	})
}

func (s *Screen) Confirm() error {
	return s.transition(StagePreview, StageReportForm, "confirm", nil)
}

func (s *Screen) Close() error {
	return s.transition(StageReportForm, StageIdle, "close", func() {
		s.photo = nil
	})
}
