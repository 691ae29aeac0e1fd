package service

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"

	"roadwatch.dev/backend/internal/constant"
	"roadwatch.dev/backend/internal/model"
)

// ReportEvents announces stored reports to downstream consumers.
type ReportEvents interface {
	ReportCreated(ctx context.Context, report *model.Report) error
}

// ReportCreatedEvent is the payload published on constant.ReportCreatedSubject.
// The image is never part of the event.
type ReportCreatedEvent struct {
	ID        string    `json:"id"`
	UserName  string    `json:"userName"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

type natsReportEvents struct {
	nc *nats.Conn
}

// NewReportEvents publishes through nc, or discards events when nc is nil.
func NewReportEvents(nc *nats.Conn) ReportEvents {
	if nc == nil {
		return nopReportEvents{}
	}
	return &natsReportEvents{nc: nc}
}

func (e *natsReportEvents) ReportCreated(ctx context.Context, report *model.Report) error {
	payload, err := json.Marshal(ReportCreatedEvent{
		ID:        report.ID,
		UserName:  report.UserName,
		Type:      report.Type,
		Title:     report.Title,
		CreatedAt: report.CreatedAt,
	})
	if err != nil {
		return errors.Wrap(err, "events: marshal report.created")
	}

	msg := nats.NewMsg(constant.ReportCreatedSubject)
	msg.Data = payload
	msg.Header.Set(nats.MsgIdHdr, report.ID)

	return errors.Wrap(e.nc.PublishMsg(msg), "events: publish report.created")
}

type nopReportEvents struct{}

func (nopReportEvents) ReportCreated(context.Context, *model.Report) error { return nil }
