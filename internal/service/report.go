package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"roadwatch.dev/backend/internal/model"
	"roadwatch.dev/backend/internal/model/types"
	"roadwatch.dev/backend/internal/pkg/observability"
	"roadwatch.dev/backend/internal/pkg/rwerr"
	"roadwatch.dev/backend/internal/repo"
)

type Report struct {
	Store  repo.ReportStore
	Events ReportEvents
}

func NewReport(store repo.ReportStore, events ReportEvents) *Report {
	return &Report{
		Store:  store,
		Events: events,
	}
}

// CreateReport validates req into a report entity and persists it.
// A *model.ValidationError is returned when required fields are missing;
// store failures are returned as rwerr.ErrPersistence carrying the cause.
func (s *Report) CreateReport(ctx context.Context, req *types.CreateReportRequest) (*model.Report, error) {
	report, err := model.NewReport(req.ReportInput())
	if err != nil {
		return nil, err
	}

	start := time.Now()
	stored, err := s.Store.Create(ctx, report)
	observability.ReportStoreDuration.WithLabelValues("create").Observe(time.Since(start).Seconds())
	if err != nil {
		observability.ReportStoreErrors.WithLabelValues("create").Inc()
		return nil, rwerr.ErrPersistence.Msg("error saving report").WithCause(err)
	}

	observability.ReportsCreated.WithLabelValues(stored.Type).Inc()

	if err := s.Events.ReportCreated(ctx, stored); err != nil {
		log.Ctx(ctx).Warn().
			Err(err).
			Str("evt.name", "report.create.event.failed").
			Str("report_id", stored.ID).
			Msg("failed to publish report.created event")
	}

	return stored, nil
}

// ListReports returns every stored report.
func (s *Report) ListReports(ctx context.Context) ([]*model.Report, error) {
	start := time.Now()
	reports, err := s.Store.ListAll(ctx)
	observability.ReportStoreDuration.WithLabelValues("list").Observe(time.Since(start).Seconds())
	if err != nil {
		observability.ReportStoreErrors.WithLabelValues("list").Inc()
		return nil, rwerr.ErrPersistence.Msg("failed to fetch reports").WithCause(err)
	}

	return reports, nil
}
