package repo

import (
	"context"
	"sync"

	"github.com/samber/lo"

	"roadwatch.dev/backend/internal/model"
)

// MemoryReport keeps reports in process memory. It backs memory:// connection
// strings and tests.
type MemoryReport struct {
	mu      sync.RWMutex
	reports []*model.Report
}

var _ ReportStore = (*MemoryReport)(nil)

func NewMemoryReport() *MemoryReport {
	return &MemoryReport{}
}

func (r *MemoryReport) Create(ctx context.Context, report *model.Report) (*model.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stored := cloneReport(report)
	stored.ID = newULID()
	stored.CreatedAt = now()
	stored.UpdatedAt = stored.CreatedAt

	r.mu.Lock()
	r.reports = append(r.reports, stored)
	r.mu.Unlock()

	return cloneReport(stored), nil
}

func (r *MemoryReport) ListAll(ctx context.Context) ([]*model.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Map(r.reports, func(report *model.Report, _ int) *model.Report {
		return cloneReport(report)
	}), nil
}

func (r *MemoryReport) Ping(ctx context.Context) error {
	return ctx.Err()
}

func cloneReport(report *model.Report) *model.Report {
	c := *report
	if report.Image != nil {
		img := *report.Image
		img.Data = append([]byte(nil), report.Image.Data...)
		c.Image = &img
	}
	return &c
}
