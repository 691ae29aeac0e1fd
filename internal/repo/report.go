package repo

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"roadwatch.dev/backend/internal/model"
)

// ReportStore is the persistence gateway for reports. Implementations are
// safe for concurrent use and assign ID and timestamps on Create.
type ReportStore interface {
	// Create persists a new report and returns the stored entity.
	Create(ctx context.Context, report *model.Report) (*model.Report, error)

	// ListAll returns every stored report in the store's natural order.
	// The result is never nil.
	ListAll(ctx context.Context) ([]*model.Report, error)

	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error
}

// newULID returns a fresh lexicographically sortable report id.
func newULID() string {
	return ulid.Make().String()
}

// now is the creation timestamp source shared by the adapters. Stores keep
// millisecond precision, so the value is truncated to keep returned and listed
// entities identical.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
