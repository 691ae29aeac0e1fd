package repo

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadwatch.dev/backend/internal/model"
)

func newReport(t *testing.T, userName, title string) *model.Report {
	t.Helper()
	report, err := model.NewReport(model.ReportInput{
		UserName:    userName,
		Type:        "Potholes",
		Title:       title,
		Description: "On Main St",
	})
	require.NoError(t, err)
	return report
}

func TestMemoryReportRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryReport()

	created, err := store.Create(ctx, newReport(t, "Mark", "Big hole"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	reports, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, created, reports[0])
}

func TestMemoryReportListIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryReport()

	empty, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for i := 0; i < 3; i++ {
		_, err := store.Create(ctx, newReport(t, "Mark", fmt.Sprintf("hole %d", i)))
		require.NoError(t, err)
	}

	first, err := store.ListAll(ctx)
	require.NoError(t, err)
	second, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMemoryReportReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryReport()

	created, err := store.Create(ctx, newReport(t, "Mark", "Big hole"))
	require.NoError(t, err)
	created.Title = "mutated"

	reports, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Big hole", reports[0].Title)
}

func TestMemoryReportConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryReport()

	const n = 32
	var wg sync.WaitGroup
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			created, err := store.Create(ctx, newReport(t, fmt.Sprintf("user-%d", i), "Big hole"))
			assert.NoError(t, err)
			ids[i] = created.ID
		}(i)
	}
	wg.Wait()

	reports, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, reports, n)

	seen := map[string]struct{}{}
	for _, r := range reports {
		seen[r.ID] = struct{}{}
	}
	assert.Len(t, seen, n)
	for _, id := range ids {
		assert.Contains(t, seen, id)
	}
}

func TestMemoryReportHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewMemoryReport()
	_, err := store.Create(ctx, newReport(t, "Mark", "Big hole"))
	assert.ErrorIs(t, err, context.Canceled)

	reports, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, reports)
}
