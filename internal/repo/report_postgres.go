package repo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/uptrace/bun"

	"roadwatch.dev/backend/internal/model"
)

type reportRow struct {
	bun.BaseModel `bun:"table:reports,alias:r"`

	ID               string    `bun:"report_id,pk"`
	UserName         string    `bun:"user_name,notnull"`
	Type             string    `bun:"type,notnull"`
	Title            string    `bun:"title,notnull"`
	Description      string    `bun:"description"`
	Location         string    `bun:"location"`
	ImageData        []byte    `bun:"image_data"`
	ImageContentType string    `bun:"image_content_type"`
	CreatedAt        time.Time `bun:"created_at,notnull"`
	UpdatedAt        time.Time `bun:"updated_at,notnull"`
}

// PostgresReport stores reports as rows of the reports table.
type PostgresReport struct {
	db        *bun.DB
	opTimeout time.Duration
}

var _ ReportStore = (*PostgresReport)(nil)

func NewPostgresReport(db *bun.DB, opTimeout time.Duration) *PostgresReport {
	return &PostgresReport{db: db, opTimeout: opTimeout}
}

// EnsureSchema creates the reports table when it does not exist yet.
func (r *PostgresReport) EnsureSchema(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, r.opTimeout)
	defer cancel()

	_, err := r.db.NewCreateTable().
		Model((*reportRow)(nil)).
		IfNotExists().
		Exec(ctx)
	return errors.Wrap(err, "postgres: create reports table")
}

func (r *PostgresReport) Create(ctx context.Context, report *model.Report) (*model.Report, error) {
	ctx, cancel := withTimeout(ctx, r.opTimeout)
	defer cancel()

	row := toReportRow(report)
	row.ID = newULID()
	row.CreatedAt = now()
	row.UpdatedAt = row.CreatedAt

	if _, err := r.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "postgres: insert report")
	}

	return row.toModel(), nil
}

func (r *PostgresReport) ListAll(ctx context.Context) ([]*model.Report, error) {
	ctx, cancel := withTimeout(ctx, r.opTimeout)
	defer cancel()

	var rows []reportRow
	err := r.db.NewSelect().
		Model(&rows).
		Order("created_at ASC", "report_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "postgres: select reports")
	}

	return lo.Map(rows, func(row reportRow, _ int) *model.Report {
		return row.toModel()
	}), nil
}

func (r *PostgresReport) Ping(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, r.opTimeout)
	defer cancel()

	return r.db.PingContext(ctx)
}

func toReportRow(report *model.Report) *reportRow {
	row := &reportRow{
		UserName:    report.UserName,
		Type:        report.Type,
		Title:       report.Title,
		Description: report.Description,
		Location:    report.Location,
	}
	if report.Image != nil {
		row.ImageData = report.Image.Data
		row.ImageContentType = report.Image.ContentType
	}
	return row
}

func (row *reportRow) toModel() *model.Report {
	report := &model.Report{
		ID:          row.ID,
		UserName:    row.UserName,
		Type:        row.Type,
		Title:       row.Title,
		Description: row.Description,
		Location:    row.Location,
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}
	if row.ImageContentType != "" || len(row.ImageData) > 0 {
		report.Image = &model.ReportImage{
			Data:        row.ImageData,
			ContentType: row.ImageContentType,
		}
	}
	return report
}
