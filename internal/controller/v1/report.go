package v1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"roadwatch.dev/backend/internal/app/appconfig"
	"roadwatch.dev/backend/internal/model/types"
	"roadwatch.dev/backend/internal/pkg/cachectrl"
	"roadwatch.dev/backend/internal/pkg/middlewares"
	"roadwatch.dev/backend/internal/server/svr"
	"roadwatch.dev/backend/internal/service"
	"roadwatch.dev/backend/internal/util/rekuest"
)

type Report struct {
	fx.In

	Config        *appconfig.Config
	Redis         *redis.Client
	ReportService *service.Report
}

func RegisterReport(v1 *svr.V1, c Report) {
	v1.Post("/report", middlewares.ReportRateLimit(c.Config, c.Redis), middlewares.RequireJSON, c.CreateReport)
	v1.Get("/report", cachectrl.NoStore, c.GetReports)
}

// @Summary      Submit a Report
// @Description  Submit a photo report. Only userName, type, title and description are stored; location and image are accepted and ignored.
// @Tags         Report
// @Accept       json
// @Produce      json
// @Param        report  body      types.CreateReportRequest  true  "Report request"
// @Success      201     {object}  model.Report               "Report has been successfully stored"
// @Failure      400     {object}  rwerr.RoadwatchError       "Invalid request"
// @Failure      429     {object}  rwerr.RoadwatchError       "Too many reports submitted from this client"
// @Failure      500     {object}  rwerr.RoadwatchError       "Report store failure"
// @Router       /v1/report [POST]
func (c *Report) CreateReport(ctx *fiber.Ctx) error {
	var request types.CreateReportRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	report, err := c.ReportService.CreateReport(ctx.UserContext(), &request)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(report)
}

// @Summary      Get All Reports
// @Tags         Report
// @Produce      json
// @Success      200     {array}   model.Report
// @Failure      500     {object}  rwerr.RoadwatchError  "Report store failure"
// @Router       /v1/report [GET]
func (c *Report) GetReports(ctx *fiber.Ctx) error {
	reports, err := c.ReportService.ListReports(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(reports)
}
