package httpserver

import (
	"errors"
	"strconv"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"roadwatch.dev/backend/internal/model"
	"roadwatch.dev/backend/internal/pkg/rwerr"
	"roadwatch.dev/backend/internal/util/rekuest"
)

func logger(ctx *fiber.Ctx) *zerolog.Logger {
	l := log.Ctx(ctx.UserContext())
	if l.GetLevel() == zerolog.Disabled {
		return &log.Logger
	}
	return l
}

func handleCustomError(ctx *fiber.Ctx, e *rwerr.RoadwatchError) error {
	evt := logger(ctx).Warn()
	if e.StatusCode >= fiber.StatusInternalServerError {
		evt = logger(ctx).Error()
	}
	evt.
		Str("component", "httpserver").
		Str("evt.name", "http.error").
		Str("code", e.ErrorCode).
		Err(e.Cause).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Msg(e.Message)

	return ctx.Status(e.StatusCode).JSON(e.Body())
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	// Use custom error handler to return JSON error responses
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		return handleCustomError(ctx, rwerr.NewInvalidViolations(rekuest.Translate(ctx, ve.Violations())).
			Msg("%s", ve.Error()))
	}

	var re *rwerr.RoadwatchError
	if errors.As(err, &re) {
		if re.StatusCode >= fiber.StatusInternalServerError {
			capture(ctx, re.StatusCode, err)
		}
		return handleCustomError(ctx, re)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return handleCustomError(ctx, fromFiberError(fe))
	}

	// Default 500 statuscode
	fallback := *rwerr.ErrInternalError
	fallback.Cause = err

	logger(ctx).Error().
		Stack().
		Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status", fallback.StatusCode).
		Msg("Internal Server Error")

	capture(ctx, fallback.StatusCode, err)

	return ctx.Status(fallback.StatusCode).JSON(fallback.Body())
}

// fromFiberError keeps the status and message fiber produced. Unmatched routes
// map onto rwerr.ErrNotFound.
func fromFiberError(fe *fiber.Error) *rwerr.RoadwatchError {
	if fe.Code == fiber.StatusNotFound {
		return rwerr.ErrNotFound.Msg("%s", fe.Message)
	}

	e := *rwerr.ErrInternalError
	e.StatusCode = fe.Code
	e.ErrorCode = rwerr.CodeUnknown
	e.Message = fe.Message
	e.Cause = fe
	return &e
}

func capture(ctx *fiber.Ctx, status int, err error) {
	hub := fibersentry.GetHubFromContext(ctx)
	if hub == nil {
		return
	}
	hub.Scope().SetTag("status", strconv.Itoa(status))
	hub.CaptureException(err)
}
