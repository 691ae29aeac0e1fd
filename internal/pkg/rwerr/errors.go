package rwerr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodePersistence    = "PERSISTENCE_ERROR"
	CodeInternalError  = "INTERNAL_ERROR"
	CodeUnknown        = "UNKNOWN_ERROR"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrPersistence is returned when the report store is unreachable or rejects an operation.
	// The message is generic; the underlying cause is carried in Cause and only logged.
	ErrPersistence = New(fiber.StatusInternalServerError, CodePersistence, "internal server error occurred")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

type Extras map[string]any

type RoadwatchError struct {
	StatusCode int    `example:"400"`
	ErrorCode  string `example:"INVALID_REQUEST"`
	Message    string `example:"invalid request: some or all request parameters are invalid"`
	Extras     *Extras
	Cause      error
}

func New(statusCode int, errorCode string, message string) *RoadwatchError {
	return &RoadwatchError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e RoadwatchError) Msg(format string, parts ...any) *RoadwatchError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e RoadwatchError) WithExtras(extras Extras) *RoadwatchError {
	e.Extras = &extras
	return &e
}

// WithCause attaches the internal error that triggered e. The cause is never rendered to clients.
func (e RoadwatchError) WithCause(cause error) *RoadwatchError {
	e.Cause = cause
	return &e
}

func NewInvalidViolations(violations any) *RoadwatchError {
	// copy ErrInvalidReq as e
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

// Body is the JSON body rendered for e: {"error": message} plus any extras.
func (e *RoadwatchError) Body() fiber.Map {
	body := fiber.Map{
		"error": e.Message,
	}
	if e.Extras != nil {
		for k, v := range *e.Extras {
			body[k] = v
		}
	}
	return body
}

func (e *RoadwatchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.ErrorCode, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}

func (e *RoadwatchError) Unwrap() error {
	return e.Cause
}
