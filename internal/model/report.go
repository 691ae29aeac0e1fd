package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"roadwatch.dev/backend/internal/util"
)

// Report is a user-submitted issue as persisted by the report store.
type Report struct {
	ID          string       `json:"id"`
	UserName    string       `json:"userName"`
	Type        string       `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Location    string       `json:"location,omitempty"`
	Image       *ReportImage `json:"image,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// ReportImage is the binary photo attached to a report.
// Reports created through the HTTP API never carry one.
type ReportImage struct {
	Data        []byte `json:"data"`
	ContentType string `json:"contentType"`
}

// ReportInput is the untrusted shape a Report is constructed from.
type ReportInput struct {
	UserName    string `json:"userName" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// ValidationError reports required fields that are missing or blank.
type ValidationError struct {
	Fields []string
	errs   validator.ValidationErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid report: missing required fields: %s", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return e.errs
}

// Violations returns the underlying per-field validation errors.
func (e *ValidationError) Violations() validator.ValidationErrors {
	return e.errs
}

// NewReport trims every field of in and checks the required ones.
// The returned Report has neither ID nor timestamps: those are assigned by the store.
func NewReport(in ReportInput) (*Report, error) {
	in = ReportInput{
		UserName:    strings.TrimSpace(in.UserName),
		Type:        strings.TrimSpace(in.Type),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Location:    strings.TrimSpace(in.Location),
	}

	if err := util.Validate.Struct(in); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, err
		}
		return nil, &ValidationError{
			Fields: lo.Map(ve, func(fe validator.FieldError, _ int) string { return fe.Field() }),
			errs:   ve,
		}
	}

	return &Report{
		UserName:    in.UserName,
		Type:        in.Type,
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
	}, nil
}
