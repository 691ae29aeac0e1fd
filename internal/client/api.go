package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"

	"roadwatch.dev/backend/internal/model"
)

const DefaultTimeout = 15 * time.Second

// ReportPayload is the body the client posts to create a report.
type ReportPayload struct {
	UserName    string `json:"userName"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Image       string `json:"image"`
}

// NetworkError is a transport fault or timeout: no response was received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "client: network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError is a response other than the expected success status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("client: server responded %d", e.StatusCode)
	}
	return fmt.Sprintf("client: server responded %d: %s", e.StatusCode, e.Message)
}

type errorBody struct {
	Error string `json:"error"`
}

// API talks to the report endpoint. Requests are never retried.
type API struct {
	http *resty.Client
}

func NewAPI(baseURL string, timeout time.Duration) *API {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &API{http: c}
}

func (a *API) CreateReport(ctx context.Context, payload *ReportPayload) (*model.Report, error) {
	var (
		report model.Report
		failed errorBody
	)
	resp, err := a.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&report).
		SetError(&failed).
		Post("/api/v1/report")
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode() != http.StatusCreated {
		return nil, &APIError{StatusCode: resp.StatusCode(), Message: failed.Error}
	}

	return &report, nil
}

func (a *API) ListReports(ctx context.Context) ([]*model.Report, error) {
	var (
		reports []*model.Report
		failed  errorBody
	)
	resp, err := a.http.R().
		SetContext(ctx).
		SetResult(&reports).
		SetError(&failed).
		Get("/api/v1/report")
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode(), Message: failed.Error}
	}

	return reports, nil
}
