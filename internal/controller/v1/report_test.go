package v1

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadwatch.dev/backend/internal/app/appconfig"
	"roadwatch.dev/backend/internal/model"
	"roadwatch.dev/backend/internal/repo"
	"roadwatch.dev/backend/internal/server/httpserver"
	"roadwatch.dev/backend/internal/server/svr"
	"roadwatch.dev/backend/internal/service"
)

type brokenStore struct{}

func (brokenStore) Create(context.Context, *model.Report) (*model.Report, error) {
	return nil, errors.New("server selection timeout")
}

func (brokenStore) ListAll(context.Context) ([]*model.Report, error) {
	return nil, errors.New("server selection timeout")
}

func (brokenStore) Ping(context.Context) error {
	return errors.New("server selection timeout")
}

func setupApp(t *testing.T, store repo.ReportStore, mutate ...func(*appconfig.Config)) *fiber.App {
	t.Helper()

	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{
		DBConnection: "memory://",
	}}
	for _, m := range mutate {
		m(conf)
	}

	app := httpserver.Create(conf)
	v1, _ := svr.CreateEndpointGroups(app)
	RegisterReport(v1, Report{
		Config:        conf,
		ReportService: service.NewReport(store, service.NewReportEvents(nil)),
	})
	return app
}

func do(t *testing.T, app *fiber.App, method, body string, headers ...string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/api/v1/report", reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, b
}

func listReports(t *testing.T, app *fiber.App) []model.Report {
	t.Helper()

	status, body := do(t, app, http.MethodGet, "")
	require.Equal(t, http.StatusOK, status, string(body))

	var reports []model.Report
	require.NoError(t, json.Unmarshal(body, &reports))
	return reports
}

func errorMessage(t *testing.T, body []byte) string {
	t.Helper()

	var e struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &e), string(body))
	return e.Error
}

func TestCreateThenList(t *testing.T) {
	app := setupApp(t, repo.NewMemoryReport())

	assert.Equal(t, "[]", func() string {
		_, body := do(t, app, http.MethodGet, "")
		return string(body)
	}())

	status, body := do(t, app, http.MethodPost,
		`{"userName":"Mark","type":"Potholes","title":"Big hole","description":"On Main St"}`)
	require.Equal(t, http.StatusCreated, status, string(body))

	var created model.Report
	require.NoError(t, json.Unmarshal(body, &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Mark", created.UserName)
	assert.Equal(t, "Potholes", created.Type)
	assert.Equal(t, "Big hole", created.Title)
	assert.Equal(t, "On Main St", created.Description)
	assert.False(t, created.CreatedAt.IsZero())

	reports := listReports(t, app)
	require.Len(t, reports, 1)
	assert.Equal(t, created, reports[0])
}

func TestListIsNotCacheable(t *testing.T) {
	app := setupApp(t, repo.NewMemoryReport())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/report", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "no-cache, no-store, must-revalidate", resp.Header.Get(fiber.HeaderCacheControl))
}

func TestCreateTrimsFields(t *testing.T) {
	app := setupApp(t, repo.NewMemoryReport())

	status, body := do(t, app, http.MethodPost,
		`{"userName":"  Mark ","type":"Potholes\n","title":"\tBig hole","description":" "}`)
	require.Equal(t, http.StatusCreated, status, string(body))

	var created model.Report
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, "Mark", created.UserName)
	assert.Equal(t, "Potholes", created.Type)
	assert.Equal(t, "Big hole", created.Title)
	assert.Empty(t, created.Description)
}

func TestCreateIgnoresLocationAndImage(t *testing.T) {
	app := setupApp(t, repo.NewMemoryReport())

	status, body := do(t, app, http.MethodPost,
		`{"userName":"Mark","type":"Potholes","title":"Big hole","description":"On Main St","location":"Via Roma 1","image":"aGVsbG8="}`)
	require.Equal(t, http.StatusCreated, status, string(body))
	assert.NotContains(t, string(body), "Via Roma 1")
	assert.NotContains(t, string(body), "aGVsbG8=")

	reports := listReports(t, app)
	require.Len(t, reports, 1)
	assert.Empty(t, reports[0].Location)
	assert.Nil(t, reports[0].Image)
}

func TestCreateRejectsInvalidReports(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing userName", `{"type":"Potholes","title":"Big hole"}`},
		{"blank title", `{"userName":"Mark","type":"Potholes","title":"   "}`},
		{"missing type", `{"userName":"Mark","title":"Big hole","description":"On Main St"}`},
		{"empty object", `{}`},
		{"array body", `[{"userName":"Mark","type":"Potholes","title":"Big hole"}]`},
		{"malformed json", `{"userName":"Mark",`},
		{"wrong field type", `{"userName":42,"type":"Potholes","title":"Big hole"}`},
		{"no body", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setupApp(t, repo.NewMemoryReport())

			status, body := do(t, app, http.MethodPost, tt.body)
			assert.Equal(t, http.StatusBadRequest, status, string(body))
			assert.NotEmpty(t, errorMessage(t, body))

			assert.Empty(t, listReports(t, app))
		})
	}
}

func TestCreateViolationsAreTranslated(t *testing.T) {
	app := setupApp(t, repo.NewMemoryReport())

	status, body := do(t, app, http.MethodPost, `{"type":"Potholes","title":"Big hole"}`,
		fiber.HeaderAcceptLanguage, "it-IT,it;q=0.9")
	require.Equal(t, http.StatusBadRequest, status)

	var resp struct {
		Error      string `json:"error"`
		Violations []struct {
			Field     string `json:"field"`
			Violation string `json:"violation"`
			Message   string `json:"message"`
		} `json:"violations"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Contains(t, resp.Error, "userName")
	require.Len(t, resp.Violations, 1)
	assert.Equal(t, "userName", resp.Violations[0].Field)
	assert.Equal(t, "required", resp.Violations[0].Violation)
	assert.Contains(t, resp.Violations[0].Message, "obbligatorio")

	_, body = do(t, app, http.MethodPost, `{"type":"Potholes","title":"Big hole"}`)
	require.NoError(t, json.Unmarshal(body, &resp))
	require.Len(t, resp.Violations, 1)
	assert.Equal(t, "userName is a required field", resp.Violations[0].Message)
}

func TestStoreFailures(t *testing.T) {
	app := setupApp(t, brokenStore{})

	status, body := do(t, app, http.MethodPost,
		`{"userName":"Mark","type":"Potholes","title":"Big hole"}`)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "error saving report", errorMessage(t, body))
	assert.NotContains(t, string(body), "server selection timeout")

	status, body = do(t, app, http.MethodGet, "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "failed to fetch reports", errorMessage(t, body))
}

func TestUnknownRoute(t *testing.T) {
	app := setupApp(t, repo.NewMemoryReport())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Cannot GET /api/v1/nope", errorMessage(t, body))
}

func TestCreateRequiresJSON(t *testing.T) {
	app := setupApp(t, repo.NewMemoryReport())

	status, body := do(t, app, http.MethodPost, `userName=a&title=b`, fiber.HeaderContentType, fiber.MIMEApplicationForm)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, errorMessage(t, body), "Content-Type")
}

func TestCreateRateLimited(t *testing.T) {
	const report = `{"userName":"Mark","type":"Potholes","title":"Big hole"}`

	t.Run("memory", func(t *testing.T) {
		app := setupApp(t, repo.NewMemoryReport(), func(c *appconfig.Config) {
			c.RateLimitMax = 2
		})

		for i := 0; i < 2; i++ {
			status, _ := do(t, app, http.MethodPost, report)
			require.Equal(t, http.StatusCreated, status)
		}
		status, body := do(t, app, http.MethodPost, report)
		assert.Equal(t, http.StatusTooManyRequests, status)
		assert.NotEmpty(t, errorMessage(t, body))

		// listing is never limited
		assert.Len(t, listReports(t, app), 2)
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })

		conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{RateLimitMax: 1}}
		app := httpserver.Create(conf)
		v1, _ := svr.CreateEndpointGroups(app)
		RegisterReport(v1, Report{
			Config:        conf,
			Redis:         client,
			ReportService: service.NewReport(repo.NewMemoryReport(), service.NewReportEvents(nil)),
		})

		status, _ := do(t, app, http.MethodPost, report)
		require.Equal(t, http.StatusCreated, status)
		status, _ = do(t, app, http.MethodPost, report)
		assert.Equal(t, http.StatusTooManyRequests, status)
		assert.NotEmpty(t, mr.Keys())
	})
}
