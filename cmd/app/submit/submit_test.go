package submit

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func writePhoto(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hole.jpg")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))
	return path
}

func TestRunSubmitsReport(t *testing.T) {
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/report", r.URL.Path)
		body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"01HZX","userName":"Mark","type":"Potholes","title":"Big hole","createdAt":"2024-05-01T10:00:00Z"}`))
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := Run(context.Background(), Options{
		Server:    srv.URL,
		PhotoPath: writePhoto(t),
		Title:     "Big hole",
		Type:      "Potholes",
		Location:  "Via Roma 1",
		UserName:  "Mark",
		Timeout:   time.Second,
		Out:       &out,
	})
	require.NoError(t, err)

	parsed := gjson.ParseBytes(body)
	assert.Equal(t, "Mark", parsed.Get("userName").String())
	assert.Equal(t, "Big hole", parsed.Get("title").String())
	assert.Equal(t, "Potholes", parsed.Get("type").String())
	assert.Equal(t, "Via Roma 1", parsed.Get("location").String())
	assert.Equal(t, "aGVsbG8=", parsed.Get("image").String())

	assert.Contains(t, out.String(), "Report inviato con successo!")
	assert.Contains(t, out.String(), "01HZX")
}

func TestRunReportsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"error saving report"}`))
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := Run(context.Background(), Options{
		Server:    srv.URL,
		PhotoPath: writePhoto(t),
		Title:     "Big hole",
		Type:      "Potholes",
		UserName:  "Mark",
		Out:       &out,
	})
	assert.Error(t, err)
	assert.Contains(t, out.String(), "error saving report")
}

func TestRunMissingPhoto(t *testing.T) {
	err := Run(context.Background(), Options{
		Server:    "http://127.0.0.1:1",
		PhotoPath: filepath.Join(t.TempDir(), "missing.jpg"),
		Out:       io.Discard,
	})
	assert.Error(t, err)
}
