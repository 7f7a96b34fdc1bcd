package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	evbus "github.com/vardius/message-bus"

	"github.com/dfischr/diagpage/internal/app"
	"github.com/dfischr/diagpage/internal/config"
	"github.com/dfischr/diagpage/internal/domain"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Core.DevMode = true
	cfg.Web.ListeningAddress = ":0"
	cfg.Web.SiteTitle = "diagpage test"
	return cfg
}

type fakeFaultReader struct {
	records []domain.FaultRecord
}

func (f *fakeFaultReader) GetAllFaults(_ context.Context) ([]domain.FaultRecord, error) {
	return f.records, nil
}

func TestServerRendersDiagnosticPageOnPanic(t *testing.T) {
	srv, err := NewServer(testConfig(), nil, nil, nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic/error", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "text/html;charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "failed to load user profile: connection refused")
	assert.Contains(t, body, "caused by: connection refused")
	assert.Contains(t, body, "Status code 500 for request 'GET /panic/error'")
	assert.Contains(t, body, "goroutine") // captured stack
}

func TestServerRendersJSONWithoutDevMode(t *testing.T) {
	cfg := testConfig()
	cfg.Core.DevMode = false

	srv, err := NewServer(cfg, nil, nil, nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic/error", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
}

func TestServerRendersSnippetOnBrokenRoute(t *testing.T) {
	srv, err := NewServer(testConfig(), nil, nil, nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/broken-route", nil))

	body := rec.Body.String()
	assert.Contains(t, body, "<h2>conf/routes</h2>")
	assert.Contains(t, body, `<span class="line info">11</span>`)
	assert.Contains(t, body, `<span class="line error">12</span>`)
	assert.Contains(t, body, `<span class="line info">13</span>`)
}

func TestServerPublishesFaultEvents(t *testing.T) {
	bus := evbus.New(10)
	published := make(chan domain.FaultRecord, 1)
	require.NoError(t, bus.Subscribe(app.TopicFaultRendered, func(record domain.FaultRecord) {
		published <- record
	}))

	srv, err := NewServer(testConfig(), bus, nil, nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic/value", nil))

	reqId := rec.Header().Get(RequestIDKey)
	require.NotEmpty(t, reqId)

	select {
	case record := <-published:
		assert.Equal(t, "GET", record.Method)
		assert.Equal(t, "/panic/value", record.Path)
		assert.Equal(t, http.StatusInternalServerError, record.StatusCode)
		assert.Equal(t, "unexpected internal state", record.Title)
		assert.Equal(t, reqId, record.RequestId) // assigned by the tracing middleware
	case <-time.After(2 * time.Second):
		t.Fatal("no fault event was published")
	}
}

func TestServerFaultHistory(t *testing.T) {
	reader := &fakeFaultReader{records: []domain.FaultRecord{
		{Method: "GET", Path: "/panic/error", StatusCode: 500, Title: "boom"},
	}}

	srv, err := NewServer(testConfig(), nil, reader, nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v0/faults", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Path":"/panic/error"`)
}

func TestServerFaultHistoryDisabled(t *testing.T) {
	srv, err := NewServer(testConfig(), nil, nil, nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v0/faults", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
