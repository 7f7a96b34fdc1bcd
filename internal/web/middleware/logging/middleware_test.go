package logging

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMiddlewareLogsRequestLine(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := New(WithLogger(logger)).Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("hello"))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/5", nil))

	line := buf.String()
	if !strings.Contains(line, "GET /users/5") {
		t.Errorf("expected request line, got %q", line)
	}
	if !strings.Contains(line, "status=418") {
		t.Errorf("expected status attribute, got %q", line)
	}
	if !strings.Contains(line, "dataLength=5") {
		t.Errorf("expected data length attribute, got %q", line)
	}
}

func TestMiddlewareLogsRequestId(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := New(
		WithLogger(logger),
		WithContextRequestIdKey("X-Request-ID"),
	).Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), "X-Request-ID", "rid-1234"))

	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !strings.Contains(buf.String(), "requestId=rid-1234") {
		t.Errorf("expected request id attribute, got %q", buf.String())
	}
}

func TestWriterWrapperDefaults(t *testing.T) {
	ww := newWriterWrapper(httptest.NewRecorder())

	if ww.StatusCode != http.StatusOK {
		t.Errorf("expected implicit status 200, got %d", ww.StatusCode)
	}

	ww.Write([]byte("abc"))
	ww.Write([]byte("de"))

	if ww.WrittenBytes != 5 {
		t.Errorf("expected 5 written bytes, got %d", ww.WrittenBytes)
	}
}
