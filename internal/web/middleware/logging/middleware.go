// Package logging provides a middleware that logs information about each
// handled HTTP request.
package logging

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Middleware is a type that creates a new logging middleware. The logging
// middleware logs one line per handled request.
type Middleware struct {
	o options
}

// New returns a new logging middleware with the provided options.
func New(opts ...Option) *Middleware {
	o := newOptions(opts...)

	m := &Middleware{
		o: o,
	}

	return m
}

// Handler returns the logging middleware handler.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := newWriterWrapper(w)
		start := time.Now()

		defer func() {
			message := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

			args := []any{
				"protocol", r.Proto,
				"status", ww.StatusCode,
				"dataLength", ww.WrittenBytes,
				"duration", time.Since(start).String(),
				"clientIP", clientIP(r),
				"userAgent", r.UserAgent(),
			}
			if m.o.contextRequestIdKey != "" {
				if reqId, _ := r.Context().Value(m.o.contextRequestIdKey).(string); reqId != "" {
					args = append(args, "requestId", reqId)
				}
			}

			m.logMsg(message, args...)
		}()

		next.ServeHTTP(ww, r)
	})
}

// clientIP returns the X-Forwarded-For header value or the remote address
// without the port number.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}

	host := r.RemoteAddr
	for i := len(host) - 1; i >= 0; i-- {
		if host[i] == ':' {
			return host[:i]
		}
	}
	return host
}

func (m *Middleware) logMsg(message string, args ...any) {
	if m.o.prefix != "" {
		message = m.o.prefix + " " + message
	}

	logger := m.o.logger
	if logger == nil {
		logger = slog.Default()
	}

	switch m.o.logLevel {
	case LogLevelDebug:
		logger.Debug(message, args...)
	case LogLevelInfo:
		logger.Info(message, args...)
	case LogLevelWarn:
		logger.Warn(message, args...)
	case LogLevelError:
		logger.Error(message, args...)
	default:
		logger.Info(message, args...)
	}
}
