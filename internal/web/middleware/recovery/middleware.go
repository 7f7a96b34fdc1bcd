// Package recovery provides a middleware that recovers from panics in the
// handler chain. What happens after recovering is fully configurable, the
// server uses this to render diagnostic error pages in dev mode.
package recovery

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"runtime/debug"
	"strings"
)

// Middleware is a type that creates a new recovery middleware. The recovery
// middleware recovers from panics and writes an error response. It should be
// the first middleware in the middleware chain, so that it can recover from
// panics in other middlewares.
type Middleware struct {
	o options
}

// New returns a new recovery middleware with the provided options.
func New(opts ...Option) *Middleware {
	o := newOptions(opts...)

	m := &Middleware{
		o: o,
	}

	return m
}

// Handler returns the recovery middleware handler.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				stack := debug.Stack()

				realErr, ok := err.(error)
				if !ok {
					realErr = fmt.Errorf("%v", err)
				}

				// A broken connection does not warrant a panic stack trace.
				brokenPipe := isBrokenPipeError(realErr)

				if m.o.logCallback != nil {
					m.o.logCallback(realErr, stack, brokenPipe)
				}

				switch {
				case brokenPipe && m.o.brokenPipeCallback != nil:
					m.o.brokenPipeCallback(realErr, stack, w, r)
				case !brokenPipe && m.o.errCallback != nil:
					m.o.errCallback(realErr, stack, w, r)
				default:
					// no callback set, simply recover and do nothing...
				}
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// getDefaultErrCallback is the default error callback function for the recovery middleware.
// It writes a plain JSON Internal Server Error response.
func getDefaultErrCallback(o options) func(err error, stack []byte, w http.ResponseWriter, r *http.Request) {
	return func(err error, stack []byte, w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal Server Error"}`))
	}
}

// getDefaultLogCallback is the default log callback function for the recovery middleware.
// It logs the error and stack trace with the configured logger in Error level.
func getDefaultLogCallback(o options) func(error, []byte, bool) {
	return func(err error, stack []byte, brokenPipe bool) {
		if brokenPipe {
			return // by default, ignore broken pipe errors
		}

		logger := o.logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("recovered from panic", "error", err, "stack", string(stack))
	}
}

func isBrokenPipeError(err error) bool {
	var syscallErr *os.SyscallError
	if errors.As(err, &syscallErr) {
		errMsg := strings.ToLower(syscallErr.Err.Error())
		if strings.Contains(errMsg, "broken pipe") ||
			strings.Contains(errMsg, "connection reset by peer") {
			return true
		}
	}

	return false
}
