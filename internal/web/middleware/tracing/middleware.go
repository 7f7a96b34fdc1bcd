// Package tracing provides a middleware that assigns a request ID to every
// incoming request, so that a rendered diagnostic page can be matched with
// its log lines and its fault record.
package tracing

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Middleware is a type that creates a new tracing middleware. The tracing
// middleware can be used to trace requests based on a request ID header.
type Middleware struct {
	o options
}

// New returns a new tracing middleware with the provided options.
func New(opts ...Option) *Middleware {
	o := newOptions(opts...)

	m := &Middleware{
		o: o,
	}

	return m
}

// Handler returns the tracing middleware handler.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqId string

		// re-use the upstream request ID if one was sent
		if m.o.upstreamReqIdHeader != "" {
			reqId = r.Header.Get(m.o.upstreamReqIdHeader)
		}

		if reqId == "" {
			reqId = uuid.NewString()
		}

		// set response header
		if m.o.headerIdentifier != "" {
			w.Header().Set(m.o.headerIdentifier, reqId)
		}

		// set context value
		if m.o.contextIdentifier != "" {
			ctx := context.WithValue(r.Context(), m.o.contextIdentifier, reqId)
			r = r.WithContext(ctx)
		}

		next.ServeHTTP(w, r) // execute the next handler
	})
}
