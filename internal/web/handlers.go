package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dfischr/diagpage/internal/diag"
	"github.com/dfischr/diagpage/internal/web/respond"
)

func (s *Server) setupRoutes() {
	s.server.HandleFunc("GET /", s.handleIndex())

	// routes that fail on purpose, each exercising a different page section
	s.server.HandleFunc("GET /panic/error", s.handlePanicError())
	s.server.HandleFunc("GET /panic/value", s.handlePanicValue())
	s.server.HandleFunc("GET /broken-route", s.handleBrokenRoute())

	apiGroup := s.server.Mount("/api/v0")
	apiGroup.HandleFunc("GET /faults", s.handleFaultsGet())
}

func (s *Server) handleIndex() http.HandlerFunc {
	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
  <head><title>%s</title></head>
  <body>
    <h1>%s</h1>
    <p>Demo endpoints:</p>
    <ul>
      <li><a href="/panic/error">/panic/error</a> - panic with a wrapped error</li>
      <li><a href="/panic/value">/panic/value</a> - panic with a plain value</li>
      <li><a href="/broken-route">/broken-route</a> - diagnostic with a source excerpt</li>
      <li><a href="/api/v0/faults">/api/v0/faults</a> - recorded diagnostics</li>
    </ul>
  </body>
</html>
`, s.cfg.Web.SiteTitle, s.cfg.Web.SiteTitle)

	return func(w http.ResponseWriter, r *http.Request) {
		respond.Data(w, http.StatusOK, "text/html;charset=utf-8", []byte(page))
	}
}

func (s *Server) handlePanicError() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fmt.Errorf("failed to load user profile: %w", errors.New("connection refused"))
		panic(err)
	}
}

func (s *Server) handlePanicValue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		panic("unexpected internal state")
	}
}

// handleBrokenRoute renders a diagnostic page directly, with a source
// excerpt of a (fictional) route definition file. This shows the snippet
// section which the panic path cannot produce.
func (s *Server) handleBrokenRoute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusInternalServerError

		diagErr := &diag.Error{
			Title:          "route target not found",
			SourceLocation: "conf/routes",
			SourceLines: []string{
				"GET   /            web.Index",
				"GET   /broken-route web.DoesNotExist",
				"GET   /api/v0/faults web.FaultsGet",
			},
			FirstLineNumber: 11,
			ErrorLineNumber: 12,
			Cause:           errors.New("no handler named web.DoesNotExist"),
		}

		if err := s.renderer.Render(diag.NewHTTPContext(w, r), diag.Status(status), diagErr); err != nil {
			slog.Error("failed to deliver diagnostic page", "path", r.URL.Path, "error", err)
			s.metrics.DeliveryFailed()
			return
		}

		s.metrics.PageRendered(status)
		s.publishFault(w, r, status, diagErr)
	}
}

func (s *Server) handleFaultsGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.faults == nil {
			respond.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "fault history is disabled"})
			return
		}

		records, err := s.faults.GetAllFaults(r.Context())
		if err != nil {
			respond.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load fault history"})
			return
		}

		respond.JSON(w, http.StatusOK, records)
	}
}
