// Package web contains the demo web server that exercises the diagnostic
// page renderer: a routegroup based HTTP server whose panic-recovery
// middleware renders diagnostic error pages in dev mode.
package web

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-pkgz/routegroup"
	evbus "github.com/vardius/message-bus"

	"github.com/dfischr/diagpage/internal"
	"github.com/dfischr/diagpage/internal/adapters"
	"github.com/dfischr/diagpage/internal/app"
	"github.com/dfischr/diagpage/internal/config"
	"github.com/dfischr/diagpage/internal/diag"
	"github.com/dfischr/diagpage/internal/domain"
	"github.com/dfischr/diagpage/internal/web/middleware/logging"
	"github.com/dfischr/diagpage/internal/web/middleware/recovery"
	"github.com/dfischr/diagpage/internal/web/middleware/tracing"
	"github.com/dfischr/diagpage/internal/web/respond"
)

const (
	RequestIDKey = "X-Request-ID"
)

// FaultReader provides access to previously recorded diagnostics.
type FaultReader interface {
	// GetAllFaults retrieves all fault records, newest first.
	GetAllFaults(ctx context.Context) ([]domain.FaultRecord, error)
}

type Server struct {
	cfg      *config.Config
	server   *routegroup.Bundle
	renderer *diag.Renderer

	bus     evbus.MessageBus
	faults  FaultReader
	metrics *adapters.MetricsServer
}

// NewServer creates the web server with the full middleware chain. The bus,
// the fault reader and the metrics server may be nil, the corresponding
// features are disabled in that case.
func NewServer(
	cfg *config.Config,
	bus evbus.MessageBus,
	faults FaultReader,
	metrics *adapters.MetricsServer,
) (*Server, error) {
	s := &Server{
		cfg:    cfg,
		server: routegroup.New(http.NewServeMux()),

		bus:     bus,
		faults:  faults,
		metrics: metrics,
	}

	s.renderer = diag.New(
		diag.WithEscapedTitle(cfg.Core.EscapeTitles),
		diag.WithStrictDelivery(cfg.Core.StrictDelivery),
	)

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "webserver"
	}
	hostname += ", version " + internal.Version

	s.server.Use(recovery.New(recovery.WithErrCallback(s.recoverPanic)).Handler)
	s.server.Use(tracing.New(
		tracing.WithContextIdentifier(RequestIDKey),
		tracing.WithHeaderIdentifier(RequestIDKey),
	).Handler)
	if cfg.Web.RequestLogging {
		s.server.Use(logging.New(
			logging.WithLevel(logging.LogLevelDebug),
			logging.WithContextRequestIdKey(RequestIDKey),
		).Handler)
	}
	if cfg.Web.ExposeHostInfo {
		s.server.Use(func(handler http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-Served-By", hostname)
				handler.ServeHTTP(w, r)
			})
		})
	}

	s.setupRoutes()

	return s, nil
}

// Run starts the web server. The function blocks until the context is cancelled.
func (s *Server) Run(ctx context.Context, listenAddress string) {
	srv := &http.Server{
		Addr:    listenAddress,
		Handler: s.server,
	}

	srvContext, cancelFn := context.WithCancel(ctx)
	go func() {
		var err error
		if s.cfg.Web.CertFile != "" && s.cfg.Web.KeyFile != "" {
			err = srv.ListenAndServeTLS(s.cfg.Web.CertFile, s.cfg.Web.KeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil {
			slog.Info("web service exited", "address", listenAddress, "error", err)
			cancelFn()
		}
	}()
	slog.Info("started web service", "address", listenAddress)

	// Wait for the main context to end
	<-srvContext.Done()

	slog.Debug("web service shutting down, grace period: 5 seconds")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)

	slog.Debug("web service shut down")
}

// recoverPanic is the recovery middleware error callback. In dev mode it
// renders a full diagnostic page for the recovered panic, otherwise the
// client gets a plain JSON error.
func (s *Server) recoverPanic(err error, stack []byte, w http.ResponseWriter, r *http.Request) {
	status := http.StatusInternalServerError

	if !s.cfg.Core.DevMode {
		respond.JSON(w, status, map[string]string{"error": "Internal Server Error"})
		return
	}

	diagErr := &diag.Error{
		Title: err.Error(),
		Cause: err,
		Stack: stack,
	}

	if deliverErr := s.renderer.Render(diag.NewHTTPContext(w, r), diag.Status(status), diagErr); deliverErr != nil {
		slog.Error("failed to deliver diagnostic page", "path", r.URL.Path, "error", deliverErr)
		s.metrics.DeliveryFailed()
		return
	}

	s.metrics.PageRendered(status)
	s.publishFault(w, r, status, diagErr)
}

// publishFault notifies the recorder and notifier about a rendered page.
func (s *Server) publishFault(w http.ResponseWriter, r *http.Request, status int, e *diag.Error) {
	if s.bus == nil {
		return
	}

	// The recovery callback runs outside the tracing middleware, so the
	// request context has no ID at that point. The tracing middleware also
	// mirrors the ID into the response header, which the whole chain shares.
	reqId := w.Header().Get(RequestIDKey)

	record := domain.FaultRecord{
		CreatedAt:  time.Now(),
		RequestId:  reqId,
		Method:     r.Method,
		Path:       r.URL.Path,
		StatusCode: status,
		Title:      e.Title,
	}
	if e.Cause != nil {
		record.Message = e.Cause.Error()
	}

	s.bus.Publish(app.TopicFaultRendered, record)
}
