package adapters

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dfischr/diagpage/internal/config"
)

// MetricsServer exposes diagnostic page counters on a Prometheus endpoint.
type MetricsServer struct {
	*http.Server

	pagesRenderedTotal    *prometheus.CounterVec
	deliveryFailuresTotal prometheus.Counter
}

// NewMetricsServer returns a new prometheus server.
func NewMetricsServer(cfg *config.Config) *MetricsServer {
	reg := prometheus.NewRegistry()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	return &MetricsServer{
		Server: &http.Server{
			Addr:    cfg.Statistics.ListeningAddress,
			Handler: mux,
		},

		pagesRenderedTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "diagpage_pages_rendered_total",
				Help: "Number of diagnostic pages rendered, by response status.",
			}, []string{"status"},
		),
		deliveryFailuresTotal: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "diagpage_delivery_failures_total",
				Help: "Number of diagnostic pages that could not be written to the client.",
			},
		),
	}
}

// Run starts the metrics server. The function blocks until the context is cancelled.
func (m *MetricsServer) Run(ctx context.Context) {
	go func() {
		if err := m.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("metrics service exited", "address", m.Addr, "error", err)
		}
	}()

	slog.Info("started metrics service", "address", m.Addr)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := m.Shutdown(shutdownCtx); err != nil {
		slog.Error("metrics service shutdown failed", "address", m.Addr, "error", err)
	}
}

// PageRendered counts a rendered diagnostic page. Safe to call on a nil receiver.
func (m *MetricsServer) PageRendered(status int) {
	if m == nil {
		return
	}
	m.pagesRenderedTotal.WithLabelValues(strconv.Itoa(status)).Inc()
}

// DeliveryFailed counts a failed page delivery. Safe to call on a nil receiver.
func (m *MetricsServer) DeliveryFailed() {
	if m == nil {
		return
	}
	m.deliveryFailuresTotal.Inc()
}
