package app

import (
	"context"
	"fmt"
	"log/slog"

	evbus "github.com/vardius/message-bus"

	"github.com/dfischr/diagpage/internal/config"
	"github.com/dfischr/diagpage/internal/domain"
)

type FaultDatabaseRepo interface {
	// SaveFault persists the given fault record.
	SaveFault(ctx context.Context, record *domain.FaultRecord) error
}

// FaultRecorder subscribes to rendered diagnostics on the message bus and
// persists them to the database.
type FaultRecorder struct {
	cfg *config.Config
	bus evbus.MessageBus

	db FaultDatabaseRepo
}

// NewFaultRecorder creates a new FaultRecorder and connects it to the message bus.
func NewFaultRecorder(cfg *config.Config, bus evbus.MessageBus, db FaultDatabaseRepo) (*FaultRecorder, error) {
	r := &FaultRecorder{
		cfg: cfg,
		bus: bus,

		db: db,
	}

	if err := r.connectToMessageBus(); err != nil {
		return nil, fmt.Errorf("failed to setup message bus: %w", err)
	}

	return r, nil
}

func (r *FaultRecorder) connectToMessageBus() error {
	if !r.cfg.Core.RecordFaults {
		return nil // nothing to do
	}

	if err := r.bus.Subscribe(TopicFaultRendered, r.faultRenderedEvent); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", TopicFaultRendered, err)
	}

	return nil
}

func (r *FaultRecorder) faultRenderedEvent(record domain.FaultRecord) {
	if err := r.db.SaveFault(context.Background(), &record); err != nil {
		slog.Error("failed to record rendered diagnostic",
			"method", record.Method,
			"path", record.Path,
			"error", err)
		return
	}
}
