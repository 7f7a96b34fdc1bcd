package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	evbus "github.com/vardius/message-bus"

	"github.com/dfischr/diagpage/internal/config"
	"github.com/dfischr/diagpage/internal/domain"
)

type fakeFaultRepo struct {
	saved chan domain.FaultRecord
	fail  bool
}

func (f *fakeFaultRepo) SaveFault(_ context.Context, record *domain.FaultRecord) error {
	if f.fail {
		return errors.New("db fault")
	}
	f.saved <- *record
	return nil
}

func TestFaultRecorderPersistsRenderedFaults(t *testing.T) {
	cfg := &config.Config{}
	cfg.Core.RecordFaults = true

	bus := evbus.New(10)
	repo := &fakeFaultRepo{saved: make(chan domain.FaultRecord, 1)}

	_, err := NewFaultRecorder(cfg, bus, repo)
	require.NoError(t, err)

	bus.Publish(TopicFaultRendered, domain.FaultRecord{
		Method:     "GET",
		Path:       "/users/5",
		StatusCode: 500,
		Title:      "boom",
	})

	select {
	case record := <-repo.saved:
		assert.Equal(t, "GET", record.Method)
		assert.Equal(t, "/users/5", record.Path)
		assert.Equal(t, 500, record.StatusCode)
	case <-time.After(2 * time.Second):
		t.Fatal("fault record was not persisted")
	}
}

func TestFaultRecorderDisabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Core.RecordFaults = false

	bus := evbus.New(10)
	repo := &fakeFaultRepo{saved: make(chan domain.FaultRecord, 1)}

	_, err := NewFaultRecorder(cfg, bus, repo)
	require.NoError(t, err)

	bus.Publish(TopicFaultRendered, domain.FaultRecord{Title: "boom"})

	select {
	case <-repo.saved:
		t.Fatal("recorder should not be subscribed when disabled")
	case <-time.After(100 * time.Millisecond):
	}
}
