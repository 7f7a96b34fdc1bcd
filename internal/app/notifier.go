package app

import (
	"context"
	"fmt"
	"log/slog"

	evbus "github.com/vardius/message-bus"

	"github.com/dfischr/diagpage/internal/config"
	"github.com/dfischr/diagpage/internal/domain"
)

type Mailer interface {
	// Send sends a plain text mail to the given recipients.
	Send(ctx context.Context, subject, body string, to []string) error
}

// MailNotifier subscribes to rendered diagnostics on the message bus and
// sends a notification mail to the configured recipients.
type MailNotifier struct {
	cfg *config.Config
	bus evbus.MessageBus

	mailer Mailer
}

// NewMailNotifier creates a new MailNotifier and connects it to the message bus.
func NewMailNotifier(cfg *config.Config, bus evbus.MessageBus, mailer Mailer) (*MailNotifier, error) {
	n := &MailNotifier{
		cfg: cfg,
		bus: bus,

		mailer: mailer,
	}

	if err := n.connectToMessageBus(); err != nil {
		return nil, fmt.Errorf("failed to setup message bus: %w", err)
	}

	return n, nil
}

func (n *MailNotifier) connectToMessageBus() error {
	if !n.cfg.Core.MailFaults || len(n.cfg.Core.MailRecipients) == 0 {
		return nil // nothing to do
	}

	if err := n.bus.Subscribe(TopicFaultRendered, n.faultRenderedEvent); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", TopicFaultRendered, err)
	}

	return nil
}

func (n *MailNotifier) faultRenderedEvent(record domain.FaultRecord) {
	subject := fmt.Sprintf("[diagpage] %s", record.Title)
	body := fmt.Sprintf("A diagnostic page was rendered.\n\n"+
		"Request: %s %s\nStatus:  %d\nError:   %s\nTime:    %s\n",
		record.Method, record.Path, record.StatusCode, record.Message,
		record.CreatedAt.Format("2006-01-02 15:04:05 MST"))

	if err := n.mailer.Send(context.Background(), subject, body, n.cfg.Core.MailRecipients); err != nil {
		slog.Error("failed to send fault notification", "error", err)
		return
	}
}
