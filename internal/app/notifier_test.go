package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	evbus "github.com/vardius/message-bus"

	"github.com/dfischr/diagpage/internal/config"
	"github.com/dfischr/diagpage/internal/domain"
)

type sentMail struct {
	subject string
	body    string
	to      []string
}

type fakeMailer struct {
	sent chan sentMail
}

func (f *fakeMailer) Send(_ context.Context, subject, body string, to []string) error {
	f.sent <- sentMail{subject: subject, body: body, to: to}
	return nil
}

func TestMailNotifierSendsFaultMail(t *testing.T) {
	cfg := &config.Config{}
	cfg.Core.MailFaults = true
	cfg.Core.MailRecipients = []string{"dev@example.com"}

	bus := evbus.New(10)
	mailer := &fakeMailer{sent: make(chan sentMail, 1)}

	_, err := NewMailNotifier(cfg, bus, mailer)
	require.NoError(t, err)

	bus.Publish(TopicFaultRendered, domain.FaultRecord{
		Method:     "GET",
		Path:       "/users/5",
		StatusCode: 500,
		Title:      "boom",
		Message:    "connection refused",
	})

	select {
	case mail := <-mailer.sent:
		assert.Equal(t, "[diagpage] boom", mail.subject)
		assert.Contains(t, mail.body, "GET /users/5")
		assert.Contains(t, mail.body, "connection refused")
		assert.Equal(t, []string{"dev@example.com"}, mail.to)
	case <-time.After(2 * time.Second):
		t.Fatal("notification mail was not sent")
	}
}

func TestMailNotifierDisabledWithoutRecipients(t *testing.T) {
	cfg := &config.Config{}
	cfg.Core.MailFaults = true // enabled, but no recipients configured

	bus := evbus.New(10)
	mailer := &fakeMailer{sent: make(chan sentMail, 1)}

	_, err := NewMailNotifier(cfg, bus, mailer)
	require.NoError(t, err)

	bus.Publish(TopicFaultRendered, domain.FaultRecord{Title: "boom"})

	select {
	case <-mailer.sent:
		t.Fatal("notifier should not be subscribed without recipients")
	case <-time.After(100 * time.Millisecond):
	}
}
