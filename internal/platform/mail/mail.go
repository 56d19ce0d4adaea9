// Package mail provides the outbound email collaborator used for booking
// confirmations. Sending is always best-effort from the caller's point of
// view; this package only reports errors, it never retries.
package mail

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	sendgrid "github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailSender is the interface for sending email messages.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// SendGridSender sends mail through the SendGrid v3 API.
type SendGridSender struct {
	client   *sendgrid.Client
	fromName string
	fromAddr string
}

// NewSendGridSender creates a SendGridSender with the given API key and
// sender identity.
func NewSendGridSender(apiKey, fromName, fromAddr string) *SendGridSender {
	return &SendGridSender{
		client:   sendgrid.NewSendClient(apiKey),
		fromName: fromName,
		fromAddr: fromAddr,
	}
}

// SendEmail sends a single plain-text message.
func (s *SendGridSender) SendEmail(_ context.Context, to, subject, body string) error {
	from := sgmail.NewEmail(s.fromName, s.fromAddr)
	msg := sgmail.NewSingleEmail(from, subject, sgmail.NewEmail("", to), body, body)

	resp, err := s.client.Send(msg)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// NoopSender is wired when confirmation mail is disabled. Sends are logged
// as skipped and always succeed.
type NoopSender struct {
	logger zerolog.Logger
}

// NewNoopSender creates a NoopSender.
func NewNoopSender(logger zerolog.Logger) *NoopSender {
	return &NoopSender{logger: logger}
}

// SendEmail logs the skipped send and returns nil.
func (s *NoopSender) SendEmail(_ context.Context, to, subject, _ string) error {
	s.logger.Info().
		Str("to", to).
		Str("subject", subject).
		Msg("mail disabled, confirmation email skipped")
	return nil
}

// EmailCall records a single call to SendEmail.
type EmailCall struct {
	To      string
	Subject string
	Body    string
}

// MockEmailSender is a test double for EmailSender.
type MockEmailSender struct {
	mu         sync.Mutex
	calls      []EmailCall
	ShouldFail bool
	FailError  string
}

// SendEmail records the call and optionally returns an error.
func (m *MockEmailSender) SendEmail(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, EmailCall{To: to, Subject: subject, Body: body})
	if m.ShouldFail {
		return errors.New(m.FailError)
	}
	return nil
}

// Calls returns a copy of recorded email calls.
func (m *MockEmailSender) Calls() []EmailCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]EmailCall, len(m.calls))
	copy(out, m.calls)
	return out
}
