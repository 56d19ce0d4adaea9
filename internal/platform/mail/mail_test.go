package mail

import (
	"context"
	"os"
	"testing"

	"github.com/rs/zerolog"
)

func TestMockEmailSender_RecordsCalls(t *testing.T) {
	m := &MockEmailSender{}

	err := m.SendEmail(context.Background(), "patient@example.com", "Booking Confirmed", "body")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := m.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 recorded call, got %d", len(calls))
	}
	if calls[0].To != "patient@example.com" {
		t.Errorf("unexpected recipient: %s", calls[0].To)
	}
	if calls[0].Subject != "Booking Confirmed" {
		t.Errorf("unexpected subject: %s", calls[0].Subject)
	}
}

func TestMockEmailSender_Failure(t *testing.T) {
	m := &MockEmailSender{ShouldFail: true, FailError: "relay down"}

	err := m.SendEmail(context.Background(), "patient@example.com", "s", "b")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "relay down" {
		t.Errorf("unexpected error message: %v", err)
	}
	// Failed sends are still recorded.
	if len(m.Calls()) != 1 {
		t.Errorf("expected call to be recorded despite failure")
	}
}

func TestNoopSender_AlwaysSucceeds(t *testing.T) {
	s := NewNoopSender(zerolog.New(os.Stderr))
	if err := s.SendEmail(context.Background(), "patient@example.com", "s", "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
