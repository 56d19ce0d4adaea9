package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	notifications Repository
	now           func() time.Time
}

func NewService(notifications Repository) *Service {
	return &Service{notifications: notifications, now: time.Now}
}

// WithClock overrides the time source; used by tests that pin "now".
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Create stores a new unread notification for a patient.
func (s *Service) Create(ctx context.Context, n *Notification) error {
	if n.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if n.Message == "" {
		return fmt.Errorf("message is required")
	}
	return s.notifications.Create(ctx, n)
}

// ListForPatient returns the patient's notifications newest first, rendered
// with relative-age labels computed against the current instant.
func (s *Service) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*View, error) {
	items, err := s.notifications.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]*View, 0, len(items))
	for _, n := range items {
		views = append(views, n.ToView(now))
	}
	return views, nil
}

// MarkRead sets the read sentinel on one notification. Marking an
// already-read notification again is a no-op success.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) (*Notification, error) {
	return s.notifications.MarkRead(ctx, id)
}

// MarkAllRead sets the read sentinel on every notification belonging to the
// patient. There is deliberately no bulk-unread counterpart.
func (s *Service) MarkAllRead(ctx context.Context, patientID uuid.UUID) ([]*Notification, error) {
	return s.notifications.MarkAllRead(ctx, patientID)
}
