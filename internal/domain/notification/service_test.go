package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	items     []*Notification
	createErr error
	listErr   error
	markErr   error
}

func (m *mockRepo) Create(ctx context.Context, n *Notification) error {
	if m.createErr != nil {
		return m.createErr
	}
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	m.items = append(m.items, n)
	return nil
}

func (m *mockRepo) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Notification, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*Notification
	for _, n := range m.items {
		if n.PatientID == patientID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *mockRepo) MarkRead(ctx context.Context, id uuid.UUID) (*Notification, error) {
	if m.markErr != nil {
		return nil, m.markErr
	}
	for _, n := range m.items {
		if n.ID == id {
			sentinel := ReadSentinel
			n.IsRead = &sentinel
			return n, nil
		}
	}
	return nil, errors.New("notification not found")
}

func (m *mockRepo) MarkAllRead(ctx context.Context, patientID uuid.UUID) ([]*Notification, error) {
	if m.markErr != nil {
		return nil, m.markErr
	}
	var out []*Notification
	for _, n := range m.items {
		if n.PatientID == patientID {
			sentinel := ReadSentinel
			n.IsRead = &sentinel
			out = append(out, n)
		}
	}
	return out, nil
}

func strptr(s string) *string { return &s }

func TestCreateValidation(t *testing.T) {
	svc := NewService(&mockRepo{})

	err := svc.Create(context.Background(), &Notification{Message: "hi"})
	if err == nil {
		t.Fatal("expected error for missing patient_id")
	}

	err = svc.Create(context.Background(), &Notification{PatientID: uuid.New()})
	if err == nil {
		t.Fatal("expected error for missing message")
	}
}

func TestListForPatientRendersViews(t *testing.T) {
	patient := uuid.New()
	now := time.Date(2025, 11, 4, 12, 0, 0, 0, time.UTC)

	repo := &mockRepo{items: []*Notification{
		{
			ID:        uuid.New(),
			PatientID: patient,
			Type:      TypeBooking,
			Title:     "Booking Confirmed",
			Message:   "m",
			Priority:  PriorityHigh,
			IsRead:    strptr(ReadSentinel),
			CreatedAt: now.Add(-90 * time.Second),
		},
		{
			ID:        uuid.New(),
			PatientID: patient,
			Type:      TypeBooking,
			Message:   "n",
			CreatedAt: now.Add(-30 * time.Second),
		},
		{ID: uuid.New(), PatientID: uuid.New(), Message: "other"},
	}}

	svc := NewService(repo).WithClock(func() time.Time { return now })

	views, err := svc.ListForPatient(context.Background(), patient)
	if err != nil {
		t.Fatalf("ListForPatient: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("got %d views, want 2", len(views))
	}
	if views[0].TimeAgo != "1 min ago" || !views[0].IsRead {
		t.Errorf("first view = %+v, want read, 1 min ago", views[0])
	}
	if views[1].TimeAgo != "just now" || views[1].IsRead {
		t.Errorf("second view = %+v, want unread, just now", views[1])
	}
}

// The read flag is stored as a string. Both the sentinel and a stringified
// boolean count as read; everything else, including nil, is unread.
func TestReadFlagNormalization(t *testing.T) {
	cases := []struct {
		name string
		flag *string
		want bool
	}{
		{"nil", nil, false},
		{"sentinel", strptr("yes"), true},
		{"stringified bool", strptr("true"), true},
		{"no", strptr("no"), false},
		{"empty", strptr(""), false},
		{"capitalized", strptr("Yes"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := &Notification{IsRead: tc.flag}
			if got := n.Read(); got != tc.want {
				t.Errorf("Read() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMarkReadIdempotent(t *testing.T) {
	patient := uuid.New()
	n := &Notification{ID: uuid.New(), PatientID: patient, Message: "m"}
	repo := &mockRepo{items: []*Notification{n}}
	svc := NewService(repo)

	first, err := svc.MarkRead(context.Background(), n.ID)
	if err != nil {
		t.Fatalf("first MarkRead: %v", err)
	}
	if !first.Read() {
		t.Error("notification not read after MarkRead")
	}

	second, err := svc.MarkRead(context.Background(), n.ID)
	if err != nil {
		t.Fatalf("second MarkRead: %v", err)
	}
	if !second.Read() {
		t.Error("repeat MarkRead flipped flag back")
	}
}

func TestMarkAllRead(t *testing.T) {
	patient := uuid.New()
	repo := &mockRepo{items: []*Notification{
		{ID: uuid.New(), PatientID: patient, Message: "a"},
		{ID: uuid.New(), PatientID: patient, Message: "b", IsRead: strptr(ReadSentinel)},
		{ID: uuid.New(), PatientID: uuid.New(), Message: "c"},
	}}
	svc := NewService(repo)

	items, err := svc.MarkAllRead(context.Background(), patient)
	if err != nil {
		t.Fatalf("MarkAllRead: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	for _, n := range items {
		if !n.Read() {
			t.Errorf("notification %s still unread", n.ID)
		}
	}
}
