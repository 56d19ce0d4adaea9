package patient

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// -- Mock Repository --

type mockRepo struct {
	patients map[uuid.UUID]*Patient
	bookings map[uuid.UUID][]*BookingView
	records  map[uuid.UUID][]*RecordView
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		patients: make(map[uuid.UUID]*Patient),
		bookings: make(map[uuid.UUID][]*BookingView),
		records:  make(map[uuid.UUID][]*RecordView),
	}
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return p, nil
}

func (m *mockRepo) GetByEmail(_ context.Context, email string) (*Patient, error) {
	for _, p := range m.patients {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *mockRepo) Update(_ context.Context, id uuid.UUID, upd ProfileUpdate) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	p.Name = upd.Name
	p.Email = upd.Email
	p.Contact = upd.Contact
	p.Address = upd.Address
	return p, nil
}

func (m *mockRepo) ListBookings(_ context.Context, patientID uuid.UUID) ([]*BookingView, error) {
	return m.bookings[patientID], nil
}

func (m *mockRepo) ListRecords(_ context.Context, patientID uuid.UUID) ([]*RecordView, error) {
	return m.records[patientID], nil
}

// -- Tests --

func TestGetProfile_Projection(t *testing.T) {
	repo := newMockRepo()
	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	id := uuid.New()
	repo.patients[id] = &Patient{
		ID: id, Name: "Asha Rao", Email: "asha@example.com",
		Passcode: "secret", Contact: "9876543210", Address: "12 Lotus Lane",
		CreatedAt: created,
	}

	svc := NewService(repo)
	profile, err := svc.GetProfile(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.Name != "Asha Rao" || profile.Email != "asha@example.com" {
		t.Errorf("unexpected projection: %+v", profile)
	}
	if profile.Address != "12 Lotus Lane" || profile.Contact != "9876543210" {
		t.Errorf("unexpected projection: %+v", profile)
	}
	if !profile.CreatedAt.Equal(created) {
		t.Errorf("expected created_at %v, got %v", created, profile.CreatedAt)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())
	if _, err := svc.GetProfile(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected error for unknown patient")
	}
}

func TestUpdateProfile_WholeRow(t *testing.T) {
	repo := newMockRepo()
	id := uuid.New()
	repo.patients[id] = &Patient{ID: id, Name: "Old", Email: "old@example.com", Contact: "1", Address: "a"}

	svc := NewService(repo)
	p, err := svc.UpdateProfile(context.Background(), id, ProfileUpdate{
		Name: "New", Email: "new@example.com", Contact: "2", Address: "b",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "New" || p.Email != "new@example.com" || p.Contact != "2" || p.Address != "b" {
		t.Errorf("expected whole-row overwrite, got %+v", p)
	}
}

func TestUpdateProfile_RequiresEmail(t *testing.T) {
	repo := newMockRepo()
	id := uuid.New()
	repo.patients[id] = &Patient{ID: id, Email: "old@example.com"}

	svc := NewService(repo)
	if _, err := svc.UpdateProfile(context.Background(), id, ProfileUpdate{Name: "New"}); err == nil {
		t.Fatal("expected error for empty email")
	}
}

func TestBookings_DenormalizedFieldsPresent(t *testing.T) {
	repo := newMockRepo()
	pid := uuid.New()
	repo.bookings[pid] = []*BookingView{{
		ID:             uuid.New(),
		TherapyName:    "Vamana",
		DoctorName:     "Dr. Meera Iyer",
		DoctorLocation: "Kochi",
		Date:           "2025-11-04",
		Time:           "14:30:00",
		Status:         "Pending",
	}}

	svc := NewService(repo)
	views, err := svc.Bookings(context.Background(), pid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 booking view, got %d", len(views))
	}

	v := views[0]
	if v.TherapyName == "" || v.DoctorName == "" || v.DoctorLocation == "" {
		t.Errorf("expected expanded therapy/doctor fields, got %+v", v)
	}
}

func TestRecords_FlatList(t *testing.T) {
	repo := newMockRepo()
	pid := uuid.New()
	repo.records[pid] = []*RecordView{{
		ID:             uuid.New(),
		DoctorName:     "Dr. Meera Iyer",
		DoctorLocation: "Kochi",
		Date:           "2025-03-10",
		Time:           "09:00:00",
		MedicalNotes:   "Completed 7-day Virechana course",
		PatientNotes:   "Felt lighter after day 3",
		DoctorRating:   5,
	}}

	svc := NewService(repo)
	views, err := svc.Records(context.Background(), pid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 record view, got %d", len(views))
	}
	if views[0].DoctorRating != 5 {
		t.Errorf("expected doctor rating 5, got %d", views[0].DoctorRating)
	}
}
