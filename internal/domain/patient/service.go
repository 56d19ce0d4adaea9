package patient

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

// GetProfile fetches the display projection for a patient.
func (s *Service) GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error) {
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Profile{
		Name:      p.Name,
		Email:     p.Email,
		Address:   p.Address,
		CreatedAt: p.CreatedAt,
		Contact:   p.Contact,
	}, nil
}

// UpdateProfile overwrites the editable profile fields. There is no
// optimistic concurrency check: last writer wins.
func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, upd ProfileUpdate) (*Patient, error) {
	if upd.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	return s.patients.Update(ctx, id, upd)
}

// Bookings returns the patient's bookings with therapy and doctor fields
// expanded.
func (s *Service) Bookings(ctx context.Context, patientID uuid.UUID) ([]*BookingView, error) {
	return s.patients.ListBookings(ctx, patientID)
}

// Records returns the patient's treatment history. Records have no write
// path in this system.
func (s *Service) Records(ctx context.Context, patientID uuid.UUID) ([]*RecordView, error) {
	return s.patients.ListRecords(ctx, patientID)
}
