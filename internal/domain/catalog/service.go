package catalog

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	therapies TherapyRepository
	doctors   DoctorRepository
}

func NewService(therapies TherapyRepository, doctors DoctorRepository) *Service {
	return &Service{therapies: therapies, doctors: doctors}
}

func (s *Service) ListTherapies(ctx context.Context) ([]*Therapy, error) {
	return s.therapies.List(ctx)
}

func (s *Service) GetTherapy(ctx context.Context, id uuid.UUID) (*Therapy, error) {
	return s.therapies.GetByID(ctx, id)
}

func (s *Service) ListDoctors(ctx context.Context) ([]*Doctor, error) {
	return s.doctors.List(ctx)
}

func (s *Service) GetDoctor(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}
