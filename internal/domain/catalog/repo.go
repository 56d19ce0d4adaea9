package catalog

import (
	"context"

	"github.com/google/uuid"
)

type TherapyRepository interface {
	List(ctx context.Context) ([]*Therapy, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Therapy, error)
}

type DoctorRepository interface {
	List(ctx context.Context) ([]*Doctor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error)
}
