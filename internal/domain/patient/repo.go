package patient

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	GetByEmail(ctx context.Context, email string) (*Patient, error)
	Update(ctx context.Context, id uuid.UUID, upd ProfileUpdate) (*Patient, error)
	ListBookings(ctx context.Context, patientID uuid.UUID) ([]*BookingView, error)
	ListRecords(ctx context.Context, patientID uuid.UUID) ([]*RecordView, error)
}
