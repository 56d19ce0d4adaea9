package booking

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) Create(ctx context.Context, b *Booking) error {
	b.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO bookings (id, patient_id, therapy_id, doctor_id, date, time, status, center_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING to_char(date, 'YYYY-MM-DD'), to_char(time, 'HH24:MI:SS'), created_at`,
		b.ID, b.PatientID, b.TherapyID, b.DoctorID, b.Date, b.Time, b.Status, b.CenterID).
		Scan(&b.Date, &b.Time, &b.CreatedAt)
}
