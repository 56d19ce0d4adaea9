package patient

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const patientCols = `id, name, email, passcode, contact, address, preferences, created_at`

func (r *repoPG) scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Passcode, &p.Contact, &p.Address,
		&p.Preferences, &p.CreatedAt)
	return &p, err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return r.scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
}

func (r *repoPG) GetByEmail(ctx context.Context, email string) (*Patient, error) {
	return r.scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE email = $1`, email))
}

func (r *repoPG) Update(ctx context.Context, id uuid.UUID, upd ProfileUpdate) (*Patient, error) {
	return r.scanPatient(r.pool.QueryRow(ctx, `
		UPDATE patients SET name = $2, email = $3, contact = $4, address = $5
		WHERE id = $1
		RETURNING `+patientCols,
		id, upd.Name, upd.Email, upd.Contact, upd.Address))
}

func (r *repoPG) ListBookings(ctx context.Context, patientID uuid.UUID) ([]*BookingView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT b.id, t.name, d.name, d.location,
			to_char(b.date, 'YYYY-MM-DD'), to_char(b.time, 'HH24:MI:SS'),
			b.status, b.created_at
		FROM bookings b
		JOIN therapies t ON t.id = b.therapy_id
		JOIN doctors d ON d.id = b.doctor_id
		WHERE b.patient_id = $1`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*BookingView
	for rows.Next() {
		var v BookingView
		if err := rows.Scan(&v.ID, &v.TherapyName, &v.DoctorName, &v.DoctorLocation,
			&v.Date, &v.Time, &v.Status, &v.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &v)
	}
	return items, rows.Err()
}

func (r *repoPG) ListRecords(ctx context.Context, patientID uuid.UUID) ([]*RecordView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT rec.id, d.name, d.location,
			to_char(rec.date, 'YYYY-MM-DD'), to_char(rec.time, 'HH24:MI:SS'),
			rec.medical_notes, rec.patient_notes, rec.doctor_rating
		FROM records rec
		JOIN doctors d ON d.id = rec.doctor_id
		WHERE rec.patient_id = $1`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*RecordView
	for rows.Next() {
		var v RecordView
		if err := rows.Scan(&v.ID, &v.DoctorName, &v.DoctorLocation,
			&v.Date, &v.Time, &v.MedicalNotes, &v.PatientNotes, &v.DoctorRating); err != nil {
			return nil, err
		}
		items = append(items, &v)
	}
	return items, rows.Err()
}
