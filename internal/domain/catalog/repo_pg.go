package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// =========== Therapy Repository ===========

type therapyRepoPG struct{ pool *pgxpool.Pool }

func NewTherapyRepoPG(pool *pgxpool.Pool) TherapyRepository { return &therapyRepoPG{pool: pool} }

const therapyCols = `id, name, sanskrit_name, description, duration, cost, benefits, created_at`

func (r *therapyRepoPG) scanTherapy(row pgx.Row) (*Therapy, error) {
	var t Therapy
	err := row.Scan(&t.ID, &t.Name, &t.SanskritName, &t.Description, &t.Duration,
		&t.Cost, &t.Benefits, &t.CreatedAt)
	return &t, err
}

func (r *therapyRepoPG) List(ctx context.Context) ([]*Therapy, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+therapyCols+` FROM therapies ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Therapy
	for rows.Next() {
		t, err := r.scanTherapy(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

func (r *therapyRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Therapy, error) {
	return r.scanTherapy(r.pool.QueryRow(ctx,
		`SELECT `+therapyCols+` FROM therapies WHERE id = $1`, id))
}

// =========== Doctor Repository ===========

type doctorRepoPG struct{ pool *pgxpool.Pool }

func NewDoctorRepoPG(pool *pgxpool.Pool) DoctorRepository { return &doctorRepoPG{pool: pool} }

const doctorCols = `id, name, specialization, location, rating, fees, languages, created_at`

func (r *doctorRepoPG) scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.Name, &d.Specialization, &d.Location, &d.Rating,
		&d.Fees, &d.Languages, &d.CreatedAt)
	return &d, err
}

func (r *doctorRepoPG) List(ctx context.Context) ([]*Doctor, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+doctorCols+` FROM doctors ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Doctor
	for rows.Next() {
		d, err := r.scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

func (r *doctorRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return r.scanDoctor(r.pool.QueryRow(ctx,
		`SELECT `+doctorCols+` FROM doctors WHERE id = $1`, id))
}
