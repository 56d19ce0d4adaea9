package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const notifCols = `id, patient_id, type, title, message, priority, icon, color, isread, created_at`

func (r *repoPG) scanNotification(row pgx.Row) (*Notification, error) {
	var n Notification
	err := row.Scan(&n.ID, &n.PatientID, &n.Type, &n.Title, &n.Message,
		&n.Priority, &n.Icon, &n.Color, &n.IsRead, &n.CreatedAt)
	return &n, err
}

func (r *repoPG) Create(ctx context.Context, n *Notification) error {
	n.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO notifications (id, patient_id, type, title, message, priority, icon, color, isread)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING created_at`,
		n.ID, n.PatientID, n.Type, n.Title, n.Message, n.Priority, n.Icon, n.Color, n.IsRead).
		Scan(&n.CreatedAt)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Notification, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+notifCols+` FROM notifications
		WHERE patient_id = $1
		ORDER BY created_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Notification
	for rows.Next() {
		n, err := r.scanNotification(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

func (r *repoPG) MarkRead(ctx context.Context, id uuid.UUID) (*Notification, error) {
	return r.scanNotification(r.pool.QueryRow(ctx, `
		UPDATE notifications SET isread = $2
		WHERE id = $1
		RETURNING `+notifCols,
		id, ReadSentinel))
}

func (r *repoPG) MarkAllRead(ctx context.Context, patientID uuid.UUID) ([]*Notification, error) {
	rows, err := r.pool.Query(ctx, `
		UPDATE notifications SET isread = $2
		WHERE patient_id = $1
		RETURNING `+notifCols,
		patientID, ReadSentinel)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Notification
	for rows.Next() {
		n, err := r.scanNotification(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}
