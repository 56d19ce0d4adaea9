// Package catalog exposes the read-only therapy and doctor directory that
// the booking page is built from.
package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Therapy maps to the therapies table.
type Therapy struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	SanskritName string    `db:"sanskrit_name" json:"sanskrit_name"`
	Description  string    `db:"description" json:"description"`
	Duration     string    `db:"duration" json:"duration"`
	Cost         float64   `db:"cost" json:"cost"`
	Benefits     []string  `db:"benefits" json:"benefits"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Doctor maps to the doctors table.
type Doctor struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Specialization string    `db:"specialization" json:"specialization"`
	Location       string    `db:"location" json:"location"`
	Rating         float64   `db:"rating" json:"rating"`
	Fees           float64   `db:"fees" json:"fees"`
	Languages      []string  `db:"languages" json:"languages"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
