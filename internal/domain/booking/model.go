package booking

import (
	"time"

	"github.com/google/uuid"
)

const (
	// StatusPending is the only status this service ever writes. There is
	// no confirm or cancel transition in the backend.
	StatusPending = "Pending"

	// DefaultCenterID pins every booking to the single operating centre.
	DefaultCenterID = 1
)

// Booking maps to the bookings table. Date and Time stay in their wire
// form ("2006-01-02" and "15:04:05"); display formatting happens in
// FormatBookingMoment, never in the model.
type Booking struct {
	ID        uuid.UUID `db:"id" json:"id"`
	PatientID uuid.UUID `db:"patient_id" json:"patient_id"`
	TherapyID uuid.UUID `db:"therapy_id" json:"therapy_id"`
	DoctorID  uuid.UUID `db:"doctor_id" json:"doctor_id"`
	Date      string    `db:"date" json:"date"`
	Time      string    `db:"time" json:"time"`
	Status    string    `db:"status" json:"status"`
	CenterID  int       `db:"center_id" json:"center_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CreateRequest is the inbound booking payload. The capitalized Doctor_id
// key is what existing clients send, so it stays.
type CreateRequest struct {
	PatientID uuid.UUID `json:"patient_id"`
	TherapyID uuid.UUID `json:"therapy_id"`
	DoctorID  uuid.UUID `json:"Doctor_id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
}
