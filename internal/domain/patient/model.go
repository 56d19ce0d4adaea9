package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patients table. The passcode is the stored login
// credential; it never appears in JSON output.
type Patient struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email"`
	Passcode    string    `db:"passcode" json:"-"`
	Contact     string    `db:"contact" json:"contact"`
	Address     string    `db:"address" json:"address"`
	Preferences []string  `db:"preferences" json:"preferences,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Profile is the projection returned to the profile page.
type Profile struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	Contact   string    `json:"contact"`
}

// ProfileUpdate carries the full set of editable profile fields. Updates
// are whole-row: every field is written, last writer wins.
type ProfileUpdate struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

// BookingView is a booking row flattened for display, with the therapy and
// doctor references expanded.
type BookingView struct {
	ID             uuid.UUID `json:"id"`
	TherapyName    string    `json:"therapyName"`
	DoctorName     string    `json:"doctorName"`
	DoctorLocation string    `json:"doctorLocation"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// RecordView is a treatment history entry flattened for display.
type RecordView struct {
	ID             uuid.UUID `json:"id"`
	DoctorName     string    `json:"doctorName"`
	DoctorLocation string    `json:"doctorLocation"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	MedicalNotes   string    `json:"medicalNotes"`
	PatientNotes   string    `json:"patientNotes"`
	DoctorRating   int       `json:"doctorRating"`
}
