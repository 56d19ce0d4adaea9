package notification

import (
	"time"

	"github.com/google/uuid"
)

// Type and presentation constants for the booking-created notice.
const (
	TypeBooking = "Booking"

	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"

	// ReadSentinel is the stored "read" marker. The hosted store kept the
	// flag as a string column, so reads must normalize rather than assume
	// a boolean.
	ReadSentinel = "yes"
)

// Notification maps to the notifications table.
type Notification struct {
	ID        uuid.UUID `db:"id" json:"id"`
	PatientID uuid.UUID `db:"patient_id" json:"patient_id"`
	Type      string    `db:"type" json:"type"`
	Title     string    `db:"title" json:"title"`
	Message   string    `db:"message" json:"message"`
	Priority  string    `db:"priority" json:"priority"`
	Icon      string    `db:"icon" json:"icon"`
	Color     string    `db:"color" json:"color"`
	IsRead    *string   `db:"isread" json:"isread,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Read reports whether the stored flag means "read". Legacy rows may hold
// a stringified boolean instead of the sentinel; anything else, including
// an absent flag, is unread.
func (n *Notification) Read() bool {
	if n.IsRead == nil {
		return false
	}
	return *n.IsRead == ReadSentinel || *n.IsRead == "true"
}

// View is the notification as rendered to the client: the read flag
// normalized to a bool and the age derived as a relative label. The label
// is never stored; it is recomputed on every read.
type View struct {
	ID       uuid.UUID `json:"id"`
	Type     string    `json:"type"`
	Title    string    `json:"title"`
	Message  string    `json:"message"`
	TimeAgo  string    `json:"timeAgo"`
	IsRead   bool      `json:"isRead"`
	Priority string    `json:"priority"`
	Icon     string    `json:"icon"`
	Color    string    `json:"color"`
}

// ToView renders the notification relative to now.
func (n *Notification) ToView(now time.Time) *View {
	return &View{
		ID:       n.ID,
		Type:     n.Type,
		Title:    n.Title,
		Message:  n.Message,
		TimeAgo:  TimeAgo(n.CreatedAt, now),
		IsRead:   n.Read(),
		Priority: n.Priority,
		Icon:     n.Icon,
		Color:    n.Color,
	}
}
