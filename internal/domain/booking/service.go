package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ayursutra/ayursutra/internal/domain/notification"
	"github.com/ayursutra/ayursutra/internal/platform/mail"
)

// ErrBookingNotCreated marks a failure inserting the booking row itself.
// Every other failure in the chain happens after the row is committed.
var ErrBookingNotCreated = errors.New("booking could not be created")

// TherapyResolver looks up the display name for a therapy.
type TherapyResolver interface {
	TherapyName(ctx context.Context, id uuid.UUID) (string, error)
}

// PatientResolver looks up the contact identity used to personalize the
// confirmation email.
type PatientResolver interface {
	PatientContact(ctx context.Context, id uuid.UUID) (name, email string, err error)
}

// NotificationCreator stores the in-app booking notice.
type NotificationCreator interface {
	Create(ctx context.Context, n *notification.Notification) error
}

// Result is what a successful booking returns to the client: the committed
// row plus the notice created alongside it.
type Result struct {
	Booking      *Booking
	Notification *notification.Notification
}

// Service runs the booking chain: insert the row, resolve the therapy name,
// store a notification, then dispatch a confirmation email without blocking
// the response. The steps are strictly sequential and there is no
// transaction across them; a failure mid-chain leaves the earlier writes in
// place.
type Service struct {
	bookings  Repository
	therapies TherapyResolver
	patients  PatientResolver
	notices   NotificationCreator
	sender    mail.EmailSender
	logger    zerolog.Logger

	mailWG sync.WaitGroup
}

func NewService(bookings Repository, therapies TherapyResolver, patients PatientResolver,
	notices NotificationCreator, sender mail.EmailSender, logger zerolog.Logger) *Service {
	return &Service{
		bookings:  bookings,
		therapies: therapies,
		patients:  patients,
		notices:   notices,
		sender:    sender,
		logger:    logger,
	}
}

// Create runs the full chain. The returned error wraps ErrBookingNotCreated
// only when the initial insert failed; later failures report the step that
// broke while the booking row stays committed.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*Result, error) {
	b := &Booking{
		PatientID: req.PatientID,
		TherapyID: req.TherapyID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    StatusPending,
		CenterID:  DefaultCenterID,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBookingNotCreated, err)
	}

	therapyName, err := s.therapies.TherapyName(ctx, req.TherapyID)
	if err != nil {
		return nil, fmt.Errorf("resolve therapy: %w", err)
	}

	displayDate, displayTime, err := FormatBookingMoment(b.Date, b.Time)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Your booking for %s therapy on %s at %s at AyurSutra has been created.",
		therapyName, displayDate, displayTime)

	notice := &notification.Notification{
		PatientID: req.PatientID,
		Type:      notification.TypeBooking,
		Title:     "Booking Confirmed",
		Message:   message,
		Priority:  notification.PriorityHigh,
		Icon:      "calendar",
		Color:     "green",
	}
	if err := s.notices.Create(ctx, notice); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}

	patientName, patientEmail, err := s.patients.PatientContact(ctx, req.PatientID)
	if err != nil {
		return nil, fmt.Errorf("resolve patient: %w", err)
	}

	s.dispatchConfirmation(patientName, patientEmail, message)

	return &Result{Booking: b, Notification: notice}, nil
}

// dispatchConfirmation sends the email in a detached goroutine. The outcome
// is only logged; mail-relay latency or failure must never reach the caller.
func (s *Service) dispatchConfirmation(name, email, message string) {
	subject := "Booking Confirmed"
	body := fmt.Sprintf("Namaste %s,\n\n%s\n\nWarm regards,\nTeam AyurSutra", name, message)

	s.mailWG.Add(1)
	go func() {
		defer s.mailWG.Done()
		if err := s.sender.SendEmail(context.Background(), email, subject, body); err != nil {
			s.logger.Error().Err(err).Str("to", email).Msg("booking confirmation email failed")
			return
		}
		s.logger.Info().Str("to", email).Msg("booking confirmation email sent")
	}()
}

// WaitMail blocks until in-flight confirmation emails finish. Used during
// shutdown and by tests.
func (s *Service) WaitMail() {
	s.mailWG.Wait()
}
