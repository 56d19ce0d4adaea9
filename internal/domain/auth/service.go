// Package auth implements the patient login check. Credentials are compared
// as stored plaintext passcodes; this mirrors the hosted product's contract
// and is a documented weakness, not a pattern to extend.
package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidCredentials is returned for unknown emails and passcode
// mismatches alike, so the two cases are indistinguishable to a caller.
var ErrInvalidCredentials = fmt.Errorf("invalid email or password")

// PatientFinder is the slice of the patient repository that login needs.
type PatientFinder interface {
	FindByEmail(ctx context.Context, email string) (id uuid.UUID, passcode string, err error)
}

type Service struct {
	patients PatientFinder
}

func NewService(patients PatientFinder) *Service {
	return &Service{patients: patients}
}

// User identifies a logged-in patient. The client keeps this in session
// storage; the server holds no session state.
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Login validates the email/password pair and returns the user identity.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password required")
	}

	id, passcode, err := s.patients.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if passcode != password {
		return nil, ErrInvalidCredentials
	}

	return &User{ID: id, Email: email}, nil
}
