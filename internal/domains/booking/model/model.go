package model

import (
	"time"

	availModel "alloggi/internal/domains/availability/model"
)

// State is the current step of the booking workflow. The workflow only
// moves forward through the transitions the service allows; there is no
// way to jump from the outside.
type State int

const (
	StateSelectingDates State = iota
	StateCheckingAvailability
	StateAvailable
	StateUnavailable
	StateCollectingGuestInfo
	StateSubmitting
	StateConfirmed
	StateSubmitFailed
)

func (s State) String() string {
	switch s {
	case StateSelectingDates:
		return "selecting_dates"
	case StateCheckingAvailability:
		return "checking_availability"
	case StateAvailable:
		return "available"
	case StateUnavailable:
		return "unavailable"
	case StateCollectingGuestInfo:
		return "collecting_guest_info"
	case StateSubmitting:
		return "submitting"
	case StateConfirmed:
		return "confirmed"
	case StateSubmitFailed:
		return "submit_failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the workflow has reached a state it never
// leaves. Only a confirmed booking is terminal; a failed submit can be
// retried after a fresh availability check.
func (s State) Terminal() bool {
	return s == StateConfirmed
}

// GuestInfo is what the guest types into the form. Phone and note are
// optional free text and pass through untouched.
type GuestInfo struct {
	Name  string `json:"ospite_nome" validate:"required,max=100"`
	Email string `json:"ospite_email" validate:"required,email"`
	Phone string `json:"ospite_telefono" validate:"omitempty,max=50"`
	Note  string `json:"note_cliente" validate:"omitempty,max=500"`
}

// Request is everything needed to submit a booking: the confirmed
// selection, the guest details and the quoted total.
type Request struct {
	UnitID    int
	Stay      availModel.Stay
	Guests    int
	Guest     GuestInfo
	TotalDue  float64
	NightsDue int
}

// Confirmation is the backend's record of a created booking.
type Confirmation struct {
	ID        int
	UnitID    int
	Stay      availModel.Stay
	Guests    int
	Guest     GuestInfo
	Total     float64
	Status    string
	CreatedAt time.Time
}
