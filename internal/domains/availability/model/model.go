package model

import (
	"math"
	"time"

	"alloggi/shared/failure"
	"alloggi/shared/timezone"
)

// Status is the tri-state availability answer plus the in-flight marker.
// It resets to Unknown whenever the unit or either date changes, so a stale
// answer is never shown against a changed selection.
type Status int

const (
	StatusUnknown Status = iota
	StatusChecking
	StatusAvailable
	StatusUnavailable
)

func (s Status) String() string {
	switch s {
	case StatusChecking:
		return "checking"
	case StatusAvailable:
		return "available"
	case StatusUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Stay is a prospective (check-in, check-out) date range. Both are calendar
// dates at midnight in the application timezone.
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewStay parses a stay from wire-format dates (YYYY-MM-DD).
func NewStay(checkIn, checkOut string) (Stay, error) {
	in, err := timezone.ParseDate(checkIn)
	if err != nil {
		return Stay{}, failure.Validation("check_in must be a date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	out, err := timezone.ParseDate(checkOut)
	if err != nil {
		return Stay{}, failure.Validation("check_out must be a date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	return Stay{CheckIn: in, CheckOut: out}, nil
}

// Nights returns the whole-day count between check-in and check-out. The
// difference is taken on calendar dates re-anchored to UTC midnight, so a
// daylight-saving transition inside the stay never shifts the count.
func (s Stay) Nights() int {
	in := utcMidnight(s.CheckIn)
	out := utcMidnight(s.CheckOut)

	return int(math.Ceil(out.Sub(in).Hours() / 24))
}

func utcMidnight(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Validate rejects zero-or-negative-night stays and check-ins in the past,
// locally, before any network call is made.
func (s Stay) Validate(today time.Time) error {
	if s.CheckIn.IsZero() || s.CheckOut.IsZero() {
		return failure.Validation("check_in and check_out are required") //nolint:wrapcheck
	}

	if !s.CheckOut.After(s.CheckIn) {
		return failure.Validation("check_out must be after check_in") //nolint:wrapcheck
	}

	if s.CheckIn.Before(timezone.Midnight(today)) {
		return failure.Validation("check_in must not be in the past") //nolint:wrapcheck
	}

	return nil
}

func (s Stay) Equal(other Stay) bool {
	return s.CheckIn.Equal(other.CheckIn) && s.CheckOut.Equal(other.CheckOut)
}

func (s Stay) IsZero() bool {
	return s.CheckIn.IsZero() && s.CheckOut.IsZero()
}

// Selection keys an availability answer to the unit and stay it was asked
// for. An in-flight result is applied only while its selection still
// matches the current one.
type Selection struct {
	UnitID int
	Stay   Stay
}

func (s Selection) Equal(other Selection) bool {
	return s.UnitID == other.UnitID && s.Stay.Equal(other.Stay)
}

// Quote is the locally derived pricing for an available stay.
type Quote struct {
	Nights int
	Total  float64
}

// State is a snapshot of the engine for display.
type State struct {
	Selection Selection
	Status    Status
	Quote     Quote
	Message   string
}
