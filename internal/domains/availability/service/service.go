package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"alloggi/infras/bookingapi"
	"alloggi/infras/otel"
	"alloggi/internal/domains/availability/model"
	unitModel "alloggi/internal/domains/unit/model"
	"alloggi/shared"
	"alloggi/shared/constant"
	"alloggi/shared/timezone"
)

// Availability keeps the tri-state availability answer consistent with the
// currently selected unit and stay, and derives nights/total pricing.
type Availability interface {
	// Select replaces the current (unit, stay) selection and resets the
	// engine to Unknown with a zeroed quote.
	Select(unit unitModel.Unit, stay model.Stay)
	// Evaluate validates the selection locally and, when valid, confirms
	// availability with the Remote Booking Service. The result is applied
	// only if the selection has not changed while the call was in flight;
	// a stale completion is dropped silently. Remote failures degrade to
	// Unavailable and the error is surfaced for display.
	Evaluate(ctx context.Context) (model.State, error)
	State() model.State
	// Quote computes nights and total price for a stay without touching
	// the network. A zero nightly rate prices to zero; that is not an
	// error.
	Quote(unit unitModel.Unit, stay model.Stay) model.Quote
	// GuestRange returns the valid guest count bounds for a unit. A unit
	// with MaxGuests of 0 still yields the single valid option 1.
	GuestRange(unit unitModel.Unit) (min, max int)
	// ClampGuests forces a guest count into the unit's valid range.
	ClampGuests(unit unitModel.Unit, guests int) int
}

type serviceImpl struct {
	api  bookingapi.Client
	otel otel.Otel

	mu      sync.Mutex
	unit    unitModel.Unit
	stay    model.Stay
	status  model.Status
	quote   model.Quote
	message string
	gen     uint64
}

func New(api bookingapi.Client, otl otel.Otel) Availability {
	return &serviceImpl{
		api:  api,
		otel: otl,
	}
}

func (s *serviceImpl) Select(unit unitModel.Unit, stay model.Stay) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.unit = unit
	s.stay = stay
	s.reset()
}

// reset must be called with the lock held. Bumping the generation makes any
// in-flight check stale before its result can land.
func (s *serviceImpl) reset() {
	s.status = model.StatusUnknown
	s.quote = model.Quote{}
	s.message = ""
	s.gen++
}

func (s *serviceImpl) Evaluate(ctx context.Context) (res model.State, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Evaluate")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()

	if err = s.stay.Validate(timezone.Today()); err != nil {
		state := s.snapshot()
		s.mu.Unlock()

		return state, err
	}

	s.gen++
	gen := s.gen
	selection := model.Selection{UnitID: s.unit.ID, Stay: s.stay}
	unit := s.unit

	s.status = model.StatusChecking
	s.quote = model.Quote{}
	s.message = ""

	s.mu.Unlock()

	available, err := s.api.CheckAvailability(ctx, selection.UnitID, selection.Stay.CheckIn, selection.Stay.CheckOut)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		// The selection changed while this check was in flight; the
		// answer no longer applies to anything on screen.
		log.Debug().Int("unit_id", selection.UnitID).Msg("discarding stale availability result")

		return s.snapshot(), nil
	}

	if err != nil {
		log.Error().Err(err).Int("unit_id", selection.UnitID).Msg("availability check failed")

		s.status = model.StatusUnavailable
		s.message = err.Error()

		return s.snapshot(), err
	}

	if available {
		s.status = model.StatusAvailable
		s.quote = s.Quote(unit, selection.Stay)
	} else {
		s.status = model.StatusUnavailable
	}

	return s.snapshot(), nil
}

func (s *serviceImpl) State() model.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

// snapshot must be called with the lock held.
func (s *serviceImpl) snapshot() model.State {
	return model.State{
		Selection: model.Selection{UnitID: s.unit.ID, Stay: s.stay},
		Status:    s.status,
		Quote:     s.quote,
		Message:   s.message,
	}
}

func (s *serviceImpl) Quote(unit unitModel.Unit, stay model.Stay) model.Quote {
	nights := stay.Nights()
	if nights < 0 {
		nights = 0
	}

	return model.Quote{
		Nights: nights,
		Total:  shared.Round2(float64(nights) * unit.NightlyRate),
	}
}

func (s *serviceImpl) GuestRange(unit unitModel.Unit) (min, max int) {
	max = unit.MaxGuests
	if max < 1 {
		max = 1
	}

	return 1, max
}

func (s *serviceImpl) ClampGuests(unit unitModel.Unit, guests int) int {
	lo, hi := s.GuestRange(unit)

	if guests < lo {
		return lo
	}

	if guests > hi {
		return hi
	}

	return guests
}
