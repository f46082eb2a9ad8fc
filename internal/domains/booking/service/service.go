package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"alloggi/infras/bookingapi"
	"alloggi/infras/otel"
	availModel "alloggi/internal/domains/availability/model"
	availService "alloggi/internal/domains/availability/service"
	"alloggi/internal/domains/booking/model"
	"alloggi/internal/domains/booking/model/dto"
	unitModel "alloggi/internal/domains/unit/model"
	"alloggi/shared/constant"
	"alloggi/shared/failure"
	"alloggi/shared/validator"
)

// Workflow drives a single booking from date selection to confirmation.
// It owns the state machine; callers can only move through it via these
// methods, never set a state directly. A Workflow is not reusable after
// confirmation: start a new one for the next booking.
type Workflow interface {
	// Start resets the workflow for a unit.
	Start(unit unitModel.Unit)
	// SetStay picks the dates. Any previous availability answer is
	// dropped and the workflow returns to date selection.
	SetStay(stay availModel.Stay) error
	// SetGuests picks the party size, clamped to what the unit allows.
	SetGuests(guests int) error
	// Check asks the backend whether the current selection is free and
	// blocks until the answer arrives.
	Check(ctx context.Context) (availModel.State, error)
	// SetGuestInfo records the guest details once availability is
	// confirmed, moving the workflow to the final step before submit.
	SetGuestInfo(info model.GuestInfo) error
	// Submit sends the booking. On a race (someone else took the
	// dates) the workflow returns to availability checking; on any
	// other failure it parks in StateSubmitFailed and a fresh Check is
	// required before retrying.
	Submit(ctx context.Context) (model.Confirmation, error)
	State() model.State
	Guests() int
	Confirmation() (model.Confirmation, bool)
}

type workflowImpl struct {
	api    bookingapi.Client
	engine availService.Availability
	otel   otel.Otel

	mu           sync.Mutex
	state        model.State
	unit         unitModel.Unit
	stay         availModel.Stay
	guests       int
	guest        model.GuestInfo
	confirmation model.Confirmation
	confirmed    bool
}

func New(api bookingapi.Client, engine availService.Availability, otl otel.Otel) Workflow {
	return &workflowImpl{
		api:    api,
		engine: engine,
		otel:   otl,
		state:  model.StateSelectingDates,
		guests: 1,
	}
}

func (w *workflowImpl) Start(unit unitModel.Unit) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.state = model.StateSelectingDates
	w.unit = unit
	w.stay = availModel.Stay{}
	w.guests = w.engine.ClampGuests(unit, 1)
	w.guest = model.GuestInfo{}
	w.confirmation = model.Confirmation{}
	w.confirmed = false

	w.engine.Select(unit, availModel.Stay{})
}

func (w *workflowImpl) SetStay(stay availModel.Stay) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.mutable(); err != nil {
		return err
	}

	w.stay = stay
	w.state = model.StateSelectingDates
	w.engine.Select(w.unit, stay)

	return nil
}

func (w *workflowImpl) SetGuests(guests int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.mutable(); err != nil {
		return err
	}

	w.guests = w.engine.ClampGuests(w.unit, guests)

	return nil
}

func (w *workflowImpl) Check(ctx context.Context) (res availModel.State, err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelServiceScopeName, "Workflow.Check")
	defer scope.End()
	defer scope.TraceIfError(err)

	w.mu.Lock()

	if err = w.mutable(); err != nil {
		w.mu.Unlock()

		return availModel.State{}, err
	}

	w.state = model.StateCheckingAvailability
	w.mu.Unlock()

	res, err = w.engine.Evaluate(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()

	switch res.Status {
	case availModel.StatusAvailable:
		w.state = model.StateAvailable
	case availModel.StatusUnavailable:
		w.state = model.StateUnavailable
	default:
		// The selection changed under us or the input never reached
		// the backend; back to picking dates.
		w.state = model.StateSelectingDates
	}

	return res, err
}

func (w *workflowImpl) SetGuestInfo(info model.GuestInfo) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != model.StateAvailable && w.state != model.StateCollectingGuestInfo {
		return failure.Validation("availability must be confirmed before entering guest details")
	}

	if err := validator.ValidateStruct(&info); err != nil {
		return err
	}

	w.guest = info
	w.state = model.StateCollectingGuestInfo

	return nil
}

func (w *workflowImpl) Submit(ctx context.Context) (conf model.Confirmation, err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelServiceScopeName, "Workflow.Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	w.mu.Lock()

	if w.state == model.StateSubmitting {
		w.mu.Unlock()

		return model.Confirmation{}, failure.Conflict("a submission is already in progress")
	}

	if w.confirmed {
		w.mu.Unlock()

		return model.Confirmation{}, failure.Conflict("this booking is already confirmed")
	}

	if w.state != model.StateCollectingGuestInfo {
		w.mu.Unlock()

		return model.Confirmation{}, failure.Validation("guest details are required before submitting")
	}

	// The quote on screen must belong to the exact selection being
	// submitted; anything else means a Check is still owed.
	engineState := w.engine.State()
	selection := availModel.Selection{UnitID: w.unit.ID, Stay: w.stay}

	if engineState.Status != availModel.StatusAvailable || !engineState.Selection.Equal(selection) {
		w.mu.Unlock()

		return model.Confirmation{}, failure.Validation("availability must be confirmed for the selected dates before submitting")
	}

	req := model.Request{
		UnitID:    w.unit.ID,
		Stay:      w.stay,
		Guests:    w.guests,
		Guest:     w.guest,
		TotalDue:  engineState.Quote.Total,
		NightsDue: engineState.Quote.Nights,
	}

	w.state = model.StateSubmitting
	w.mu.Unlock()

	created, err := w.api.CreateBooking(ctx, dto.ToAPI(req))

	w.mu.Lock()
	defer w.mu.Unlock()

	if err != nil {
		// Either way the confirmed quote is spent; a fresh Check is
		// required before the next attempt.
		w.engine.Select(w.unit, w.stay)

		if failure.IsRace(err) {
			log.Warn().Int("unit_id", req.UnitID).Msg("booking dates were taken while submitting")
			w.state = model.StateCheckingAvailability

			return model.Confirmation{}, err
		}

		log.Error().Err(err).Int("unit_id", req.UnitID).Msg("booking submission failed")
		w.state = model.StateSubmitFailed

		return model.Confirmation{}, err
	}

	w.confirmation = dto.ConfirmationFromAPI(created)
	w.confirmed = true
	w.state = model.StateConfirmed

	log.Info().Int("booking_id", w.confirmation.ID).Int("unit_id", req.UnitID).Msg("booking confirmed")

	return w.confirmation, nil
}

func (w *workflowImpl) State() model.State {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.state
}

func (w *workflowImpl) Guests() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.guests
}

func (w *workflowImpl) Confirmation() (model.Confirmation, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.confirmation, w.confirmed
}

// mutable reports whether the selection may still change. Must be called
// with the lock held.
func (w *workflowImpl) mutable() error {
	if w.state == model.StateSubmitting {
		return failure.Conflict("a submission is in progress")
	}

	if w.confirmed {
		return failure.Conflict("this booking is already confirmed")
	}

	return nil
}
