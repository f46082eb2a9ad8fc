package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"alloggi/infras/bookingapi"
	apiMocks "alloggi/infras/bookingapi/mocks"
	"alloggi/infras/otel/mocks"
	availModel "alloggi/internal/domains/availability/model"
	availService "alloggi/internal/domains/availability/service"
	"alloggi/internal/domains/booking/model"
	"alloggi/internal/domains/booking/service"
	unitModel "alloggi/internal/domains/unit/model"
	"alloggi/shared/failure"
	"alloggi/shared/timezone"
)

var seaHouse = unitModel.Unit{ID: 7, Name: "Casa al Mare", NightlyRate: 150.00, MaxGuests: 4}

var maria = model.GuestInfo{Name: "Maria Rossi", Email: "maria@example.com", Phone: "+39 333 1234567"}

func futureStay(t *testing.T, fromDays, nights int) availModel.Stay {
	t.Helper()

	checkIn := timezone.Today().AddDate(0, 0, fromDays)

	return availModel.Stay{CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, nights)}
}

func newWorkflow(t *testing.T) (service.Workflow, *apiMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockAPI := apiMocks.NewMockClient(ctrl)
	engine := availService.New(mockAPI, mocks.NewOtel())

	return service.New(mockAPI, engine, mocks.NewOtel()), mockAPI
}

func echoBooking(id int) func(context.Context, bookingapi.CreateBookingRequest) (bookingapi.Booking, error) {
	return func(_ context.Context, req bookingapi.CreateBookingRequest) (bookingapi.Booking, error) {
		return bookingapi.Booking{
			ID:           id,
			Alloggio:     req.Alloggio,
			OspiteNome:   req.OspiteNome,
			OspiteEmail:  req.OspiteEmail,
			CheckIn:      req.CheckIn,
			CheckOut:     req.CheckOut,
			NumeroOspiti: req.NumeroOspiti,
			PrezzoTotale: 450,
			Stato:        bookingapi.StatoPendente,
		}, nil
	}
}

func TestWorkflowHappyPath(t *testing.T) {
	wf, mockAPI := newWorkflow(t)

	mockAPI.EXPECT().
		CheckAvailability(gomock.Any(), seaHouse.ID, gomock.Any(), gomock.Any()).
		Return(true, nil)
	mockAPI.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req bookingapi.CreateBookingRequest) (bookingapi.Booking, error) {
			assert.Equal(t, seaHouse.ID, req.Alloggio)
			assert.Equal(t, "450.00", req.PrezzoTotale)
			assert.Equal(t, bookingapi.StatoPendente, req.Stato)
			assert.Equal(t, 2, req.NumeroOspiti)

			return echoBooking(42)(ctx, req)
		})

	wf.Start(seaHouse)
	require.Equal(t, model.StateSelectingDates, wf.State())

	require.NoError(t, wf.SetStay(futureStay(t, 10, 3)))
	require.NoError(t, wf.SetGuests(2))

	res, err := wf.Check(context.Background())
	require.NoError(t, err)
	require.Equal(t, availModel.StatusAvailable, res.Status)
	require.Equal(t, model.StateAvailable, wf.State())

	require.NoError(t, wf.SetGuestInfo(maria))
	require.Equal(t, model.StateCollectingGuestInfo, wf.State())

	conf, err := wf.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, model.StateConfirmed, wf.State())
	assert.Equal(t, 42, conf.ID)
	assert.Equal(t, seaHouse.ID, conf.UnitID)
	assert.InDelta(t, 450.00, conf.Total, 1e-9)

	stored, ok := wf.Confirmation()
	require.True(t, ok)
	assert.Equal(t, conf.ID, stored.ID)
}

func TestWorkflowGuestInfoRequiresConfirmedAvailability(t *testing.T) {
	wf, _ := newWorkflow(t)

	wf.Start(seaHouse)
	require.NoError(t, wf.SetStay(futureStay(t, 10, 3)))

	err := wf.SetGuestInfo(maria)

	require.Error(t, err)
	assert.True(t, failure.IsValidation(err))
}

func TestWorkflowGuestInfoValidation(t *testing.T) {
	wf, mockAPI := newWorkflow(t)

	mockAPI.EXPECT().
		CheckAvailability(gomock.Any(), seaHouse.ID, gomock.Any(), gomock.Any()).
		Return(true, nil)

	wf.Start(seaHouse)
	require.NoError(t, wf.SetStay(futureStay(t, 10, 3)))

	_, err := wf.Check(context.Background())
	require.NoError(t, err)

	err = wf.SetGuestInfo(model.GuestInfo{Name: "Maria", Email: "not-an-email"})

	require.Error(t, err)
	assert.True(t, failure.IsValidation(err))
	assert.Contains(t, failure.FieldErrors(err), "ospite_email")
	assert.Equal(t, model.StateAvailable, wf.State())
}

func TestWorkflowUnavailableBlocksProgress(t *testing.T) {
	wf, mockAPI := newWorkflow(t)

	mockAPI.EXPECT().
		CheckAvailability(gomock.Any(), seaHouse.ID, gomock.Any(), gomock.Any()).
		Return(false, nil)

	wf.Start(seaHouse)
	require.NoError(t, wf.SetStay(futureStay(t, 10, 3)))

	res, err := wf.Check(context.Background())
	require.NoError(t, err)
	require.Equal(t, availModel.StatusUnavailable, res.Status)
	require.Equal(t, model.StateUnavailable, wf.State())

	err = wf.SetGuestInfo(maria)
	require.Error(t, err)

	_, err = wf.Submit(context.Background())
	require.Error(t, err)
	assert.True(t, failure.IsValidation(err))
}

func TestWorkflowSubmitWithoutGuestInfo(t *testing.T) {
	wf, mockAPI := newWorkflow(t)

	mockAPI.EXPECT().
		CheckAvailability(gomock.Any(), seaHouse.ID, gomock.Any(), gomock.Any()).
		Return(true, nil)

	wf.Start(seaHouse)
	require.NoError(t, wf.SetStay(futureStay(t, 10, 3)))

	_, err := wf.Check(context.Background())
	require.NoError(t, err)

	_, err = wf.Submit(context.Background())

	require.Error(t, err)
	assert.True(t, failure.IsValidation(err))
}

func TestWorkflowDateChangeInvalidatesConfirmation(t *testing.T) {
	wf, mockAPI := newWorkflow(t)

	mockAPI.EXPECT().
		CheckAvailability(gomock.Any(), seaHouse.ID, gomock.Any(), gomock.Any()).
		Return(true, nil)

	wf.Start(seaHouse)
	require.NoError(t, wf.SetStay(futureStay(t, 10, 3)))

	_, err := wf.Check(context.Background())
	require.NoError(t, err)
	require.NoError(t, wf.SetGuestInfo(maria))

	// Changing dates after confirming availability sends the workflow
	// back to date selection; the old quote must not be submittable.
	require.NoError(t, wf.SetStay(futureStay(t, 11, 2)))
	require.Equal(t, model.StateSelectingDates, wf.State())

	_, err = wf.Submit(context.Background())

	require.Error(t, err)
	assert.True(t, failure.IsValidation(err))
}

func TestWorkflowRaceReturnsToChecking(t *testing.T) {
	wf, mockAPI := newWorkflow(t)

	raceErr := failure.Race("prenotazione non valida", map[string]string{
		"check_in": "le date selezionate non sono più disponibili",
	})

	gomock.InOrder(
		mockAPI.EXPECT().
			CheckAvailability(gomock.Any(), seaHouse.ID, gomock.Any(), gomock.Any()).
			Return(true, nil),
		mockAPI.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			Return(bookingapi.Booking{}, raceErr),
		mockAPI.EXPECT().
			CheckAvailability(gomock.Any(), seaHouse.ID, gomock.Any(), gomock.Any()).
			Return(true, nil),
		mockAPI.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(echoBooking(43)),
	)

	wf.Start(seaHouse)
	require.NoError(t, wf.SetStay(futureStay(t, 10, 3)))

	_, err := wf.Check(context.Background())
	require.NoError(t, err)
	require.NoError(t, wf.SetGuestInfo(maria))

	_, err = wf.Submit(context.Background())
	require.Error(t, err)
	require.True(t, failure.IsRace(err))
	require.Equal(t, model.StateCheckingAvailability, wf.State())

	// The race spent the old confirmation: a fresh check is mandatory.
	_, err = wf.Submit(context.Background())
	require.Error(t, err)

	_, err = wf.Check(context.Background())
	require.NoError(t, err)
	require.NoError(t, wf.SetGuestInfo(maria))

	conf, err := wf.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 43, conf.ID)
	assert.Equal(t, model.StateConfirmed, wf.State())
}

func TestWorkflowSubmitFailureParksInFailedState(t *testing.T) {
	wf, mockAPI := newWorkflow(t)

	gomock.InOrder(
		mockAPI.EXPECT().
			CheckAvailability(gomock.Any(), seaHouse.ID, gomock.Any(), gomock.Any()).
			Return(true, nil),
		mockAPI.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			Return(bookingapi.Booking{}, failure.Service(500, "errore interno del server")),
	)

	wf.Start(seaHouse)
	require.NoError(t, wf.SetStay(futureStay(t, 10, 3)))

	_, err := wf.Check(context.Background())
	require.NoError(t, err)
	require.NoError(t, wf.SetGuestInfo(maria))

	_, err = wf.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, model.StateSubmitFailed, wf.State())

	_, ok := wf.Confirmation()
	assert.False(t, ok)

	// No shortcut back to submitting without re-confirming availability.
	_, err = wf.Submit(context.Background())
	require.Error(t, err)
	assert.True(t, failure.IsValidation(err))
}

func TestWorkflowRejectsConcurrentSubmit(t *testing.T) {
	wf, mockAPI := newWorkflow(t)

	entered := make(chan struct{})
	release := make(chan struct{})

	gomock.InOrder(
		mockAPI.EXPECT().
			CheckAvailability(gomock.Any(), seaHouse.ID, gomock.Any(), gomock.Any()).
			Return(true, nil),
		mockAPI.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, req bookingapi.CreateBookingRequest) (bookingapi.Booking, error) {
				close(entered)
				<-release

				return echoBooking(44)(ctx, req)
			}),
	)

	wf.Start(seaHouse)
	require.NoError(t, wf.SetStay(futureStay(t, 10, 3)))

	_, err := wf.Check(context.Background())
	require.NoError(t, err)
	require.NoError(t, wf.SetGuestInfo(maria))

	done := make(chan error, 1)

	go func() {
		_, submitErr := wf.Submit(context.Background())
		done <- submitErr
	}()

	<-entered

	_, err = wf.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, failure.KindService, failure.GetKind(err))

	err = wf.SetStay(futureStay(t, 20, 1))
	require.Error(t, err)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, model.StateConfirmed, wf.State())
}

func TestWorkflowConfirmedIsTerminal(t *testing.T) {
	wf, mockAPI := newWorkflow(t)

	gomock.InOrder(
		mockAPI.EXPECT().
			CheckAvailability(gomock.Any(), seaHouse.ID, gomock.Any(), gomock.Any()).
			Return(true, nil),
		mockAPI.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(echoBooking(45)),
	)

	wf.Start(seaHouse)
	require.NoError(t, wf.SetStay(futureStay(t, 10, 3)))

	_, err := wf.Check(context.Background())
	require.NoError(t, err)
	require.NoError(t, wf.SetGuestInfo(maria))

	_, err = wf.Submit(context.Background())
	require.NoError(t, err)

	require.Error(t, wf.SetStay(futureStay(t, 20, 2)))
	require.Error(t, wf.SetGuests(3))

	_, err = wf.Submit(context.Background())
	require.Error(t, err)
}

func TestWorkflowGuestClamping(t *testing.T) {
	wf, _ := newWorkflow(t)

	wf.Start(seaHouse)
	assert.Equal(t, 1, wf.Guests())

	require.NoError(t, wf.SetGuests(10))
	assert.Equal(t, 4, wf.Guests())

	require.NoError(t, wf.SetGuests(0))
	assert.Equal(t, 1, wf.Guests())
}
