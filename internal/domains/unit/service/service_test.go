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
	"alloggi/internal/domains/unit/service"
	"alloggi/shared/failure"
	"alloggi/shared/timezone"
)

func newService(t *testing.T) (service.Unit, *apiMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockAPI := apiMocks.NewMockClient(ctrl)

	return service.New(mockAPI, mocks.NewOtel()), mockAPI
}

func TestListDefaultsAndPageMath(t *testing.T) {
	svc, mockAPI := newService(t)

	mockAPI.EXPECT().
		ListUnits(gomock.Any(), 1, 12).
		Return(bookingapi.UnitPage{
			Count:   25,
			Results: []bookingapi.Unit{{ID: 1, Nome: "Trullo", PrezzoNotte: 90}},
		}, nil)

	res, err := svc.List(context.Background(), 0, -5)

	require.NoError(t, err)
	assert.Equal(t, 25, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
	assert.Equal(t, 1, res.CurrentPage)
	require.Len(t, res.Units, 1)
	assert.Equal(t, "Trullo", res.Units[0].Name)
	assert.InDelta(t, 90.0, res.Units[0].NightlyRate, 1e-9)
}

func TestListServerPaginationWins(t *testing.T) {
	svc, mockAPI := newService(t)

	mockAPI.EXPECT().
		ListUnits(gomock.Any(), 2, 12).
		Return(bookingapi.UnitPage{Count: 25, NumPages: 5, CurrentPage: 2}, nil)

	res, err := svc.List(context.Background(), 2, 12)

	require.NoError(t, err)
	assert.Equal(t, 5, res.TotalPage)
	assert.Equal(t, 2, res.CurrentPage)
}

func TestGetNotFound(t *testing.T) {
	svc, mockAPI := newService(t)

	mockAPI.EXPECT().
		GetUnit(gomock.Any(), 99).
		Return(bookingapi.Unit{}, failure.NotFound("alloggio"))

	_, err := svc.Get(context.Background(), 99)

	require.Error(t, err)
	assert.True(t, failure.IsNotFound(err))
}

func TestSearchValidatesLocally(t *testing.T) {
	svc, _ := newService(t)

	day := timezone.Today().AddDate(0, 0, 5)

	_, err := svc.Search(context.Background(), availModel.Stay{CheckIn: day, CheckOut: day})

	require.Error(t, err)
	assert.True(t, failure.IsValidation(err))
}

func TestSearch(t *testing.T) {
	svc, mockAPI := newService(t)

	checkIn := timezone.Today().AddDate(0, 0, 5)
	checkOut := checkIn.AddDate(0, 0, 2)

	mockAPI.EXPECT().
		SearchAvailableUnits(gomock.Any(), checkIn, checkOut).
		Return([]bookingapi.Unit{{ID: 3, Nome: "Baita"}, {ID: 8, Nome: "Loft"}}, nil)

	units, err := svc.Search(context.Background(), availModel.Stay{CheckIn: checkIn, CheckOut: checkOut})

	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, "Baita", units[0].Name)
}
