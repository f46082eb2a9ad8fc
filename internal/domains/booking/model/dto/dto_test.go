package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alloggi/infras/bookingapi"
	availModel "alloggi/internal/domains/availability/model"
	"alloggi/internal/domains/booking/model"
	"alloggi/internal/domains/booking/model/dto"
	"alloggi/shared/timezone"
)

func TestToAPI(t *testing.T) {
	in, err := timezone.ParseDate("2025-06-01")
	require.NoError(t, err)
	out, err := timezone.ParseDate("2025-06-04")
	require.NoError(t, err)

	req := model.Request{
		UnitID: 7,
		Stay:   availModel.Stay{CheckIn: in, CheckOut: out},
		Guests: 2,
		Guest: model.GuestInfo{
			Name:  "Maria Rossi",
			Email: "maria@example.com",
			Phone: "+39 333 1234567",
		},
		TotalDue: 450,
	}

	wire := dto.ToAPI(req)

	assert.Equal(t, 7, wire.Alloggio)
	assert.Equal(t, "2025-06-01", wire.CheckIn)
	assert.Equal(t, "2025-06-04", wire.CheckOut)
	assert.Equal(t, "450.00", wire.PrezzoTotale)
	assert.Equal(t, bookingapi.StatoPendente, wire.Stato)
	require.NotNil(t, wire.OspiteTelefono)
	assert.Equal(t, "+39 333 1234567", *wire.OspiteTelefono)
	assert.Nil(t, wire.NoteCliente)
}

func TestToAPIEmptyOptionalsAreNull(t *testing.T) {
	wire := dto.ToAPI(model.Request{Guest: model.GuestInfo{Name: "A", Email: "a@b.it"}})

	assert.Nil(t, wire.OspiteTelefono)
	assert.Nil(t, wire.NoteCliente)
}

func TestConfirmationFromAPI(t *testing.T) {
	conf := dto.ConfirmationFromAPI(bookingapi.Booking{
		ID:           42,
		Alloggio:     7,
		OspiteNome:   "Maria Rossi",
		OspiteEmail:  "maria@example.com",
		CheckIn:      "2025-06-01",
		CheckOut:     "2025-06-04",
		NumeroOspiti: 2,
		PrezzoTotale: 450,
		Stato:        bookingapi.StatoPendente,
		CreatedAt:    "2025-05-20T10:30:00Z",
	})

	assert.Equal(t, 42, conf.ID)
	assert.Equal(t, 7, conf.UnitID)
	assert.Equal(t, 3, conf.Stay.Nights())
	assert.InDelta(t, 450.00, conf.Total, 1e-9)
	assert.Equal(t, "Maria Rossi", conf.Guest.Name)
	assert.False(t, conf.CreatedAt.IsZero())
}

func TestConfirmationFromAPIBadDates(t *testing.T) {
	conf := dto.ConfirmationFromAPI(bookingapi.Booking{ID: 1, CheckIn: "garbage"})

	assert.True(t, conf.Stay.CheckIn.IsZero())
	assert.True(t, conf.CreatedAt.IsZero())
}
