package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alloggi/internal/domains/availability/model"
	"alloggi/shared/failure"
)

func mustStay(t *testing.T, checkIn, checkOut string) model.Stay {
	t.Helper()

	stay, err := model.NewStay(checkIn, checkOut)
	require.NoError(t, err)

	return stay
}

func TestNewStayRejectsBadDates(t *testing.T) {
	_, err := model.NewStay("2025-6-1", "2025-06-04")
	require.Error(t, err)

	_, err = model.NewStay("2025-06-01", "garbage")
	require.Error(t, err)
}

func TestNights(t *testing.T) {
	assert.Equal(t, 3, mustStay(t, "2025-06-01", "2025-06-04").Nights())
	assert.Equal(t, 1, mustStay(t, "2025-06-01", "2025-06-02").Nights())

	// A stay crossing the switch to daylight saving time still counts
	// whole nights.
	assert.Equal(t, 2, mustStay(t, "2025-03-29", "2025-03-31").Nights())
}

func TestNightsAcrossDaylightSavingEnd(t *testing.T) {
	rome, err := time.LoadLocation("Europe/Rome")
	require.NoError(t, err)

	// The night of 2025-10-25→26 lasts 25 wall-clock hours in Rome. The
	// count must stay on calendar dates.
	stay := model.Stay{
		CheckIn:  time.Date(2025, time.October, 25, 0, 0, 0, 0, rome),
		CheckOut: time.Date(2025, time.October, 27, 0, 0, 0, 0, rome),
	}

	assert.Equal(t, 2, stay.Nights())

	spring := model.Stay{
		CheckIn:  time.Date(2025, time.March, 29, 0, 0, 0, 0, rome),
		CheckOut: time.Date(2025, time.March, 31, 0, 0, 0, 0, rome),
	}

	assert.Equal(t, 2, spring.Nights())
}

func TestStayValidate(t *testing.T) {
	today := mustStay(t, "2025-06-01", "2025-06-02").CheckIn

	tests := []struct {
		name    string
		stay    model.Stay
		wantErr bool
	}{
		{
			name: "valid future stay",
			stay: mustStay(t, "2025-06-10", "2025-06-12"),
		},
		{
			name: "check-in today is allowed",
			stay: mustStay(t, "2025-06-01", "2025-06-03"),
		},
		{
			name:    "missing dates",
			stay:    model.Stay{},
			wantErr: true,
		},
		{
			name:    "equal dates",
			stay:    model.Stay{CheckIn: today, CheckOut: today},
			wantErr: true,
		},
		{
			name:    "inverted dates",
			stay:    mustStay(t, "2025-06-12", "2025-06-10"),
			wantErr: true,
		},
		{
			name:    "past check-in",
			stay:    mustStay(t, "2025-05-20", "2025-05-25"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.stay.Validate(today)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, failure.IsValidation(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestSelectionEqual(t *testing.T) {
	stay := mustStay(t, "2025-06-01", "2025-06-04")

	a := model.Selection{UnitID: 1, Stay: stay}
	b := model.Selection{UnitID: 1, Stay: stay}

	assert.True(t, a.Equal(b))

	b.UnitID = 2
	assert.False(t, a.Equal(b))

	b = model.Selection{UnitID: 1, Stay: mustStay(t, "2025-06-01", "2025-06-05")}
	assert.False(t, a.Equal(b))
}

func TestStayIsZero(t *testing.T) {
	assert.True(t, model.Stay{}.IsZero())
	assert.False(t, model.Stay{CheckIn: time.Now()}.IsZero())
}
