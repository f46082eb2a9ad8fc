package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alloggi/infras/bookingapi"
	"alloggi/internal/stub/store"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)

	return parsed
}

func bookStay(t *testing.T, s *store.Store, unitID int, checkIn, checkOut string) bookingapi.Booking {
	t.Helper()

	created, fieldErrs := s.CreateBooking(bookingapi.CreateBookingRequest{
		Alloggio:     unitID,
		OspiteNome:   "Maria Rossi",
		OspiteEmail:  "maria@example.com",
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		NumeroOspiti: 2,
		PrezzoTotale: "450.00",
		Stato:        bookingapi.StatoPendente,
	}, day(t, checkIn), day(t, checkOut))
	require.Nil(t, fieldErrs)

	return created
}

func TestListUnitsPagination(t *testing.T) {
	s := store.New()

	first, total := s.ListUnits(1, 2)
	require.Equal(t, 4, total)
	require.Len(t, first, 2)
	assert.Equal(t, 1, first[0].ID)
	assert.Equal(t, 2, first[1].ID)

	second, _ := s.ListUnits(2, 2)
	require.Len(t, second, 2)
	assert.Equal(t, 3, second[0].ID)

	empty, total := s.ListUnits(9, 2)
	assert.Equal(t, 4, total)
	assert.Empty(t, empty)
}

func TestAvailabilityHalfOpenInterval(t *testing.T) {
	s := store.New()

	bookStay(t, s, 1, "2027-06-01", "2027-06-04")

	// Inside and overlapping stays collide.
	assert.False(t, s.IsAvailable(1, day(t, "2027-06-02"), day(t, "2027-06-03")))
	assert.False(t, s.IsAvailable(1, day(t, "2027-05-30"), day(t, "2027-06-02")))
	assert.False(t, s.IsAvailable(1, day(t, "2027-06-03"), day(t, "2027-06-06")))

	// Checkout day frees the unit for the next check-in.
	assert.True(t, s.IsAvailable(1, day(t, "2027-06-04"), day(t, "2027-06-07")))
	assert.True(t, s.IsAvailable(1, day(t, "2027-05-28"), day(t, "2027-06-01")))
}

func TestUnavailableUnitNeverBookable(t *testing.T) {
	s := store.New()

	// Unit 4 is seeded as not listed for booking.
	assert.False(t, s.IsAvailable(4, day(t, "2027-06-01"), day(t, "2027-06-04")))
}

func TestCreateBookingRace(t *testing.T) {
	s := store.New()

	bookStay(t, s, 1, "2027-06-01", "2027-06-04")

	_, fieldErrs := s.CreateBooking(bookingapi.CreateBookingRequest{
		Alloggio:    1,
		OspiteNome:  "Luigi Verdi",
		OspiteEmail: "luigi@example.com",
		CheckIn:     "2027-06-02",
		CheckOut:    "2027-06-05",
	}, day(t, "2027-06-02"), day(t, "2027-06-05"))

	require.NotNil(t, fieldErrs)
	assert.Contains(t, fieldErrs, "check_in")
	assert.Contains(t, fieldErrs, "check_out")
}

func TestCreateBookingUnknownUnit(t *testing.T) {
	s := store.New()

	_, fieldErrs := s.CreateBooking(bookingapi.CreateBookingRequest{Alloggio: 99},
		day(t, "2027-06-01"), day(t, "2027-06-02"))

	require.NotNil(t, fieldErrs)
	assert.Contains(t, fieldErrs, "alloggio")
}

func TestCreateBookingFields(t *testing.T) {
	s := store.New()

	created := bookStay(t, s, 2, "2027-07-10", "2027-07-12")

	assert.Equal(t, 1, created.ID)
	assert.Equal(t, bookingapi.StatoPendente, created.Stato)
	assert.InDelta(t, 450.00, created.PrezzoTotale.Float64(), 1e-9)
	assert.NotEmpty(t, created.CreatedAt)
}

func TestSearchAvailable(t *testing.T) {
	s := store.New()

	bookStay(t, s, 1, "2027-06-01", "2027-06-04")

	free := s.SearchAvailable(day(t, "2027-06-02"), day(t, "2027-06-03"))

	ids := make([]int, 0, len(free))
	for _, unit := range free {
		ids = append(ids, unit.ID)
	}

	// 1 is booked, 4 is not listed.
	assert.Equal(t, []int{2, 3}, ids)
}

func TestTokens(t *testing.T) {
	s := store.New()

	_, ok := s.Authenticate("gestore", "sbagliata")
	assert.False(t, ok)

	token, ok := s.Authenticate("gestore", "alloggi123")
	require.True(t, ok)
	require.NotEmpty(t, token)
	assert.True(t, s.ValidToken(token))

	s.RevokeToken(token)
	assert.False(t, s.ValidToken(token))
}
