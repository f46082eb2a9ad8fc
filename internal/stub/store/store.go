// Package store is the in-memory state behind the local stub backend. It
// exists for development and end-to-end testing of the client without a
// real deployment; nothing survives a restart.
package store

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"alloggi/infras/bookingapi"
	gDto "alloggi/shared/dto"
	"alloggi/shared/timezone"
)

// Booking is a stored reservation with dates parsed once at the door.
type Booking struct {
	bookingapi.Booking

	CheckInDate  time.Time
	CheckOutDate time.Time
}

type Store struct {
	mu       sync.RWMutex
	units    map[int]bookingapi.Unit
	bookings map[int]Booking
	nextID   int
	users    map[string]string
	tokens   map[string]string
}

func New() *Store {
	s := &Store{
		units:    make(map[int]bookingapi.Unit),
		bookings: make(map[int]Booking),
		nextID:   1,
		users:    map[string]string{"gestore": "alloggi123"},
		tokens:   make(map[string]string),
	}

	s.seed()

	return s
}

// ListUnits returns one page of units ordered by ID plus the total count.
func (s *Store) ListUnits(page, pageSize int) ([]bookingapi.Unit, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.sortedUnits()

	start := (page - 1) * pageSize
	if start >= len(all) {
		return []bookingapi.Unit{}, len(all)
	}

	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}

	return all[start:end], len(all)
}

func (s *Store) GetUnit(id int) (bookingapi.Unit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	unit, ok := s.units[id]

	return unit, ok
}

// IsAvailable reports whether the unit is free for the whole stay. The
// stay is half-open: a booking ending on checkIn does not collide.
func (s *Store) IsAvailable(unitID int, checkIn, checkOut time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.isAvailableLocked(unitID, checkIn, checkOut)
}

// SearchAvailable returns every unit free for the whole stay.
func (s *Store) SearchAvailable(checkIn, checkOut time.Time) []bookingapi.Unit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	free := []bookingapi.Unit{}

	for _, unit := range s.sortedUnits() {
		if s.isAvailableLocked(unit.ID, checkIn, checkOut) {
			free = append(free, unit)
		}
	}

	return free
}

// CreateBooking stores a reservation. The availability re-check and the
// insert happen under one lock so two racing submissions cannot both win;
// the loser gets per-field messages in the backend's shape.
func (s *Store) CreateBooking(req bookingapi.CreateBookingRequest, checkIn, checkOut time.Time) (bookingapi.Booking, map[string][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.units[req.Alloggio]; !ok {
		return bookingapi.Booking{}, map[string][]string{
			"alloggio": {"alloggio inesistente"},
		}
	}

	if !s.isAvailableLocked(req.Alloggio, checkIn, checkOut) {
		msg := "le date selezionate non sono più disponibili"

		return bookingapi.Booking{}, map[string][]string{
			"check_in":  {msg},
			"check_out": {msg},
		}
	}

	now := timezone.Now().Format(time.RFC3339)

	booking := Booking{
		Booking: bookingapi.Booking{
			ID:           s.nextID,
			Alloggio:     req.Alloggio,
			OspiteNome:   req.OspiteNome,
			OspiteEmail:  req.OspiteEmail,
			CheckIn:      req.CheckIn,
			CheckOut:     req.CheckOut,
			NumeroOspiti: req.NumeroOspiti,
			Stato:        bookingapi.StatoPendente,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	}

	if req.OspiteTelefono != nil {
		booking.OspiteTelefono = *req.OspiteTelefono
	}

	if req.NoteCliente != nil {
		booking.NoteCliente = *req.NoteCliente
	}

	booking.PrezzoTotale = parsePrice(req.PrezzoTotale)

	s.nextID++
	s.bookings[booking.ID] = booking

	return booking.Booking, nil
}

// Authenticate checks credentials and mints an opaque token.
func (s *Store) Authenticate(username, password string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if stored, ok := s.users[username]; !ok || stored != password {
		return "", false
	}

	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	s.tokens[token] = username

	return token, true
}

func (s *Store) ValidToken(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.tokens[token]

	return ok
}

func (s *Store) RevokeToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, token)
}

func (s *Store) isAvailableLocked(unitID int, checkIn, checkOut time.Time) bool {
	unit, ok := s.units[unitID]
	if !ok || !unit.Disponibile {
		return false
	}

	for _, booking := range s.bookings {
		if booking.Alloggio != unitID || booking.Stato == bookingapi.StatoRifiutata {
			continue
		}

		if checkIn.Before(booking.CheckOutDate) && booking.CheckInDate.Before(checkOut) {
			return false
		}
	}

	return true
}

func (s *Store) sortedUnits() []bookingapi.Unit {
	all := make([]bookingapi.Unit, 0, len(s.units))

	for id := 1; id < s.nextUnitID(); id++ {
		if unit, ok := s.units[id]; ok {
			all = append(all, unit)
		}
	}

	return all
}

func (s *Store) nextUnitID() int {
	maxID := 0
	for id := range s.units {
		if id > maxID {
			maxID = id
		}
	}

	return maxID + 1
}

func parsePrice(s string) gDto.FlexFloat {
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return gDto.FlexFloat(value)
}

func (s *Store) seed() {
	units := []bookingapi.Unit{
		{
			ID:              1,
			Nome:            "Casa al Mare",
			Descrizione:     "Villetta a due passi dalla spiaggia, ideale per famiglie.",
			Posizione:       "Otranto, Puglia",
			PrezzoNotte:     150,
			NumeroOspitiMax: 4,
			NumeroCamere:    2,
			NumeroBagni:     1,
			Servizi:         []string{"wifi", "aria condizionata", "parcheggio"},
			Disponibile:     true,
			Foto: []bookingapi.Photo{
				{ID: 1, ImageURL: "https://img.example.com/1/esterno.jpg", Tipo: "principale", Ordine: 1},
				{ID: 2, ImageURL: "https://img.example.com/1/soggiorno.jpg", Tipo: "interno", Ordine: 2},
			},
		},
		{
			ID:              2,
			Nome:            "Trullo del Borgo",
			Descrizione:     "Trullo ristrutturato nel centro storico.",
			Posizione:       "Alberobello, Puglia",
			PrezzoNotte:     95.50,
			NumeroOspitiMax: 2,
			NumeroCamere:    1,
			NumeroBagni:     1,
			Servizi:         []string{"wifi", "colazione inclusa"},
			Disponibile:     true,
		},
		{
			ID:              3,
			Nome:            "Baita delle Dolomiti",
			Descrizione:     "Chalet in legno con vista sulle Tofane.",
			Posizione:       "Cortina d'Ampezzo, Veneto",
			PrezzoNotte:     210,
			NumeroOspitiMax: 6,
			NumeroCamere:    3,
			NumeroBagni:     2,
			Servizi:         []string{"wifi", "camino", "sauna"},
			Disponibile:     true,
		},
		{
			ID:              4,
			Nome:            "Loft Navigli",
			Descrizione:     "Loft moderno sul naviglio grande.",
			Posizione:       "Milano, Lombardia",
			PrezzoNotte:     180,
			NumeroOspitiMax: 3,
			NumeroCamere:    1,
			NumeroBagni:     1,
			Servizi:         []string{"wifi", "ascensore"},
			Disponibile:     false,
		},
	}

	for _, unit := range units {
		s.units[unit.ID] = unit
	}
}
