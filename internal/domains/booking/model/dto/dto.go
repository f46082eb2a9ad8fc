package dto

import (
	"time"

	"alloggi/infras/bookingapi"
	availModel "alloggi/internal/domains/availability/model"
	"alloggi/internal/domains/booking/model"
	"alloggi/shared"
	"alloggi/shared/timezone"
)

// ToAPI maps a booking request onto the backend's wire shape. The total
// travels as a two-decimal string and new bookings always start pending;
// empty optional fields become JSON null rather than empty strings.
func ToAPI(req model.Request) bookingapi.CreateBookingRequest {
	return bookingapi.CreateBookingRequest{
		Alloggio:       req.UnitID,
		OspiteNome:     req.Guest.Name,
		OspiteEmail:    req.Guest.Email,
		OspiteTelefono: optional(req.Guest.Phone),
		CheckIn:        timezone.FormatDate(req.Stay.CheckIn),
		CheckOut:       timezone.FormatDate(req.Stay.CheckOut),
		NumeroOspiti:   req.Guests,
		PrezzoTotale:   shared.FormatPrice(req.TotalDue),
		Stato:          bookingapi.StatoPendente,
		NoteCliente:    optional(req.Guest.Note),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// ConfirmationFromAPI maps a created booking back into the domain shape.
// Dates the backend echoes in an unexpected format come back zero rather
// than failing the whole confirmation.
func ConfirmationFromAPI(b bookingapi.Booking) model.Confirmation {
	checkIn, _ := timezone.ParseDate(b.CheckIn)
	checkOut, _ := timezone.ParseDate(b.CheckOut)

	var createdAt time.Time
	if b.CreatedAt != "" {
		createdAt, _ = time.Parse(time.RFC3339, b.CreatedAt)
	}

	return model.Confirmation{
		ID:     b.ID,
		UnitID: b.Alloggio,
		Stay:   availModel.Stay{CheckIn: checkIn, CheckOut: checkOut},
		Guests: b.NumeroOspiti,
		Guest: model.GuestInfo{
			Name:  b.OspiteNome,
			Email: b.OspiteEmail,
			Phone: b.OspiteTelefono,
			Note:  b.NoteCliente,
		},
		Total:     float64(b.PrezzoTotale),
		Status:    b.Stato,
		CreatedAt: createdAt,
	}
}
