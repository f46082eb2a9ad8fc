package booking

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"alloggi/infras/bookingapi"
	"alloggi/infras/otel"
	"alloggi/internal/stub/store"
	"alloggi/shared/constant"
	"alloggi/shared/validator"
	"alloggi/transport/http/response"
)

type Handler struct {
	store *store.Store
	otel  otel.Otel
}

func New(st *store.Store, otl otel.Otel) Handler {
	return Handler{
		store: st,
		otel:  otl,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/prenotazioni", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
	})
}

type createBookingBody struct {
	Alloggio       int     `json:"alloggio" validate:"required,min=1"`
	OspiteNome     string  `json:"ospite_nome" validate:"required,max=100"`
	OspiteEmail    string  `json:"ospite_email" validate:"required,email"`
	OspiteTelefono *string `json:"ospite_telefono"`
	CheckIn        string  `json:"check_in" validate:"required,dateonly"`
	CheckOut       string  `json:"check_out" validate:"required,dateonly"`
	NumeroOspiti   int     `json:"numero_ospiti" validate:"required,min=1"`
	PrezzoTotale   string  `json:"prezzo_totale" validate:"required"`
	Stato          string  `json:"stato"`
	NoteCliente    *string `json:"note_cliente"`
}

// CreateBooking stores a reservation, re-checking availability so that a
// stay confirmed free moments ago can still lose the race here.
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	var body createBookingBody
	if err := validator.Validate(r.Body, &body); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid booking payload")

		response.WithError(w, err)

		return
	}

	checkIn, err := time.Parse(constant.DateOnlyFormat, body.CheckIn)
	if err != nil {
		response.WithFieldErrors(w, map[string][]string{
			constant.RequestParamCheckIn: {"inserire una data nel formato AAAA-MM-GG"},
		})

		return
	}

	checkOut, err := time.Parse(constant.DateOnlyFormat, body.CheckOut)
	if err != nil {
		response.WithFieldErrors(w, map[string][]string{
			constant.RequestParamCheckOut: {"inserire una data nel formato AAAA-MM-GG"},
		})

		return
	}

	if !checkOut.After(checkIn) {
		response.WithFieldErrors(w, map[string][]string{
			constant.RequestParamCheckOut: {"la data di check-out deve essere successiva al check-in"},
		})

		return
	}

	req := bookingapi.CreateBookingRequest{
		Alloggio:       body.Alloggio,
		OspiteNome:     body.OspiteNome,
		OspiteEmail:    body.OspiteEmail,
		OspiteTelefono: body.OspiteTelefono,
		CheckIn:        body.CheckIn,
		CheckOut:       body.CheckOut,
		NumeroOspiti:   body.NumeroOspiti,
		PrezzoTotale:   body.PrezzoTotale,
		Stato:          body.Stato,
		NoteCliente:    body.NoteCliente,
	}

	created, fieldErrs := handler.store.CreateBooking(req, checkIn, checkOut)
	if fieldErrs != nil {
		log.Warn().Int("unit_id", req.Alloggio).Msg("booking rejected")
		response.WithFieldErrors(w, fieldErrs)

		return
	}

	scope.AddEvent("Booking created")
	log.Info().Int("booking_id", created.ID).Int("unit_id", created.Alloggio).Msg("booking created")

	response.WithJSON(w, http.StatusCreated, created)
}
