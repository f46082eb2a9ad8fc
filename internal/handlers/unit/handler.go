package unit

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"alloggi/infras/bookingapi"
	"alloggi/infras/otel"
	"alloggi/internal/stub/store"
	"alloggi/shared/constant"
	"alloggi/shared/failure"
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
	router.Route("/alloggi", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetUnits)
		routerGroup.Get("/{id}/", handler.GetUnitByID)
		routerGroup.Get("/{id}/disponibilita/", handler.GetAvailability)
	})

	router.Get("/verifica-disponibilita/", handler.SearchAvailable)
}

// unitPage is the list envelope the real backend serves.
type unitPage struct {
	Count       int               `json:"count"`
	Results     []bookingapi.Unit `json:"results"`
	NumPages    int               `json:"num_pages"`
	PageSize    int               `json:"page_size"`
	CurrentPage int               `json:"current_page"`
}

// GetUnits serves one page of the catalog.
func (handler *Handler) GetUnits(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUnits")
	defer scope.End()

	page := queryInt(r, constant.RequestParamPage, constant.DefaultValuePage)
	pageSize := queryInt(r, constant.RequestParamPageSize, constant.DefaultValuePageSize)

	units, total := handler.store.ListUnits(page, pageSize)

	numPages := total / pageSize
	if total%pageSize != 0 || numPages == 0 {
		numPages++
	}

	response.WithJSON(w, http.StatusOK, unitPage{
		Count:       total,
		Results:     units,
		NumPages:    numPages,
		PageSize:    pageSize,
		CurrentPage: page,
	})
}

// GetUnitByID serves a single unit with its photos.
func (handler *Handler) GetUnitByID(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUnitByID")
	defer scope.End()

	id, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, failure.NotFound("alloggio"))

		return
	}

	unit, ok := handler.store.GetUnit(id)
	if !ok {
		response.WithError(w, failure.NotFound("alloggio"))

		return
	}

	response.WithJSON(w, http.StatusOK, unit)
}

// GetAvailability answers whether one unit is free for a stay.
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	id, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, failure.NotFound("alloggio"))

		return
	}

	if _, ok := handler.store.GetUnit(id); !ok {
		response.WithError(w, failure.NotFound("alloggio"))

		return
	}

	checkIn, checkOut, err := stayParams(r, constant.RequestParamCheckIn, constant.RequestParamCheckOut)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookingapi.AvailabilityResponse{
		AlloggioID:  id,
		CheckIn:     r.URL.Query().Get(constant.RequestParamCheckIn),
		CheckOut:    r.URL.Query().Get(constant.RequestParamCheckOut),
		Disponibile: handler.store.IsAvailable(id, checkIn, checkOut),
	})
}

// SearchAvailable serves every unit free for a stay as a bare array.
func (handler *Handler) SearchAvailable(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchAvailable")
	defer scope.End()

	checkIn, checkOut, err := stayParams(r, constant.RequestParamDateFrom, constant.RequestParamDateTo)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid search dates")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, handler.store.SearchAvailable(checkIn, checkOut))
}

func queryInt(r *http.Request, param string, fallback int) int {
	value, err := strconv.Atoi(r.URL.Query().Get(param))
	if err != nil || value < 1 {
		return fallback
	}

	return value
}

func stayParams(r *http.Request, fromParam, toParam string) (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(constant.DateOnlyFormat, r.URL.Query().Get(fromParam))
	if err != nil {
		return time.Time{}, time.Time{}, failure.ValidationFields("date non valide", map[string]string{
			fromParam: "inserire una data nel formato AAAA-MM-GG",
		})
	}

	checkOut, err = time.Parse(constant.DateOnlyFormat, r.URL.Query().Get(toParam))
	if err != nil {
		return time.Time{}, time.Time{}, failure.ValidationFields("date non valide", map[string]string{
			toParam: "inserire una data nel formato AAAA-MM-GG",
		})
	}

	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, failure.ValidationFields("date non valide", map[string]string{
			toParam: "la data di fine deve essere successiva alla data di inizio",
		})
	}

	return checkIn, checkOut, nil
}
