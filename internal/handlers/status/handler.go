package status

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"alloggi/infras/bookingapi"
	"alloggi/infras/otel"
	"alloggi/shared/constant"
	"alloggi/transport/http/response"
)

const version = "stub"

type Handler struct {
	otel otel.Otel
}

func New(otl otel.Otel) Handler {
	return Handler{otel: otl}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/status/", handler.GetStatus)
}

// GetStatus reports liveness in the backend's shape. The stub has no
// database, so that probe is always ok.
func (handler *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatus")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, bookingapi.StatusResponse{
		Status:   "ok",
		Database: "ok",
		Version:  version,
	})
}
