package response

import (
	"encoding/json"
	"net/http"

	"alloggi/shared/constant"
	"alloggi/shared/failure"
	"alloggi/shared/logger"
)

// Detail is the backend's error body shape: a single human message.
type Detail struct {
	Detail string `json:"detail"`
}

// WithDetail sends an error response with a simple text message.
func WithDetail(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Detail{Detail: message})
}

// WithJSON sends the payload bare, exactly as the real backend would.
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, jsonPayload)
}

// WithError sends an error response, preserving per-field messages when
// the failure carries them.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	if fields := failure.FieldErrors(err); len(fields) > 0 {
		perField := make(map[string][]string, len(fields))
		for field, msg := range fields {
			perField[field] = []string{msg}
		}

		WithFieldErrors(writer, perField)

		return
	}

	WithDetail(writer, code, err.Error())
}

// WithFieldErrors sends a 400 whose body maps field names to messages,
// the shape serializer validation errors take on the wire.
func WithFieldErrors(writer http.ResponseWriter, fields map[string][]string) {
	response(writer, http.StatusBadRequest, fields)
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded.
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithDetail(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
