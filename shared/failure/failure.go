package failure

import (
	"errors"
	"net/http"
)

// Kind partitions failures by how the workflow layer must react to them.
type Kind int

const (
	KindService Kind = iota
	KindValidation
	KindNetwork
	KindRace
	KindNotFound
	KindUnauthorized
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Validation failures may carry a field-to-message map for inline display.
type Failure struct {
	Code    int               `json:"code"`
	Kind    Kind              `json:"-"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// Validation returns a new Failure for a local validation error. It never
// represents anything that reached the network.
func Validation(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: msg,
	}
}

// ValidationFields returns a validation Failure carrying per-field messages.
func ValidationFields(msg string, fields map[string]string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: msg,
		Fields:  fields,
	}
}

// Network returns a new Failure for a transport-level error.
func Network(err error) error {
	msg := "network error"
	if err != nil {
		msg = err.Error()
	}

	return &Failure{
		Code:    http.StatusServiceUnavailable,
		Kind:    KindNetwork,
		Message: msg,
	}
}

// Service returns a new Failure for a non-2xx response with a server message.
func Service(code int, msg string) error {
	return &Failure{
		Code:    code,
		Kind:    KindService,
		Message: msg,
	}
}

// Race returns a new Failure for a booking rejected because the stay became
// unavailable between the availability check and the submit.
func Race(msg string, fields map[string]string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindRace,
		Message: msg,
		Fields:  fields,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: entityName + " not found",
	}
}

// NotFoundMessage returns a not-found Failure carrying a server-provided
// message verbatim.
func NotFoundMessage(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Kind:    KindUnauthorized,
		Message: msg,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindService,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Kind:    KindService,
			Message: err.Error(),
		}
	}

	return nil
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the failure kind of an error interface. Unknown errors are
// treated as service failures.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindService
}

// FieldErrors returns the per-field messages of an error interface, or nil.
func FieldErrors(err error) map[string]string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Fields
	}

	return nil
}

// IsValidation reports whether the error is a local validation failure.
func IsValidation(err error) bool {
	return GetKind(err) == KindValidation
}

// IsNetwork reports whether the error is a transport failure.
func IsNetwork(err error) bool {
	return GetKind(err) == KindNetwork
}

// IsRace reports whether the error is a check-to-submit availability race.
func IsRace(err error) bool {
	return GetKind(err) == KindRace
}

// IsNotFound reports whether the error marks an absent entity.
func IsNotFound(err error) bool {
	return GetKind(err) == KindNotFound
}
