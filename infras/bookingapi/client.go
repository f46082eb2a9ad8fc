package bookingapi

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=./mocks/client_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"alloggi/config"
	"alloggi/infras/otel"
	"alloggi/shared/constant"
	"alloggi/shared/failure"
	"alloggi/shared/session"
)

const (
	otelScopeName = "bookingapi"
)

// Client is the typed surface of the Remote Booking Service.
type Client interface {
	ListUnits(ctx context.Context, page, pageSize int) (UnitPage, error)
	GetUnit(ctx context.Context, id int) (Unit, error)
	CheckAvailability(ctx context.Context, unitID int, checkIn, checkOut time.Time) (bool, error)
	SearchAvailableUnits(ctx context.Context, checkIn, checkOut time.Time) ([]Unit, error)
	CreateBooking(ctx context.Context, req CreateBookingRequest) (Booking, error)
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context) error
	Status(ctx context.Context) (StatusResponse, error)
}

type clientImpl struct {
	baseURL string
	http    *http.Client
	session session.Store
	limiter *rate.Limiter
	otel    otel.Otel
}

func New(cfg *config.Config, sess session.Store, otl otel.Otel) Client {
	timeout := time.Duration(cfg.API.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = constant.DefaultAPITimeoutSeconds * time.Second
	}

	return &clientImpl{
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: sess,
		limiter: rate.NewLimiter(rate.Limit(cfg.API.ChecksPerSecond), cfg.API.ChecksBurst),
		otel:    otl,
	}
}

func (c *clientImpl) ListUnits(ctx context.Context, page, pageSize int) (res UnitPage, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".ListUnits")
	defer scope.End()
	defer scope.TraceIfError(err)

	if page <= 0 {
		page = constant.DefaultValuePage
	}

	if pageSize <= 0 {
		pageSize = constant.DefaultValuePageSize
	}

	query := url.Values{}
	query.Set(constant.RequestParamPage, strconv.Itoa(page))
	query.Set(constant.RequestParamPageSize, strconv.Itoa(pageSize))

	err = c.do(ctx, http.MethodGet, "/alloggi/", query, nil, &res)
	if err != nil {
		return res, fmt.Errorf("listing units: %w", err)
	}

	return res, nil
}

func (c *clientImpl) GetUnit(ctx context.Context, id int) (res Unit, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".GetUnit")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("unit.id", id)

	err = c.do(ctx, http.MethodGet, fmt.Sprintf("/alloggi/%d/", id), nil, nil, &res)
	if err != nil {
		if failure.IsNotFound(err) {
			return res, err
		}

		return res, fmt.Errorf("getting unit %d: %w", id, err)
	}

	return res, nil
}

// CheckAvailability issues a read-only availability query. Any error is
// surfaced to the caller; deciding whether an error means "not available" is
// the caller's call, not ours.
func (c *clientImpl) CheckAvailability(ctx context.Context, unitID int, checkIn, checkOut time.Time) (available bool, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("unit.id", unitID)

	if err = c.limiter.Wait(ctx); err != nil {
		return false, failure.Network(err) //nolint:wrapcheck
	}

	query := url.Values{}
	query.Set(constant.RequestParamCheckIn, checkIn.Format(constant.DateOnlyFormat))
	query.Set(constant.RequestParamCheckOut, checkOut.Format(constant.DateOnlyFormat))

	var res AvailabilityResponse

	err = c.do(ctx, http.MethodGet, fmt.Sprintf("/alloggi/%d/disponibilita/", unitID), query, nil, &res)
	if err != nil {
		return false, fmt.Errorf("checking availability for unit %d: %w", unitID, err)
	}

	return res.Disponibile, nil
}

func (c *clientImpl) SearchAvailableUnits(ctx context.Context, checkIn, checkOut time.Time) (res []Unit, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".SearchAvailableUnits")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := url.Values{}
	query.Set(constant.RequestParamDateFrom, checkIn.Format(constant.DateOnlyFormat))
	query.Set(constant.RequestParamDateTo, checkOut.Format(constant.DateOnlyFormat))

	var envelope UnitPage

	err = c.do(ctx, http.MethodGet, "/verifica-disponibilita/", query, nil, &envelope)
	if err != nil {
		return nil, fmt.Errorf("searching available units: %w", err)
	}

	if envelope.Results == nil {
		return []Unit{}, nil
	}

	return envelope.Results, nil
}

// CreateBooking durably creates a reservation server-side on success. It is
// NOT safe to retry blindly; the workflow layer requires a fresh
// availability confirmation before any resubmission.
func (c *clientImpl) CreateBooking(ctx context.Context, req CreateBookingRequest) (res Booking, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("unit.id", req.Alloggio)

	err = c.do(ctx, http.MethodPost, "/prenotazioni/", nil, req, &res)
	if err != nil {
		return res, fmt.Errorf("creating booking: %w", err)
	}

	return res, nil
}

func (c *clientImpl) Login(ctx context.Context, username, password string) (token string, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	var res loginResponse

	err = c.do(ctx, http.MethodPost, "/auth/login/", nil, loginRequest{Username: username, Password: password}, &res)
	if err != nil {
		return "", fmt.Errorf("logging in: %w", err)
	}

	if err = c.session.Set(res.Token); err != nil {
		return "", fmt.Errorf("persisting token: %w", err)
	}

	return res.Token, nil
}

// Logout clears the local token regardless of how the server call goes.
func (c *clientImpl) Logout(ctx context.Context) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".Logout")
	defer scope.End()

	err = c.do(ctx, http.MethodPost, "/auth/logout/", nil, struct{}{}, nil)
	if err != nil {
		log.Warn().Err(err).Msg("logout call failed, clearing local token anyway")
	}

	if clearErr := c.session.Clear(); clearErr != nil {
		return fmt.Errorf("clearing session: %w", clearErr)
	}

	return nil
}

func (c *clientImpl) Status(ctx context.Context) (res StatusResponse, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".Status")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = c.do(ctx, http.MethodGet, "/status/", nil, nil, &res)
	if err != nil {
		return res, fmt.Errorf("checking API status: %w", err)
	}

	return res, nil
}

func (c *clientImpl) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	if body != nil {
		request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	if token := c.session.Token(); token != "" {
		request.Header.Set(constant.RequestHeaderAuthorization, constant.AuthorizationTokenPrefix+token)
	}

	response, err := c.http.Do(request)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("transport failure")

		return failure.Network(err) //nolint:wrapcheck
	}
	defer func() {
		_ = response.Body.Close()
	}()

	payload, err := io.ReadAll(response.Body)
	if err != nil {
		return failure.Network(err) //nolint:wrapcheck
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return c.decodeError(response.StatusCode, payload)
	}

	if out == nil || len(payload) == 0 {
		return nil
	}

	if err = json.Unmarshal(payload, out); err != nil {
		return failure.Service(response.StatusCode, fmt.Sprintf("unexpected response shape: %v", err)) //nolint:wrapcheck
	}

	return nil
}

// decodeError maps a non-2xx response body onto the failure taxonomy.
// Bodies carry either {detail|message} or, on 400, a per-field error map in
// the DRF style. A field map touching the stay dates marks a
// check-to-submit race.
func (c *clientImpl) decodeError(status int, payload []byte) error {
	if status == http.StatusUnauthorized {
		// The server no longer honors the token; drop it so the next
		// call starts unauthenticated instead of looping on 401s.
		if err := c.session.Clear(); err != nil {
			log.Warn().Err(err).Msg("failed to clear rejected session token")
		}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil || len(raw) == 0 {
		return failure.Service(status, fmt.Sprintf("HTTP error: %d", status)) //nolint:wrapcheck
	}

	for _, key := range []string{"detail", "message"} {
		if msg := decodeString(raw[key]); msg != "" {
			switch status {
			case http.StatusNotFound:
				return failure.NotFoundMessage(msg) //nolint:wrapcheck
			case http.StatusUnauthorized:
				return failure.Unauthorized(msg) //nolint:wrapcheck
			default:
				return failure.Service(status, msg) //nolint:wrapcheck
			}
		}
	}

	if status == http.StatusBadRequest {
		fields := decodeFieldErrors(raw)
		if len(fields) > 0 {
			_, raceIn := fields[constant.RequestParamCheckIn]
			_, raceOut := fields[constant.RequestParamCheckOut]

			if raceIn || raceOut {
				return failure.Race("the selected dates are no longer available", fields) //nolint:wrapcheck
			}

			return failure.ValidationFields("the booking request was rejected", fields) //nolint:wrapcheck
		}
	}

	return failure.Service(status, fmt.Sprintf("HTTP error: %d", status)) //nolint:wrapcheck
}

func decodeFieldErrors(raw map[string]json.RawMessage) map[string]string {
	fields := make(map[string]string, len(raw))

	for key, value := range raw {
		if msg := decodeString(value); msg != "" {
			fields[key] = msg

			continue
		}

		var list []string
		if err := json.Unmarshal(value, &list); err == nil && len(list) > 0 {
			fields[key] = strings.Join(list, ", ")
		}
	}

	return fields
}

func decodeString(raw json.RawMessage) string {
	if raw == nil {
		return ""
	}

	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return ""
	}

	return str
}
