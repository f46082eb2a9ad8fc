package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"alloggi/infras/bookingapi"
	"alloggi/infras/otel"
	"alloggi/internal/domains/auth/model"
	"alloggi/shared/constant"
	"alloggi/shared/session"
	"alloggi/shared/validator"
)

// Auth manages the operator's token session against the backend. The
// token itself stays inside the session store; callers only learn
// whether they are logged in.
type Auth interface {
	Login(ctx context.Context, creds model.Credentials) error
	Logout(ctx context.Context) error
	Session() model.Session
}

type serviceImpl struct {
	api     bookingapi.Client
	session session.Store
	otel    otel.Otel
}

func New(api bookingapi.Client, sess session.Store, otl otel.Otel) Auth {
	return &serviceImpl{
		api:     api,
		session: sess,
		otel:    otl,
	}
}

func (s *serviceImpl) Login(ctx context.Context, creds model.Credentials) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "Auth.Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&creds); err != nil {
		return err
	}

	if _, err = s.api.Login(ctx, creds.Username, creds.Password); err != nil {
		log.Error().Err(err).Str("username", creds.Username).Msg("login failed")

		return err
	}

	log.Info().Str("username", creds.Username).Msg("logged in")

	return nil
}

func (s *serviceImpl) Logout(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "Auth.Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	// The local token is gone either way; a backend error only means
	// the server-side token may outlive it.
	if err = s.api.Logout(ctx); err != nil {
		log.Warn().Err(err).Msg("server-side logout failed, local session cleared anyway")

		return err
	}

	log.Info().Msg("logged out")

	return nil
}

func (s *serviceImpl) Session() model.Session {
	return model.Session{Authenticated: s.session.Token() != ""}
}
