package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"alloggi/infras/bookingapi"
	"alloggi/infras/otel"
	availModel "alloggi/internal/domains/availability/model"
	"alloggi/internal/domains/unit/model"
	"alloggi/internal/domains/unit/model/dto"
	"alloggi/shared/constant"
	"alloggi/shared/timezone"
)

const (
	defaultPage     = 1
	defaultPageSize = 12
	maxPageSize     = 100
)

// Unit is the read side of the catalog: listing, detail and date search.
type Unit interface {
	List(ctx context.Context, page, pageSize int) (dto.GetUnitsResponse, error)
	Get(ctx context.Context, id int) (model.Unit, error)
	// Search returns the units free for the whole stay. The stay is
	// validated locally first; nothing goes out for bad dates.
	Search(ctx context.Context, stay availModel.Stay) ([]model.Unit, error)
}

type serviceImpl struct {
	api  bookingapi.Client
	otel otel.Otel
}

func New(api bookingapi.Client, otl otel.Otel) Unit {
	return &serviceImpl{
		api:  api,
		otel: otl,
	}
}

func (s *serviceImpl) List(ctx context.Context, page, pageSize int) (res dto.GetUnitsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "Unit.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	if page < 1 {
		page = defaultPage
	}

	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	wire, err := s.api.ListUnits(ctx, page, pageSize)
	if err != nil {
		log.Error().Err(err).Int("page", page).Msg("listing units failed")

		return dto.GetUnitsResponse{}, err
	}

	res.FromAPIPage(wire, page, pageSize)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (unit model.Unit, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "Unit.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	wire, err := s.api.GetUnit(ctx, id)
	if err != nil {
		log.Error().Err(err).Int("unit_id", id).Msg("fetching unit failed")

		return model.Unit{}, err
	}

	return dto.FromAPI(wire), nil
}

func (s *serviceImpl) Search(ctx context.Context, stay availModel.Stay) (units []model.Unit, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "Unit.Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = stay.Validate(timezone.Today()); err != nil {
		return nil, err
	}

	wire, err := s.api.SearchAvailableUnits(ctx, stay.CheckIn, stay.CheckOut)
	if err != nil {
		log.Error().Err(err).Msg("availability search failed")

		return nil, err
	}

	return dto.FromAPIList(wire), nil
}
