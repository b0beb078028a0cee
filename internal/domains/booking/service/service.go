package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"stayhub/infras/otel"
	"stayhub/internal/domains/booking/model"
	"stayhub/internal/domains/booking/model/dto"
	"stayhub/internal/domains/booking/repository"
	"stayhub/shared"
	"stayhub/shared/failure"

	placeModel "stayhub/internal/domains/place/model"
	placeDto "stayhub/internal/domains/place/model/dto"
	placeRepo "stayhub/internal/domains/place/repository"

	gDto "stayhub/shared/dto"

	"github.com/rs/zerolog/log"
)

const otelScopeName = "service.booking"

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest, placeID int) (int, error)
	List(ctx context.Context, filterName string) (dto.GetBookingsResponse, error)
	ListAll(ctx context.Context) ([]model.Booking, error)
}

type serviceImpl struct {
	repo      repository.Booking
	placeRepo placeRepo.Place
	otel      otel.Otel
}

func New(repo repository.Booking, placeRepo placeRepo.Place, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		placeRepo: placeRepo,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest, placeID int) (id int, err error) {
	ctx, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	// The place must exist before any booking row is written. Double
	// bookings on the same place and date are allowed.
	placeExists, err := s.placeRepo.Exist(ctx, shared.FilterByID(placeID, placeModel.FieldID, placeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if place exists")

		return 0, fmt.Errorf("failed to check if place exists: %w", err)
	}

	if !placeExists {
		return 0, failure.PlaceNotFound
	}

	id, err = s.repo.Insert(ctx, req.ToModel(placeID))
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return 0, fmt.Errorf("failed to create booking: %w", err)
	}

	scope.AddEvent("Booking created successfully")

	return id, nil
}

// List returns bookings for the admin view, each with its place resolved.
// A non-empty filterName keeps only bookings whose user_name contains it as
// a case-sensitive substring.
func (s *serviceImpl) List(ctx context.Context, filterName string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{}
	if filterName != "" {
		filter = shared.FilterByContains(filterName, model.FieldUserName, model.TableName)
	}

	bookings, err := s.repo.GetAll(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings)

	places := map[int]placeDto.PlaceResponse{}

	for index := range res.Bookings {
		placeID := res.Bookings[index].PlaceID

		place, ok := places[placeID]
		if !ok {
			place, err = s.resolvePlace(ctx, placeID)
			if err != nil {
				return res, err
			}

			places[placeID] = place
		}

		res.Bookings[index].Place = place
	}

	return res, nil
}

// ListAll returns every booking in fetch order for the export generators.
func (s *serviceImpl) ListAll(ctx context.Context) (res []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".ListAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.GetAll(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) resolvePlace(ctx context.Context, placeID int) (res placeDto.PlaceResponse, err error) {
	place, err := s.placeRepo.Get(ctx, shared.FilterByID(placeID, placeModel.FieldID, placeModel.TableName))
	if err != nil {
		log.Error().Err(err).Int("placeID", placeID).Msg("failed to resolve place for booking")

		return res, fmt.Errorf("failed to resolve place for booking: %w", err)
	}

	res.FromModel(place)

	return res, nil
}
