package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"stayhub/infras/otel"
	"stayhub/internal/domains/place/model"
	"stayhub/internal/domains/place/model/dto"
	"stayhub/internal/domains/place/repository"
	"stayhub/shared"
	"stayhub/shared/failure"

	"github.com/rs/zerolog/log"
)

const otelScopeName = "service.place"

type Place interface {
	Create(ctx context.Context, req dto.CreatePlaceRequest) (int, error)
	GetAll(ctx context.Context) (dto.GetPlacesResponse, error)
	Get(ctx context.Context, id int) (dto.PlaceResponse, error)
}

type serviceImpl struct {
	repo repository.Place
	otel otel.Otel
}

func New(repo repository.Place, otel otel.Otel) Place {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePlaceRequest) (id int, err error) {
	ctx, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	place, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse place request")

		return 0, err
	}

	id, err = s.repo.Insert(ctx, place)
	if err != nil {
		log.Error().Err(err).Msg("failed to create place")

		return 0, fmt.Errorf("failed to create place: %w", err)
	}

	scope.AddEvent("Place created successfully")

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetPlacesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	places, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get places")

		return res, fmt.Errorf("failed to get places: %w", err)
	}

	res.FromModels(places)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.PlaceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	place, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get place")

		return res, fmt.Errorf("failed to get place: %w", err)
	}

	if place.ID == 0 {
		return res, failure.PlaceNotFound
	}

	res.FromModel(place)

	return res, nil
}
