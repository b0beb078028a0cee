//go:build wireinject
// +build wireinject

package di

import (
	"stayhub/config"
	"stayhub/infras/otel"
	"stayhub/infras/postgres"
	"stayhub/infras/redis"
	"stayhub/shared/cache"
	"stayhub/shared/flash"
	"stayhub/transport/http"
	"stayhub/transport/http/middleware"
	"stayhub/transport/http/router"
	"stayhub/transport/http/view"

	bookingRepository "stayhub/internal/domains/booking/repository"
	bookingService "stayhub/internal/domains/booking/service"
	placeRepository "stayhub/internal/domains/place/repository"
	placeService "stayhub/internal/domains/place/service"

	adminHandler "stayhub/internal/handlers/admin"
	bookingHandler "stayhub/internal/handlers/booking"
	exportHandler "stayhub/internal/handlers/export"
	healthHandler "stayhub/internal/handlers/health"
	placeHandler "stayhub/internal/handlers/place"
	webHandler "stayhub/internal/handlers/web"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	flash.New,
	view.New,
)

var placeDomain = wire.NewSet(
	placeRepository.New,
	placeService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	placeDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	webHandler.New,
	placeHandler.New,
	bookingHandler.New,
	adminHandler.New,
	exportHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
