package api

import (
	"fmt"

	"skyharbor/booking/internal/auth"
	"skyharbor/booking/internal/common"
	"skyharbor/booking/internal/config"
	"skyharbor/booking/internal/db"
	"skyharbor/booking/internal/db/repositories"
	"skyharbor/booking/internal/metrics"
	"skyharbor/booking/internal/services"
)

type Repositories struct {
	Airports      *repositories.AirportRepository
	AirplaneTypes *repositories.AirplaneTypeRepository
	Airplanes     *repositories.AirplaneRepository
	Crew          *repositories.CrewRepository
	Routes        *repositories.RouteRepository
	Flights       *repositories.FlightRepository
	Users         *repositories.UserRepository
	Orders        *repositories.OrderRepository
}

type Services struct {
	Cache     common.CacheInterface
	Tokens    *auth.TokenService
	Auth      *services.AuthService
	Admission *services.AdmissionService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
}

func InitDependencies(cfg config.Config, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	repos := &Repositories{
		Airports:      repositories.NewAirportRepository(db.PgDB),
		AirplaneTypes: repositories.NewAirplaneTypeRepository(db.PgDB),
		Airplanes:     repositories.NewAirplaneRepository(db.PgDB),
		Crew:          repositories.NewCrewRepository(db.PgDB),
		Routes:        repositories.NewRouteRepository(db.PgDB),
		Flights:       repositories.NewFlightRepository(db.PgDB),
		Users:         repositories.NewUserRepository(db.PgDB),
		Orders:        repositories.NewOrderRepository(db.DB),
	}

	var cacheSvc common.CacheInterface
	switch cfg.CacheBackend {
	case "redis":
		redisCache, err := common.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("init redis cache: %w", err)
		}
		cacheSvc = redisCache
	default:
		cacheSvc = common.NewCacheService(cfg.CacheTTLSeconds, cfg.CacheTTLSeconds*2)
	}

	tokenSvc := auth.NewTokenService(cfg.JWTSecret, cfg.AccessTTLMin)

	svcs := &Services{
		Cache:     cacheSvc,
		Tokens:    tokenSvc,
		Auth:      services.NewAuthService(repos.Users, tokenSvc, cfg.BcryptCost),
		Admission: services.NewAdmissionService(repos.Flights, repos.Orders, metricsReg),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
	}, nil
}
