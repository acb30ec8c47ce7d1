package routes

import (
	"time"

	"github.com/go-chi/chi/v5"

	"skyharbor/booking/internal/api"
	"skyharbor/booking/internal/config"
	"skyharbor/booking/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers.
// Reads on the catalog require a valid token; writes are staff-only.
// Orders are always scoped to the authenticated caller.
func RegisterAPIRoutes(r chi.Router, cfg config.Config, deps *api.Dependencies) {
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second

	r.Route("/api/v1", func(v1 chi.Router) {
		// Public: account creation and login, rate limited per client IP.
		v1.Group(func(public chi.Router) {
			public.Use(middleware.RateLimitMiddleware)
			public.Post("/users/register", api.RegisterUserHandler(deps.Services.Auth))
			public.Post("/users/login", api.LoginHandler(deps.Services.Auth))
		})

		// Everything else requires a valid access token.
		v1.Group(func(authed chi.Router) {
			authed.Use(middleware.AuthMiddleware(deps.Services.Tokens))

			authed.Get("/users/me", api.MeHandler(deps.Services.Auth))

			authed.Get("/airports", api.ListAirportsHandler(deps.Repo.Airports, deps.Services.Cache, cacheTTL))
			authed.Get("/airports/{id}", api.GetAirportHandler(deps.Repo.Airports))

			authed.Get("/airplane_types", api.ListAirplaneTypesHandler(deps.Repo.AirplaneTypes, deps.Services.Cache, cacheTTL))
			authed.Get("/airplane_types/{id}", api.GetAirplaneTypeHandler(deps.Repo.AirplaneTypes))

			authed.Get("/airplanes", api.ListAirplanesHandler(deps.Repo.Airplanes))
			authed.Get("/airplanes/{id}", api.GetAirplaneHandler(deps.Repo.Airplanes))

			authed.Get("/crew", api.ListCrewHandler(deps.Repo.Crew))

			authed.Get("/routes", api.ListRoutesHandler(deps.Repo.Routes))
			authed.Get("/routes/{id}", api.GetRouteHandler(deps.Repo.Routes))

			authed.Get("/flights", api.ListFlightsHandler(deps.Repo.Flights))
			authed.Get("/flights/{id}", api.GetFlightHandler(deps.Repo.Flights, deps.Repo.Orders))

			authed.Post("/orders", api.CreateOrderHandler(deps.Services.Admission, deps.Repo.Flights))
			authed.Get("/orders", api.ListOrdersHandler(deps.Services.Admission, deps.Repo.Flights))

			// Staff-only catalog management.
			authed.Group(func(staff chi.Router) {
				staff.Use(middleware.IsStaffMiddleware())

				staff.Post("/airports", api.CreateAirportHandler(deps.Repo.Airports, deps.Services.Cache))
				staff.Put("/airports/{id}", api.UpdateAirportHandler(deps.Repo.Airports, deps.Services.Cache))
				staff.Delete("/airports/{id}", api.DeleteAirportHandler(deps.Repo.Airports, deps.Services.Cache))

				staff.Post("/airplane_types", api.CreateAirplaneTypeHandler(deps.Repo.AirplaneTypes, deps.Services.Cache))
				staff.Put("/airplane_types/{id}", api.UpdateAirplaneTypeHandler(deps.Repo.AirplaneTypes, deps.Services.Cache))
				staff.Delete("/airplane_types/{id}", api.DeleteAirplaneTypeHandler(deps.Repo.AirplaneTypes, deps.Services.Cache))

				staff.Post("/airplanes", api.CreateAirplaneHandler(deps.Repo.Airplanes))
				staff.Put("/airplanes/{id}", api.UpdateAirplaneHandler(deps.Repo.Airplanes))
				staff.Delete("/airplanes/{id}", api.DeleteAirplaneHandler(deps.Repo.Airplanes))

				staff.Post("/crew", api.CreateCrewHandler(deps.Repo.Crew))

				staff.Post("/routes", api.CreateRouteHandler(deps.Repo.Routes))
				staff.Put("/routes/{id}", api.UpdateRouteHandler(deps.Repo.Routes))
				staff.Delete("/routes/{id}", api.DeleteRouteHandler(deps.Repo.Routes))

				staff.Post("/flights", api.CreateFlightHandler(deps.Repo.Flights, deps.Repo.Crew))
				staff.Put("/flights/{id}", api.UpdateFlightHandler(deps.Repo.Flights, deps.Repo.Crew))
				staff.Delete("/flights/{id}", api.DeleteFlightHandler(deps.Repo.Flights))
			})
		})
	})
}
