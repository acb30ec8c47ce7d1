package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"skyharbor/booking/internal/common"
	"skyharbor/booking/internal/constants"
	"skyharbor/booking/internal/db/repositories"
	"skyharbor/booking/internal/models/dtos"
	gormModels "skyharbor/booking/internal/models/gorm"
	"skyharbor/booking/internal/services"
)

func ListRoutesHandler(repo *repositories.RouteRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		filter, err := services.RouteFilterFromQuery(r.URL.Query())
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgBadFilter, http.StatusBadRequest)
			return
		}

		routes, err := repo.List(r.Context(), filter)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list routes")
			return
		}

		views := make([]dtos.RouteListView, 0, len(routes))
		for _, route := range routes {
			views = append(views, routeListView(route))
		}

		common.RespondSuccess(w, initTime, "Fetched routes", views)
	}
}

func GetRouteHandler(repo *repositories.RouteRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := idParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgBadFilter, http.StatusBadRequest)
			return
		}

		route, err := repo.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, initTime, nil, constants.MsgNotFound, http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to fetch route")
			return
		}

		common.RespondSuccess(w, initTime, "Fetched route", routeDetailView(*route))
	}
}

func CreateRouteHandler(repo *repositories.RouteRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.RouteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}
		if fields := validateRouteRequest(req); len(fields) > 0 {
			common.RespondFieldErrors(w, initTime, constants.MsgInvalidBody, fields)
			return
		}

		route := gormModels.Route{
			SourceID:      req.Source,
			DestinationID: req.Destination,
			Distance:      req.Distance,
		}
		if err := repo.Create(r.Context(), &route); err != nil {
			if errors.Is(err, repositories.ErrDuplicateRoute) {
				common.RespondError(w, initTime, nil, constants.MsgRouteExists, http.StatusBadRequest)
				return
			}
			common.RespondError(w, initTime, err, "Failed to create route")
			return
		}

		common.RespondSuccess(w, initTime, "Route created", routeDetailView(route), http.StatusCreated)
	}
}

func UpdateRouteHandler(repo *repositories.RouteRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := idParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgBadFilter, http.StatusBadRequest)
			return
		}

		var req dtos.RouteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}
		if fields := validateRouteRequest(req); len(fields) > 0 {
			common.RespondFieldErrors(w, initTime, constants.MsgInvalidBody, fields)
			return
		}

		route := gormModels.Route{
			ID:            id,
			SourceID:      req.Source,
			DestinationID: req.Destination,
			Distance:      req.Distance,
		}
		if err := repo.Update(r.Context(), &route); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, initTime, nil, constants.MsgNotFound, http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to update route")
			return
		}

		updated, err := repo.GetByID(r.Context(), id)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch route")
			return
		}

		common.RespondSuccess(w, initTime, "Route updated", routeDetailView(*updated))
	}
}

func DeleteRouteHandler(repo *repositories.RouteRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := idParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgBadFilter, http.StatusBadRequest)
			return
		}

		if err := repo.Delete(r.Context(), id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, initTime, nil, constants.MsgNotFound, http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to delete route")
			return
		}

		common.RespondSuccess(w, initTime, "Route deleted", nil)
	}
}

func validateRouteRequest(req dtos.RouteRequest) []dtos.FieldError {
	var fields []dtos.FieldError
	if req.Source < 1 {
		fields = append(fields, dtos.FieldError{Field: "source", Message: "must reference an airport"})
	}
	if req.Destination < 1 {
		fields = append(fields, dtos.FieldError{Field: "destination", Message: "must reference an airport"})
	}
	if req.Source >= 1 && req.Source == req.Destination {
		fields = append(fields, dtos.FieldError{Field: "destination", Message: constants.MsgSameAirports})
	}
	if req.Distance <= 1 {
		fields = append(fields, dtos.FieldError{Field: "distance", Message: constants.MsgShortDistance})
	}
	return fields
}
