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

func ListFlightsHandler(repo *repositories.FlightRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		filter, err := services.FlightFilterFromQuery(r.URL.Query())
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgBadFilter, http.StatusBadRequest)
			return
		}
		page, pageSize, err := services.PaginationFromQuery(r.URL.Query())
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgBadFilter, http.StatusBadRequest)
			return
		}

		flights, count, err := repo.List(r.Context(), filter, page, pageSize)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list flights")
			return
		}

		views := make([]dtos.FlightListView, 0, len(flights))
		for _, f := range flights {
			views = append(views, flightListView(f))
		}

		common.RespondSuccess(w, initTime, "Fetched flights", dtos.PageView{
			Count:    count,
			Page:     page,
			PageSize: pageSize,
			Results:  views,
		})
	}
}

// GetFlightHandler returns the flight detail, including every seat that is
// already taken on it.
func GetFlightHandler(flights *repositories.FlightRepository, orders *repositories.OrderRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := idParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgBadFilter, http.StatusBadRequest)
			return
		}

		flight, err := flights.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, initTime, nil, constants.MsgNotFound, http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to fetch flight")
			return
		}

		taken, err := orders.TicketsForFlight(r.Context(), id)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch taken places")
			return
		}

		common.RespondSuccess(w, initTime, "Fetched flight", flightDetailView(*flight, taken))
	}
}

func CreateFlightHandler(flights *repositories.FlightRepository, crew *repositories.CrewRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.FlightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}
		if fields := validateFlightRequest(req); len(fields) > 0 {
			common.RespondFieldErrors(w, initTime, constants.MsgInvalidBody, fields)
			return
		}

		members, err := crew.GetByIDs(r.Context(), req.Crew)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondFieldErrors(w, initTime, constants.MsgInvalidBody,
					[]dtos.FieldError{{Field: "crew", Message: "references an unknown crew member"}})
				return
			}
			common.RespondError(w, initTime, err, "Failed to resolve crew")
			return
		}

		flight := gormModels.Flight{
			RouteID:       req.Route,
			AirplaneID:    req.Airplane,
			DepartureTime: req.DepartureTime,
			ArrivalTime:   req.ArrivalTime,
			Crew:          members,
		}
		if err := flights.Create(r.Context(), &flight); err != nil {
			common.RespondError(w, initTime, err, "Failed to create flight")
			return
		}

		common.RespondSuccess(w, initTime, "Flight created", flightDetailView(flight, nil), http.StatusCreated)
	}
}

func UpdateFlightHandler(flights *repositories.FlightRepository, crew *repositories.CrewRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := idParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgBadFilter, http.StatusBadRequest)
			return
		}

		var req dtos.FlightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}
		if fields := validateFlightRequest(req); len(fields) > 0 {
			common.RespondFieldErrors(w, initTime, constants.MsgInvalidBody, fields)
			return
		}

		members, err := crew.GetByIDs(r.Context(), req.Crew)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondFieldErrors(w, initTime, constants.MsgInvalidBody,
					[]dtos.FieldError{{Field: "crew", Message: "references an unknown crew member"}})
				return
			}
			common.RespondError(w, initTime, err, "Failed to resolve crew")
			return
		}

		flight := gormModels.Flight{
			ID:            id,
			RouteID:       req.Route,
			AirplaneID:    req.Airplane,
			DepartureTime: req.DepartureTime,
			ArrivalTime:   req.ArrivalTime,
		}
		if err := flights.Update(r.Context(), &flight, members); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, initTime, nil, constants.MsgNotFound, http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to update flight")
			return
		}

		updated, err := flights.GetByID(r.Context(), id)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch flight")
			return
		}

		common.RespondSuccess(w, initTime, "Flight updated", flightDetailView(*updated, nil))
	}
}

func DeleteFlightHandler(repo *repositories.FlightRepository) http.HandlerFunc {
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
			common.RespondError(w, initTime, err, "Failed to delete flight")
			return
		}

		common.RespondSuccess(w, initTime, "Flight deleted", nil)
	}
}

func validateFlightRequest(req dtos.FlightRequest) []dtos.FieldError {
	var fields []dtos.FieldError
	if req.Route < 1 {
		fields = append(fields, dtos.FieldError{Field: "route", Message: "must reference a route"})
	}
	if req.Airplane < 1 {
		fields = append(fields, dtos.FieldError{Field: "airplane", Message: "must reference an airplane"})
	}
	if req.DepartureTime.IsZero() {
		fields = append(fields, dtos.FieldError{Field: "departure_time", Message: "must be set"})
	}
	if req.ArrivalTime.IsZero() {
		fields = append(fields, dtos.FieldError{Field: "arrival_time", Message: "must be set"})
	}
	return fields
}
