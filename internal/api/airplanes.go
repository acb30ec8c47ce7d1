package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"skyharbor/booking/internal/common"
	"skyharbor/booking/internal/constants"
	"skyharbor/booking/internal/db/repositories"
	"skyharbor/booking/internal/models/dtos"
	gormModels "skyharbor/booking/internal/models/gorm"
	"skyharbor/booking/internal/services"
)

func ListAirplanesHandler(repo *repositories.AirplaneRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		filter, err := services.AirplaneFilterFromQuery(r.URL.Query())
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgBadFilter, http.StatusBadRequest)
			return
		}

		airplanes, err := repo.List(r.Context(), filter)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list airplanes")
			return
		}

		views := make([]dtos.AirplaneListView, 0, len(airplanes))
		for _, a := range airplanes {
			views = append(views, airplaneListView(a))
		}

		common.RespondSuccess(w, initTime, "Fetched airplanes", views)
	}
}

func GetAirplaneHandler(repo *repositories.AirplaneRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := idParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgBadFilter, http.StatusBadRequest)
			return
		}

		airplane, err := repo.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, initTime, nil, constants.MsgNotFound, http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to fetch airplane")
			return
		}

		common.RespondSuccess(w, initTime, "Fetched airplane", airplaneDetailView(*airplane))
	}
}

func CreateAirplaneHandler(repo *repositories.AirplaneRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AirplaneRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}
		if fields := validateAirplaneRequest(req); len(fields) > 0 {
			common.RespondFieldErrors(w, initTime, constants.MsgInvalidBody, fields)
			return
		}

		airplane := gormModels.Airplane{
			Name:       req.Name,
			Rows:       req.Rows,
			SeatsInRow: req.SeatsInRow,
			TypeID:     req.Type,
		}
		if err := repo.Create(r.Context(), &airplane); err != nil {
			common.RespondError(w, initTime, err, "Failed to create airplane")
			return
		}

		common.RespondSuccess(w, initTime, "Airplane created", airplaneDetailView(airplane), http.StatusCreated)
	}
}

func UpdateAirplaneHandler(repo *repositories.AirplaneRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := idParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgBadFilter, http.StatusBadRequest)
			return
		}

		var req dtos.AirplaneRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}
		if fields := validateAirplaneRequest(req); len(fields) > 0 {
			common.RespondFieldErrors(w, initTime, constants.MsgInvalidBody, fields)
			return
		}

		airplane := gormModels.Airplane{
			ID:         id,
			Name:       req.Name,
			Rows:       req.Rows,
			SeatsInRow: req.SeatsInRow,
			TypeID:     req.Type,
		}
		if err := repo.Update(r.Context(), &airplane); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, initTime, nil, constants.MsgNotFound, http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to update airplane")
			return
		}

		updated, err := repo.GetByID(r.Context(), id)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch airplane")
			return
		}

		common.RespondSuccess(w, initTime, "Airplane updated", airplaneDetailView(*updated))
	}
}

func DeleteAirplaneHandler(repo *repositories.AirplaneRepository) http.HandlerFunc {
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
			common.RespondError(w, initTime, err, "Failed to delete airplane")
			return
		}

		common.RespondSuccess(w, initTime, "Airplane deleted", nil)
	}
}

func validateAirplaneRequest(req dtos.AirplaneRequest) []dtos.FieldError {
	var fields []dtos.FieldError
	if strings.TrimSpace(req.Name) == "" {
		fields = append(fields, dtos.FieldError{Field: "name", Message: "must not be empty"})
	}
	if req.Rows < 1 {
		fields = append(fields, dtos.FieldError{Field: "rows", Message: "must be a positive number"})
	}
	if req.SeatsInRow < 1 {
		fields = append(fields, dtos.FieldError{Field: "seats_in_row", Message: "must be a positive number"})
	}
	if req.Type < 1 {
		fields = append(fields, dtos.FieldError{Field: "type", Message: "must reference an airplane type"})
	}
	return fields
}
