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
)

const airportListCacheKey = string(constants.CachePrefixAirports) + "list"

// ListAirportsHandler serves the cached airport listing.
func ListAirportsHandler(repo *repositories.AirportRepository, cache common.CacheInterface, ttl time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		views, err := cache.GetOrSet(airportListCacheKey, ttl, func() (any, error) {
			airports, err := repo.List(r.Context())
			if err != nil {
				return nil, err
			}
			out := make([]dtos.AirportView, 0, len(airports))
			for _, a := range airports {
				out = append(out, airportView(a))
			}
			return out, nil
		})
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list airports")
			return
		}

		common.RespondSuccess(w, initTime, "Fetched airports", views)
	}
}

func GetAirportHandler(repo *repositories.AirportRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := idParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgBadFilter, http.StatusBadRequest)
			return
		}

		airport, err := repo.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, initTime, nil, constants.MsgNotFound, http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to fetch airport")
			return
		}

		common.RespondSuccess(w, initTime, "Fetched airport", airportView(*airport))
	}
}

func CreateAirportHandler(repo *repositories.AirportRepository, cache common.CacheInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AirportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}
		if fields := validateAirportRequest(req); len(fields) > 0 {
			common.RespondFieldErrors(w, initTime, constants.MsgInvalidBody, fields)
			return
		}

		airport := gormModels.Airport{
			Name:           req.Name,
			ClosestBigCity: req.ClosestBigCity,
		}
		if err := repo.Create(r.Context(), &airport); err != nil {
			common.RespondError(w, initTime, err, "Failed to create airport")
			return
		}
		cache.Delete(airportListCacheKey)

		common.RespondSuccess(w, initTime, "Airport created", airportView(airport), http.StatusCreated)
	}
}

func UpdateAirportHandler(repo *repositories.AirportRepository, cache common.CacheInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := idParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgBadFilter, http.StatusBadRequest)
			return
		}

		var req dtos.AirportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}
		if fields := validateAirportRequest(req); len(fields) > 0 {
			common.RespondFieldErrors(w, initTime, constants.MsgInvalidBody, fields)
			return
		}

		airport := gormModels.Airport{
			ID:             id,
			Name:           req.Name,
			ClosestBigCity: req.ClosestBigCity,
		}
		if err := repo.Update(r.Context(), &airport); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, initTime, nil, constants.MsgNotFound, http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to update airport")
			return
		}
		cache.Delete(airportListCacheKey)

		common.RespondSuccess(w, initTime, "Airport updated", airportView(airport))
	}
}

func DeleteAirportHandler(repo *repositories.AirportRepository, cache common.CacheInterface) http.HandlerFunc {
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
			common.RespondError(w, initTime, err, "Failed to delete airport")
			return
		}
		cache.Delete(airportListCacheKey)

		common.RespondSuccess(w, initTime, "Airport deleted", nil)
	}
}

func validateAirportRequest(req dtos.AirportRequest) []dtos.FieldError {
	var fields []dtos.FieldError
	if strings.TrimSpace(req.Name) == "" {
		fields = append(fields, dtos.FieldError{Field: "name", Message: "must not be empty"})
	}
	if strings.TrimSpace(req.ClosestBigCity) == "" {
		fields = append(fields, dtos.FieldError{Field: "closest_big_city", Message: "must not be empty"})
	}
	return fields
}
