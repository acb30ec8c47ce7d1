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

const airplaneTypeListCacheKey = string(constants.CachePrefixAirplaneTypes) + "list"

func ListAirplaneTypesHandler(repo *repositories.AirplaneTypeRepository, cache common.CacheInterface, ttl time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		views, err := cache.GetOrSet(airplaneTypeListCacheKey, ttl, func() (any, error) {
			types, err := repo.List(r.Context())
			if err != nil {
				return nil, err
			}
			out := make([]dtos.AirplaneTypeView, 0, len(types))
			for _, t := range types {
				out = append(out, airplaneTypeView(t))
			}
			return out, nil
		})
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list airplane types")
			return
		}

		common.RespondSuccess(w, initTime, "Fetched airplane types", views)
	}
}

func GetAirplaneTypeHandler(repo *repositories.AirplaneTypeRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := idParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgBadFilter, http.StatusBadRequest)
			return
		}

		t, err := repo.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, initTime, nil, constants.MsgNotFound, http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to fetch airplane type")
			return
		}

		common.RespondSuccess(w, initTime, "Fetched airplane type", airplaneTypeView(*t))
	}
}

func CreateAirplaneTypeHandler(repo *repositories.AirplaneTypeRepository, cache common.CacheInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AirplaneTypeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			common.RespondFieldErrors(w, initTime, constants.MsgInvalidBody,
				[]dtos.FieldError{{Field: "name", Message: "must not be empty"}})
			return
		}

		t := gormModels.AirplaneType{Name: req.Name}
		if err := repo.Create(r.Context(), &t); err != nil {
			common.RespondError(w, initTime, err, "Failed to create airplane type")
			return
		}
		cache.Delete(airplaneTypeListCacheKey)

		common.RespondSuccess(w, initTime, "Airplane type created", airplaneTypeView(t), http.StatusCreated)
	}
}

func UpdateAirplaneTypeHandler(repo *repositories.AirplaneTypeRepository, cache common.CacheInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := idParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgBadFilter, http.StatusBadRequest)
			return
		}

		var req dtos.AirplaneTypeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			common.RespondFieldErrors(w, initTime, constants.MsgInvalidBody,
				[]dtos.FieldError{{Field: "name", Message: "must not be empty"}})
			return
		}

		t := gormModels.AirplaneType{ID: id, Name: req.Name}
		if err := repo.Update(r.Context(), &t); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, initTime, nil, constants.MsgNotFound, http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to update airplane type")
			return
		}
		cache.Delete(airplaneTypeListCacheKey)

		common.RespondSuccess(w, initTime, "Airplane type updated", airplaneTypeView(t))
	}
}

func DeleteAirplaneTypeHandler(repo *repositories.AirplaneTypeRepository, cache common.CacheInterface) http.HandlerFunc {
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
			common.RespondError(w, initTime, err, "Failed to delete airplane type")
			return
		}
		cache.Delete(airplaneTypeListCacheKey)

		common.RespondSuccess(w, initTime, "Airplane type deleted", nil)
	}
}
