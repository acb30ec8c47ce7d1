package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"skyharbor/booking/internal/common"
	"skyharbor/booking/internal/constants"
	"skyharbor/booking/internal/db/repositories"
	"skyharbor/booking/internal/models/dtos"
	gormModels "skyharbor/booking/internal/models/gorm"
)

func ListCrewHandler(repo *repositories.CrewRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		crew, err := repo.List(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list crew")
			return
		}

		views := make([]dtos.CrewView, 0, len(crew))
		for _, c := range crew {
			views = append(views, crewView(c))
		}

		common.RespondSuccess(w, initTime, "Fetched crew", views)
	}
}

func CreateCrewHandler(repo *repositories.CrewRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CrewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}

		var fields []dtos.FieldError
		if strings.TrimSpace(req.FirstName) == "" {
			fields = append(fields, dtos.FieldError{Field: "first_name", Message: "must not be empty"})
		}
		if strings.TrimSpace(req.LastName) == "" {
			fields = append(fields, dtos.FieldError{Field: "last_name", Message: "must not be empty"})
		}
		if len(fields) > 0 {
			common.RespondFieldErrors(w, initTime, constants.MsgInvalidBody, fields)
			return
		}

		member := gormModels.Crew{FirstName: req.FirstName, LastName: req.LastName}
		if err := repo.Create(r.Context(), &member); err != nil {
			common.RespondError(w, initTime, err, "Failed to create crew member")
			return
		}

		common.RespondSuccess(w, initTime, "Crew member created", crewView(member), http.StatusCreated)
	}
}
