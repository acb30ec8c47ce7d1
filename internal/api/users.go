package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"skyharbor/booking/internal/auth"
	"skyharbor/booking/internal/common"
	"skyharbor/booking/internal/constants"
	"skyharbor/booking/internal/db/repositories"
	"skyharbor/booking/internal/models/dtos"
	"skyharbor/booking/internal/services"
)

const minPasswordLength = 8

func RegisterUserHandler(authSvc *services.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.RegisterUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}

		var fields []dtos.FieldError
		if !strings.Contains(req.Email, "@") {
			fields = append(fields, dtos.FieldError{Field: "email", Message: "must be a valid email address"})
		}
		if len(req.Password) < minPasswordLength {
			fields = append(fields, dtos.FieldError{Field: "password", Message: "must be at least 8 characters"})
		}
		if len(fields) > 0 {
			common.RespondFieldErrors(w, initTime, constants.MsgInvalidBody, fields)
			return
		}

		user, err := authSvc.Register(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, repositories.ErrEmailTaken) {
				common.RespondFieldErrors(w, initTime, constants.MsgEmailTaken,
					[]dtos.FieldError{{Field: "email", Message: constants.MsgEmailTaken}})
				return
			}
			common.RespondError(w, initTime, err, "Failed to register user")
			return
		}

		common.RespondSuccess(w, initTime, "User registered", userView(*user), http.StatusCreated)
	}
}

func LoginHandler(authSvc *services.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}

		token, expiresAt, err := authSvc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrBadCredentials) {
				common.RespondError(w, initTime, nil, constants.MsgBadCredentials, http.StatusUnauthorized)
				return
			}
			common.RespondError(w, initTime, err, "Failed to log in")
			return
		}

		common.RespondSuccess(w, initTime, "Logged in", dtos.TokenResponse{
			AccessToken: token,
			ExpiresAt:   expiresAt,
		})
	}
}

func MeHandler(authSvc *services.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, constants.MsgMissingToken, http.StatusUnauthorized)
			return
		}

		user, err := authSvc.Profile(r.Context(), claims.UserID())
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, initTime, nil, constants.MsgNotFound, http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to fetch profile")
			return
		}

		common.RespondSuccess(w, initTime, "Fetched profile", userView(*user))
	}
}
