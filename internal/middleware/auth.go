package middleware

import (
	"net/http"
	"strings"
	"time"

	"skyharbor/booking/internal/auth"
	"skyharbor/booking/internal/common"
	"skyharbor/booking/internal/constants"
)

// AuthMiddleware rejects requests without a valid bearer token and puts
// the token's claims on the request context for downstream handlers.
func AuthMiddleware(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			initTime := time.Now()

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				common.RespondError(w, initTime, nil, constants.MsgMissingToken, http.StatusUnauthorized)
				return
			}

			raw := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := tokens.Parse(raw)
			if err != nil {
				common.RespondError(w, initTime, nil, constants.MsgInvalidToken, http.StatusUnauthorized)
				return
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
