package middleware

import (
	"net/http"
	"time"

	"skyharbor/booking/internal/auth"
	"skyharbor/booking/internal/common"
	"skyharbor/booking/internal/constants"
)

// IsStaffMiddleware gates catalog writes: only staff accounts pass.
func IsStaffMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := auth.GetUserClaims(r.Context())

			if claims == nil || !claims.IsStaff() {
				common.RespondError(w, time.Now(), nil, constants.MsgStaffOnly, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
