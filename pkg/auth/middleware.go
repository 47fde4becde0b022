package auth

import (
	"net/http"
	"strconv"

	"github.com/ku-alexej/shareit/pkg/httpx"
	"github.com/ku-alexej/shareit/pkg/logger"
)

// RequireUser is a chi middleware that reads the X-Sharer-User-Id header and
// injects the caller id into the request context. The id is not verified
// beyond being a positive integer; whether the user exists is a business
// check made by the services.
//
// After this middleware, handlers can safely call auth.UserIDFromCtx(r.Context()).
func RequireUser(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(UserHeader)
			if raw == "" {
				httpx.JSONError(w, http.StatusBadRequest, UserHeader+" header required")
				return
			}

			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id < 1 {
				log.WarnContext(r.Context(), "invalid caller id header", "value", raw)
				httpx.JSONError(w, http.StatusBadRequest, "invalid "+UserHeader+" header")
				return
			}

			ctx := WithUserID(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
