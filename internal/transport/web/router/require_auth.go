package router

import (
	"net/http"

	"github.com/ppx123-web/wechat-article/internal/domain"
)

func requireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := domain.UserIDFromContext(r.Context())
		if userID == "" {
			logger := domain.LoggerFromContext(r.Context())
			logger.WarnContext(r.Context(), "rejecting unauthenticated request")
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeUnauthorized(w, "Authentication required.")
			return
		}

		next.ServeHTTP(w, r)
	})
}
