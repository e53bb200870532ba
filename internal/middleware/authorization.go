package middleware

import (
	"net/http"

	"golden-thread/internal/apperror"
	"golden-thread/internal/auth"

	"go.uber.org/zap"
)

// RequireAdmin middleware ensures the user has admin role. It must run after
// AuthMiddleware.
func RequireAdmin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentity(r.Context())
			if !ok {
				logger.Warn("Identity not found in context")
				RespondWithAppError(w, r, logger, apperror.Forbidden("Admin only"))
				return
			}

			if err := auth.RequireAdmin(identity); err != nil {
				logger.Warn("Non-admin user attempted to access admin endpoint",
					zap.Int64("user_id", identity.UserID),
					zap.String("role", identity.Role),
					zap.String("path", r.URL.Path),
				)
				RespondWithAppError(w, r, logger, apperror.Forbidden("Admin only"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
