package middleware

import (
	"context"
	"net/http"
	"strings"

	"golden-thread/internal/auth"

	"go.uber.org/zap"
)

type contextKey string

const identityKey contextKey = "identity"

// TokenVerifier resolves a bearer token to the identity it was issued for
type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// AuthMiddleware validates bearer tokens and stores the caller identity in
// the request context
func AuthMiddleware(verifier TokenVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := bearerToken(r)
			if tokenString == "" {
				logger.Debug("Missing bearer token", zap.String("path", r.URL.Path))
				RespondWithError(w, http.StatusUnauthorized, "Missing token")
				return
			}

			identity, err := verifier.Verify(tokenString)
			if err != nil {
				logger.Debug("Token validation failed", zap.Error(err))
				RespondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			logger.Debug("User authenticated",
				zap.Int64("user_id", identity.UserID),
				zap.String("role", identity.Role),
			)

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// bearerToken extracts the token from "Authorization: Bearer <token>". A
// header without the scheme is taken as the raw token.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// WithIdentity stores the authenticated identity on ctx
func WithIdentity(ctx context.Context, identity auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentity extracts the authenticated identity from request context
func GetIdentity(ctx context.Context) (auth.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(auth.Identity)
	return identity, ok
}

// GetUserID extracts user ID from request context
func GetUserID(ctx context.Context) (int64, bool) {
	identity, ok := GetIdentity(ctx)
	return identity.UserID, ok
}
