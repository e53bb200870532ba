package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golden-thread/internal/auth"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func protected(t *testing.T, issuer *auth.Issuer) http.Handler {
	t.Helper()
	return AuthMiddleware(issuer, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := GetIdentity(r.Context())
		if !ok {
			t.Fatal("identity missing from context")
		}
		RespondWithJSON(w, http.StatusOK, map[string]interface{}{"id": identity.UserID, "role": identity.Role})
	}))
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestAuthMiddleware(t *testing.T) {
	issuer := auth.NewIssuer("test-secret", time.Hour)
	handler := protected(t, issuer)

	token, err := issuer.Issue(7, "ayesha@example.com", "customer")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
	}{
		{name: "no header", wantStatus: http.StatusUnauthorized, wantError: "Missing token"},
		{name: "empty bearer", header: "Bearer ", wantStatus: http.StatusUnauthorized, wantError: "Missing token"},
		{name: "garbage", header: "Bearer not.a.jwt", wantStatus: http.StatusUnauthorized, wantError: "Invalid token"},
		{name: "valid", header: "Bearer " + token, wantStatus: http.StatusOK},
		{name: "raw token", header: token, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/orders/my", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, errorMessage(t, w))
			}
		})
	}
}

func TestAuthMiddleware_ForeignSecret(t *testing.T) {
	handler := protected(t, auth.NewIssuer("test-secret", time.Hour))

	token, err := auth.NewIssuer("other-secret", time.Hour).Issue(1, "a@b.c", "admin")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token", errorMessage(t, w))
}

func TestProperty_ExpiredTokensAreRejected(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("tokens past their ttl are rejected", prop.ForAll(
		func(userID int64, hoursLate int) bool {
			issued := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
			signer := auth.NewIssuer("test-secret", time.Hour).WithClock(func() time.Time { return issued })
			token, err := signer.Issue(userID, "user@example.com", "customer")
			if err != nil {
				return false
			}

			late := issued.Add(time.Hour + time.Duration(hoursLate)*time.Hour + time.Second)
			verifier := auth.NewIssuer("test-secret", time.Hour).WithClock(func() time.Time { return late })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			AuthMiddleware(verifier, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})).ServeHTTP(w, req)

			return w.Code == http.StatusUnauthorized
		},
		gen.Int64Range(1, 1_000_000),
		gen.IntRange(0, 24*30),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		identity   *auth.Identity
		wantStatus int
	}{
		{name: "no identity", wantStatus: http.StatusForbidden},
		{name: "customer", identity: &auth.Identity{UserID: 2, Role: "customer"}, wantStatus: http.StatusForbidden},
		{name: "admin", identity: &auth.Identity{UserID: 1, Role: "admin"}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
			if tt.identity != nil {
				req = req.WithContext(WithIdentity(req.Context(), *tt.identity))
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusForbidden {
				assert.Equal(t, "Admin only", errorMessage(t, w))
			}
		})
	}
}

func TestGetUserID_EmptyContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := GetUserID(req.Context())
	assert.False(t, ok)
}
