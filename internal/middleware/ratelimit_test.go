package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"golden-thread/internal/auth"

	"github.com/alicebob/miniredis/v2"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func limited(client *redis.Client, limit int) http.Handler {
	cfg := RateLimitConfig{RequestsPerWindow: limit, Window: time.Minute, KeyPrefix: "gt:test"}
	return RateLimitMiddleware(client, cfg, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func hit(h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestProperty_RateLimitingBlocksExcessiveRequests(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("requests past the limit get 429", prop.ForAll(
		func(limit, excess int) bool {
			mr, err := miniredis.Run()
			if err != nil {
				return false
			}
			defer mr.Close()
			client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
			defer client.Close()

			h := limited(client, limit)
			for i := 0; i < limit; i++ {
				if hit(h, "10.0.0.1:5000").Code != http.StatusOK {
					return false
				}
			}
			for i := 0; i < excess; i++ {
				if hit(h, "10.0.0.1:5000").Code != http.StatusTooManyRequests {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 20),
		gen.IntRange(1, 5),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestRateLimit_Headers(t *testing.T) {
	_, client := newRedis(t)
	h := limited(client, 2)

	first := hit(h, "10.0.0.2:1")
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	hit(h, "10.0.0.2:1")
	blocked := hit(h, "10.0.0.2:1")
	require.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "Too many requests", errorMessage(t, blocked))
	assert.Equal(t, "0", blocked.Header().Get("X-RateLimit-Remaining"))

	retry, err := strconv.Atoi(blocked.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.InDelta(t, 60, retry, 1)
}

func TestRateLimit_WindowExpires(t *testing.T) {
	mr, client := newRedis(t)
	h := limited(client, 1)

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.3:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.3:1").Code)

	mr.FastForward(time.Minute + time.Second)

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.3:1").Code)
}

func TestRateLimit_ClientsCountedSeparately(t *testing.T) {
	_, client := newRedis(t)
	h := limited(client, 1)

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.4:1").Code)
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.5:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.4:2").Code)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.RemoteAddr = "10.0.0.4:1"
	req = req.WithContext(WithIdentity(req.Context(), auth.Identity{UserID: 9, Role: "customer"}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit_FailsOpen(t *testing.T) {
	mr, client := newRedis(t)
	h := limited(client, 1)
	mr.Close()

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(h, "10.0.0.6:1").Code)
	}
}

func TestPassthrough(t *testing.T) {
	called := false
	h := Passthrough(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, called)
}

func stackWithLimit(client *redis.Client, trustProxy bool, limit int) http.Handler {
	var h http.Handler = limited(client, limit)
	stack := DefaultMiddlewareStack(trustProxy)
	for i := len(stack) - 1; i >= 0; i-- {
		h = stack[i](h)
	}
	return h
}

func hitForwarded(h http.Handler, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "203.0.113.7:40000"
	req.Header.Set("X-Forwarded-For", forwardedFor)
	req.Header.Set("X-Real-IP", forwardedFor)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit_IgnoresForwardingHeadersByDefault(t *testing.T) {
	_, client := newRedis(t)
	h := stackWithLimit(client, false, 2)

	var codes []int
	for i := 0; i < 6; i++ {
		codes = append(codes, hitForwarded(h, "10.0.0."+strconv.Itoa(i)))
	}

	assert.Equal(t, []int{200, 200, 429, 429, 429, 429}, codes)
}

func TestRateLimit_TrustedProxyKeysOnForwardedClient(t *testing.T) {
	_, client := newRedis(t)
	h := stackWithLimit(client, true, 1)

	assert.Equal(t, http.StatusOK, hitForwarded(h, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, hitForwarded(h, "10.0.0.2"))
	assert.Equal(t, http.StatusTooManyRequests, hitForwarded(h, "10.0.0.1"))
}
