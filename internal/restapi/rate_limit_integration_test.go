package restapi

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard.must.dev/internal/app"
	"dashboard.must.dev/internal/appconf"
)

func createRateLimitedTestApi(t *testing.T, ratePerSecond int) *RestAPI {
	application := app.New(appconf.Config{
		Port:      4000,
		EnvName:   "test",
		Env:       appconf.Test,
		ApiKeys:   []string{"TEST", "OTHER"},
		RateLimit: ratePerSecond,
		LogLevel:  "info",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	api := NewRestAPI(application)
	t.Cleanup(api.Shutdown)
	return api
}

func TestRateLimitingIntegration(t *testing.T) {
	tests := []struct {
		name          string
		endpoint      string
		requestCount  int
		expectAllowed int
		expectBlocked int
	}{
		{
			name:          "kpis endpoint over the limit",
			endpoint:      "/api/dashboard/kpis.json?key=TEST",
			requestCount:  10,
			expectAllowed: 5,
			expectBlocked: 5,
		},
		{
			name:          "greet endpoint under the limit",
			endpoint:      "/api/greet.json?key=TEST&name=Ana",
			requestCount:  3,
			expectAllowed: 3,
			expectBlocked: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := createRateLimitedTestApi(t, 5)
			handler := api.Handler(api.Routes())

			allowed, blocked := 0, 0
			for i := 0; i < tt.requestCount; i++ {
				rec := httptest.NewRecorder()
				handler.ServeHTTP(rec, httptest.NewRequest("GET", tt.endpoint, nil))

				switch rec.Code {
				case http.StatusOK:
					allowed++
				case http.StatusTooManyRequests:
					blocked++
				}
			}

			// Tokens refill at 5/s, so a slow run may let one extra request through
			assert.InDelta(t, tt.expectAllowed, allowed, 1)
			assert.InDelta(t, tt.expectBlocked, blocked, 1)
		})
	}
}

func TestRateLimitingPerAPIKey(t *testing.T) {
	api := createRateLimitedTestApi(t, 2)
	handler := api.Handler(api.Routes())

	hitLimit := false
	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/commands.json?key=TEST", nil))
		if rec.Code == http.StatusTooManyRequests {
			hitLimit = true
			break
		}
	}
	require.True(t, hitLimit, "TEST key should hit rate limit within 10 requests")

	// The limit is per key, not per endpoint
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/dashboard/kpis.json?key=TEST", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/dashboard/kpis.json", nil)
	req.Header.Set("X-API-Key", "OTHER")
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code, "a different key has its own bucket")
}

func TestRateLimitingHeaders(t *testing.T) {
	limiter := NewRateLimitMiddleware(1, time.Second)
	t.Cleanup(limiter.Stop)

	handler := limiter.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/commands.json?key=headers", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/commands.json?key=headers", nil))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"code":429`)
	assert.Contains(t, rec.Body.String(), "Rate limit exceeded")
}

func TestRetryAfterSeconds(t *testing.T) {
	tests := []struct {
		rate     int
		interval time.Duration
		want     int
	}{
		{rate: 100, interval: time.Second, want: 1},
		{rate: 1, interval: time.Second, want: 1},
		{rate: 1, interval: 10 * time.Second, want: 10},
		{rate: 2, interval: 5 * time.Second, want: 3},
		{rate: 0, interval: time.Second, want: 1},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.rate)+"/"+tt.interval.String(), func(t *testing.T) {
			limiter := NewRateLimitMiddleware(tt.rate, tt.interval)
			defer limiter.Stop()
			assert.Equal(t, tt.want, limiter.retryAfterSeconds())
		})
	}
}

func TestRateLimitingDisabled(t *testing.T) {
	api := createRateLimitedTestApi(t, 0)
	handler := api.Handler(api.Routes())

	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/commands.json?key=TEST", nil))
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
	}
}

func TestRateLimiterConcurrentKeys(t *testing.T) {
	limiter := NewRateLimitMiddleware(1000, time.Second)
	t.Cleanup(limiter.Stop)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := "key-" + strconv.Itoa(i%4)
			assert.Same(t, limiter.getLimiter(key), limiter.getLimiter(key))
		}(i)
	}
	wg.Wait()

	limiter.mu.RLock()
	defer limiter.mu.RUnlock()
	assert.Len(t, limiter.limiters, 4)
}

func TestRateLimiterStop(t *testing.T) {
	limiter := NewRateLimitMiddleware(5, time.Second)

	limiter.Stop()
	assert.NotPanics(t, limiter.Stop, "Stop is idempotent")

	select {
	case <-limiter.done:
	default:
		t.Fatal("done channel should be closed after Stop")
	}
}

func TestHealthzIsNotRateLimited(t *testing.T) {
	api := createRateLimitedTestApi(t, 2)
	handler := api.Handler(api.Routes())

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/greet.json", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code, "keyless request %d", i+1)
	}

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code, "health check %d", i+1)
	}
}

func TestRejectedKeysDoNotCreateLimiters(t *testing.T) {
	api := createRateLimitedTestApi(t, 2)
	handler := api.Handler(api.Routes())

	for i := 0; i < 100; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/commands.json?key=bogus-"+strconv.Itoa(i), nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	api.rateLimiter.mu.RLock()
	assert.Empty(t, api.rateLimiter.limiters)
	api.rateLimiter.mu.RUnlock()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/commands.json?key=TEST", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	api.rateLimiter.mu.RLock()
	defer api.rateLimiter.mu.RUnlock()
	assert.Len(t, api.rateLimiter.limiters, 1)
}
