package restapi

import (
	"net/http"
	"time"

	"dashboard.must.dev/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}

// Handler wraps routes with the middleware chain. Outermost first: request ID,
// request logging, security headers, compression. Rate limiting is applied per
// route after the API key check.
func (api *RestAPI) Handler(routes http.Handler) http.Handler {
	handler := CompressionMiddleware(routes)
	handler = api.WithSecurityHeaders(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	handler = RequestIDMiddleware(handler)
	return handler
}

// Shutdown releases background resources held by the middleware.
func (api *RestAPI) Shutdown() {
	if api.rateLimiter != nil {
		api.rateLimiter.Stop()
	}
}
