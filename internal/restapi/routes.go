package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

// validateAPIKey rejects requests without a configured key. Only accepted keys
// reach the rate limiter, so its buckets are bounded by the key list.
func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	var limited http.Handler = http.HandlerFunc(finalHandler)
	if api.rateLimiter != nil {
		limited = api.rateLimiter.Handler(limited)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		limited.ServeHTTP(w, r)
	})
}

// SetRoutes registers the bridge endpoints on router.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodPost, "/invoke/:command", validateAPIKey(api, api.invokeHandler))
	router.Handler(http.MethodGet, "/api/greet.json", validateAPIKey(api, api.greetHandler))
	router.Handler(http.MethodGet, "/api/dashboard/kpis.json", validateAPIKey(api, api.dashboardKPIsHandler))
	router.Handler(http.MethodGet, "/api/commands.json", validateAPIKey(api, api.commandsHandler))
	router.HandlerFunc(http.MethodGet, "/healthz", api.healthHandler)

	router.NotFound = http.HandlerFunc(api.sendNotFound)
	router.MethodNotAllowed = http.HandlerFunc(api.sendMethodNotAllowed)
}

// Routes returns a router with the bridge endpoints registered.
func (api *RestAPI) Routes() *httprouter.Router {
	router := httprouter.New()
	api.SetRoutes(router)
	return router
}
