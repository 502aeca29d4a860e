package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractParam retrieves a route parameter from the request context and removes a ".json" suffix.
func ExtractParam(r *http.Request, paramName string) string {
	params := httprouter.ParamsFromContext(r.Context())
	raw := params.ByName(paramName)
	return strings.TrimSuffix(raw, ".json")
}

// ExtractAPIKey reads the API key from the "key" query parameter, falling back
// to the X-API-Key header.
func ExtractAPIKey(r *http.Request) string {
	if key := r.URL.Query().Get("key"); key != "" {
		return key
	}
	return r.Header.Get("X-API-Key")
}
