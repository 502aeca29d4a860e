package restapi

import (
	"encoding/json"
	"net/http"
)

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	setJSONResponseType(&w)
	err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	if err != nil {
		api.serverErrorResponse(w, r, err)
	}
}
