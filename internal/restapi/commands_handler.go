package restapi

import (
	"net/http"

	"dashboard.must.dev/internal/models"
)

// commandsHandler lists what the bridge can invoke, so a front-end can check
// its expectations at start-up.
func (api *RestAPI) commandsHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewListResponse(api.Commands.Commands()))
}
