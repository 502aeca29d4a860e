package restapi

import (
	"encoding/json"
	"net/http"

	"dashboard.must.dev/internal/invoke"
	"dashboard.must.dev/internal/models"
)

func (api *RestAPI) greetHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if ctx.Err() != nil {
		api.serverErrorResponse(w, r, ctx.Err())
		return
	}

	args, err := json.Marshal(invoke.GreetArgs{Name: r.URL.Query().Get("name")})
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	greeting, err := api.Commands.Invoke(ctx, invoke.CommandGreet, args)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(greeting))
}
