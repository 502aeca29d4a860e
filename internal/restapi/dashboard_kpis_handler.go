package restapi

import (
	"net/http"

	"dashboard.must.dev/internal/invoke"
	"dashboard.must.dev/internal/models"
)

func (api *RestAPI) dashboardKPIsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if ctx.Err() != nil {
		api.serverErrorResponse(w, r, ctx.Err())
		return
	}

	kpis, err := api.Commands.Invoke(ctx, invoke.CommandGetDashboardKPIs, nil)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewListResponse(kpis))
}
