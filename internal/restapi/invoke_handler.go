package restapi

import (
	"errors"
	"io"
	"net/http"

	"dashboard.must.dev/internal/invoke"
	"dashboard.must.dev/internal/logging"
	"dashboard.must.dev/internal/models"
	"dashboard.must.dev/internal/utils"
)

// maxArgsBytes bounds the JSON argument body of a single invocation.
const maxArgsBytes = 1 << 20

// invokeHandler is the HTTP form of the host's invoke(name, args): the path names
// the command and the body carries its JSON arguments.
func (api *RestAPI) invokeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if ctx.Err() != nil {
		api.serverErrorResponse(w, r, ctx.Err())
		return
	}

	// A malformed name can never be registered, so it is as unknown as any other
	name := utils.ExtractParam(r, "command")
	if utils.ValidateCommandName(name) != nil {
		api.sendNotFound(w, r)
		return
	}

	defer logging.SafeCloseWithLogging(r.Body, logging.FromContext(ctx), "invoke_request_body")

	args, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxArgsBytes))
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"args": {"request body too large or unreadable"},
		})
		return
	}

	result, err := api.Commands.Invoke(ctx, name, args)
	switch {
	case errors.Is(err, invoke.ErrUnknownCommand):
		api.sendNotFound(w, r)
		return
	case errors.Is(err, invoke.ErrInvalidArguments):
		api.validationErrorResponse(w, r, map[string][]string{
			"args": {err.Error()},
		})
		return
	case err != nil:
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewOKResponse(result))
}
