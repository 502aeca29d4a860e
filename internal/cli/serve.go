package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"dashboard.must.dev/internal/app"
	"dashboard.must.dev/internal/appconf"
	"dashboard.must.dev/internal/restapi"
	"dashboard.must.dev/internal/webui"
)

const shutdownTimeout = 10 * time.Second

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP command bridge",
		Long: `Start the HTTP server the dashboard front-end invokes commands through.

The server stops gracefully on SIGINT or SIGTERM. In the development
environment the /debug/ pages are mounted as well.`,
		Example: `  dashboard-backend serve --port 4000 --api-keys local-dev
  DASHBOARD_ENV=production dashboard-backend serve`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := applicationFrom(cmd.Context())
			if err != nil {
				return err
			}

			api := restapi.NewRestAPI(application)
			defer api.Shutdown()

			srv := newHTTPServer(application, api)
			return runServer(cmd.Context(), srv, application.Logger)
		},
	}
}

func newHTTPServer(application *app.Application, api *restapi.RestAPI) *http.Server {
	router := api.Routes()
	if application.Config.Env == appconf.Development {
		webui.New(application).SetWebUIRoutes(router)
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", application.Config.Port),
		Handler:      api.Handler(router),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(application.Logger.Handler(), slog.LevelError),
	}
}

// runServer serves until ctx is cancelled, then shuts srv down gracefully.
func runServer(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	logger.Info("server stopped")
	return nil
}
