package app

import (
	"log/slog"

	"dashboard.must.dev/internal/appconf"
	"dashboard.must.dev/internal/invoke"
)

// Application holds the dependencies shared by every transport: the HTTP
// handlers, the MCP server and the CLI all dispatch through Commands.
type Application struct {
	Config   appconf.Config
	Logger   *slog.Logger
	Commands *invoke.Registry
}

// New creates an Application with the default dashboard commands registered.
func New(cfg appconf.Config, logger *slog.Logger) *Application {
	if logger == nil {
		logger = slog.Default()
	}
	return &Application{
		Config:   cfg,
		Logger:   logger,
		Commands: invoke.NewDefaultRegistry(),
	}
}
