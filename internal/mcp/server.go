package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"dashboard.must.dev/internal/invoke"
	"dashboard.must.dev/internal/logging"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server is the MCP server for the dashboard backend.
type Server struct {
	commands *invoke.Registry
	logger   *slog.Logger
	server   *mcp.Server
}

// NewServer creates an MCP server whose tools dispatch through commands.
func NewServer(commands *invoke.Registry, logger *slog.Logger) (*Server, error) {
	if commands == nil {
		return nil, ErrMissingRegistry
	}
	if logger == nil {
		logger = slog.Default()
	}

	impl := &mcp.Implementation{
		Name:    "dashboard-backend",
		Version: Version,
	}

	s := &Server{
		commands: commands,
		logger:   logger.With(slog.String("component", "mcp")),
		server:   mcp.NewServer(impl, nil),
	}

	s.registerTools()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(logging.WithLogger(ctx, s.logger), &mcp.StdioTransport{})
}

// Handler returns the streamable HTTP handler for the MCP endpoint.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)
}

// RunHTTP serves the MCP endpoint over HTTP on addr.
// It blocks until the context is cancelled or the listener fails.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
	}

	// serveCtx is also cancelled when the listener fails, releasing the shutdown goroutine
	serveCtx, stop := context.WithCancel(ctx)
	defer stop()

	shutdownDone := make(chan error, 1)
	go func() {
		<-serveCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		shutdownDone <- httpServer.Shutdown(shutdownCtx)
	}()

	s.logger.Info("mcp_http_listening", slog.String("addr", addr))

	err := httpServer.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		stop()
		<-shutdownDone
		return fmt.Errorf("mcp http server: %w", err)
	}
	return <-shutdownDone
}
