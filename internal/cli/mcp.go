package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"dashboard.must.dev/internal/mcp"
)

// NewMCPCommand creates the mcp command.
func NewMCPCommand() *cobra.Command {
	var httpAddr string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the commands as MCP tools",
		Long: `Start a Model Context Protocol server exposing greet and get_dashboard_kpis
as tools.

By default the server talks JSON-RPC over stdio. Use --http (or the mcp_addr
config key) to serve the streamable HTTP transport instead.`,
		Example: `  # Stdio mode
  dashboard-backend mcp

  # HTTP mode
  dashboard-backend mcp --http localhost:8090`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := applicationFrom(cmd.Context())
			if err != nil {
				return err
			}

			server, err := mcp.NewServer(application.Commands, application.Logger)
			if err != nil {
				return err
			}

			addr := httpAddr
			if addr == "" {
				addr = application.Config.MCPAddr
			}

			if addr != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://%s\n", addr)
				return server.RunHTTP(cmd.Context(), addr)
			}

			return server.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&httpAddr, "http", "", "HTTP listen address (empty = use stdio)")

	return cmd
}
