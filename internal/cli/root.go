// Package cli provides the command-line interface of the dashboard backend.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"dashboard.must.dev/internal/app"
	"dashboard.must.dev/internal/appconf"
	"dashboard.must.dev/internal/logging"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

type applicationKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "dashboard-backend",
		Short: "Dashboard backend command bridge",
		Long: `dashboard-backend serves the greet and get_dashboard_kpis commands to the
dashboard front-end over HTTP, to AI assistants over MCP, and from the shell.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// These commands must work even with a broken configuration
			switch cmd.Name() {
			case "help", "completion", "__complete", "version":
				return nil
			}

			cfg, err := appconf.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			level, err := logging.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}

			// Logs go to stderr: stdout carries command output and the MCP stdio stream
			logger := logging.NewStructuredLogger(cmd.ErrOrStderr(), level)

			application := app.New(cfg, logger)
			ctx := context.WithValue(cmd.Context(), applicationKey{}, application)
			cmd.SetContext(logging.WithLogger(ctx, logger))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().Int("port", appconf.DefaultPort, "API server port")
	rootCmd.PersistentFlags().String("env", appconf.DefaultEnv, "Environment (development|test|production)")
	rootCmd.PersistentFlags().StringSlice("api-keys", []string{"test"}, "Comma separated API keys")
	rootCmd.PersistentFlags().Int("rate-limit", appconf.DefaultRateLimit, "Requests per second per API key (0 disables)")
	rootCmd.PersistentFlags().String("log-level", appconf.DefaultLogLevel, "Log level (debug|info|warn|error)")

	_ = rootCmd.RegisterFlagCompletionFunc("env", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"development", "test", "production"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(NewVersionCommand(Version))
	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewMCPCommand())
	rootCmd.AddCommand(NewInvokeCommand())
	rootCmd.AddCommand(NewCommandsCommand())

	return rootCmd
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// applicationFrom returns the Application built by the root command.
func applicationFrom(ctx context.Context) (*app.Application, error) {
	if application, ok := ctx.Value(applicationKey{}).(*app.Application); ok {
		return application, nil
	}
	return nil, errors.New("configuration was not loaded")
}
