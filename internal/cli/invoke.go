package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewInvokeCommand creates the invoke command.
func NewInvokeCommand() *cobra.Command {
	var (
		rawArgs string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "invoke <command>",
		Short: "Run a command in-process and print its result",
		Long: `Dispatch a command through the same registry the HTTP and MCP transports use,
without starting a server.`,
		Example: `  dashboard-backend invoke greet --args '{"name":"Ana"}'
  dashboard-backend invoke get_dashboard_kpis -o table`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validFormat(format) {
				return fmt.Errorf("unknown output format %q (json|yaml|table)", format)
			}
			if rawArgs != "" && !json.Valid([]byte(rawArgs)) {
				return fmt.Errorf("--args is not valid JSON: %s", rawArgs)
			}

			application, err := applicationFrom(cmd.Context())
			if err != nil {
				return err
			}

			result, err := application.Commands.Invoke(cmd.Context(), args[0], json.RawMessage(rawArgs))
			if err != nil {
				return err
			}

			return renderResult(cmd.OutOrStdout(), result, format, application.Logger)
		},
	}

	cmd.Flags().StringVar(&rawArgs, "args", "", "JSON object with the command arguments")
	cmd.Flags().StringVarP(&format, "output", "o", FormatJSON, "Output format (json|yaml|table)")

	_ = cmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{FormatJSON, FormatYAML, FormatTable}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
