package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCommandsCommand creates the commands command.
func NewCommandsCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "commands",
		Short: "List the commands the bridge dispatches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !validFormat(format) {
				return fmt.Errorf("unknown output format %q (json|yaml|table)", format)
			}

			application, err := applicationFrom(cmd.Context())
			if err != nil {
				return err
			}

			return renderResult(cmd.OutOrStdout(), application.Commands.Commands(), format, application.Logger)
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", FormatTable, "Output format (json|yaml|table)")

	return cmd
}
