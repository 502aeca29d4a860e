package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the dashboard backend version and build commit.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "dashboard-backend v%s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "commit %s\n", GitCommit)
		},
	}
}
