package cmd

import (
	"github.com/spf13/cobra"

	"covtree.dev/pkg/covtree/internal/domain"
)

var ignoreMissingFlag bool

// cleanCmd represents the clean command.
var cleanCmd = newCleanCmd()

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean <path>...",
		Short: "Remove generated tracefiles and summaries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Clean(commandContext(cmd), domain.CleanArgs{
				Paths:         parsePaths(args),
				IgnoreMissing: ignoreMissingFlag,
			})
		},
	}

	cmd.Flags().BoolVar(&ignoreMissingFlag, ignoreFlagName, false, "do not fail when a path does not exist")

	return cmd
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
