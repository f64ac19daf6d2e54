package cmd

import (
	"github.com/spf13/cobra"

	"covtree.dev/pkg/covtree/internal/domain"
)

// mergeCmd represents the merge command.
var mergeCmd = newMergeCmd()

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <tracefile>...",
		Short: "Merge tracefiles from several test runs",
		Long: `Merge tracefiles into one. Records for the same source file are combined and
hit counts of the same line are summed. The result goes to --output or stdout.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Merge(commandContext(cmd), domain.MergeArgs{
				LoadArgs: loadArgs(args),
				Output:   outputPath(cmd),
			})
		},
	}

	addOutputFlag(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
