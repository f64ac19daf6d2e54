package cmd

import (
	"github.com/spf13/cobra"

	"covtree.dev/pkg/covtree/internal/domain"
)

// filterCmd represents the filter command.
var filterCmd = newFilterCmd()

func newFilterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter <tracefile>",
		Short: "Drop source files matching --exclude from a tracefile",
		Long: `Remove every record whose source path matches one of the --exclude regular
expressions. Remaining blocks are written back unchanged to --output or stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Filter(commandContext(cmd), domain.FilterArgs{
				LoadArgs: loadArgs(args),
				Output:   outputPath(cmd),
			})
		},
	}

	addOutputFlag(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(filterCmd)
}
