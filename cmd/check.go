package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"covtree.dev/pkg/covtree/internal/domain"
)

var minimumFlag float64

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <tracefile>...",
		Short: "Fail when total line coverage is below a minimum",
		Long: `Compute the total line coverage of the tracefiles and exit with status 1 when
it is below --minimum (inclusive).

` + tracefileArgsHelp,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Check(commandContext(cmd), domain.CheckArgs{
				LoadArgs: loadArgs(args),
				Minimum:  viper.GetFloat64(minimumConfigKey),
			})
		},
	}

	cmd.Flags().Float64Var(&minimumFlag, minimumFlagName, viper.GetFloat64(minimumConfigKey), "minimum total coverage percentage")
	bindFlagToConfig(cmd.Flags().Lookup(minimumFlagName), minimumConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
