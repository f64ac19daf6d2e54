package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"covtree.dev/pkg/covtree/internal/domain"
	m "covtree.dev/pkg/covtree/internal/model"
)

var mediumFlag float64
var highFlag float64
var summaryFlag string

// reportCmd represents the report command.
var reportCmd = newReportCmd()

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <tracefile>...",
		Short: "Show the coverage tree of tracefiles",
		Long: `Build the folder tree of the given tracefiles and show lines, hits, coverage
and band (low/medium/high) for every folder and file.

` + tracefileArgsHelp,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Report(commandContext(cmd), domain.ReportArgs{
				LoadArgs: loadArgs(args),
				Medium:   viper.GetFloat64(mediumConfigKey),
				High:     viper.GetFloat64(highConfigKey),
				Summary:  m.Path(viper.GetString(summaryConfigKey)),
			})
		},
	}

	configureReportFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func configureReportFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&mediumFlag, mediumFlagName, viper.GetFloat64(mediumConfigKey), "lowest coverage percentage of the medium band")
	bindFlagToConfig(cmd.Flags().Lookup(mediumFlagName), mediumConfigKey)

	cmd.Flags().Float64Var(&highFlag, highFlagName, viper.GetFloat64(highConfigKey), "lowest coverage percentage of the high band")
	bindFlagToConfig(cmd.Flags().Lookup(highFlagName), highConfigKey)

	cmd.Flags().StringVar(&summaryFlag, summaryFlagName, viper.GetString(summaryConfigKey), "also write the coverage tree as YAML to this file")
	bindFlagToConfig(cmd.Flags().Lookup(summaryFlagName), summaryConfigKey)
}

// commandContext falls back to a background context when cobra has none.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
