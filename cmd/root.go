// Package cmd provides the root command and CLI setup for covtree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"covtree.dev/pkg/covtree/internal/adapter"
	"covtree.dev/pkg/covtree/internal/controller"
	"covtree.dev/pkg/covtree/internal/domain"
	m "covtree.dev/pkg/covtree/internal/model"
)

var store adapter.TracefileStore
var ui controller.UI
var workflow domain.Workflow

// baseDirFlag overrides the directory relative source paths resolve against.
var baseDirFlag string

// excludePatterns is a root-level flag that filters records for every command.
var excludePatterns []string

var verboseFlag bool
var logFileFlag string

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	store = adapter.NewLocalTracefileStore(os.Stdin, viper.GetInt(parallelConfigKey))
	workflow = domain.NewWorkflow(store, ui)
}

const tracefileArgsHelp = `Tracefiles are LCOV files made of SF:/DA:/end_of_record blocks.
Use "-" to read a tracefile from standard input. When several tracefiles are
given they are merged first, summing hit counts of shared lines.`

const rootLongDescription = `covtree turns LCOV tracefiles into a coverage tree with per-folder totals.
It can merge and filter tracefiles, report coverage with low/medium/high bands
and fail a build when coverage drops below a minimum.

` + tracefileArgsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "covtree",
		Short:        "LCOV coverage tree, merge, filter and check tool",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if configReadErr != nil {
				return configReadErr
			}

			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&baseDirFlag, baseDirFlagName, viper.GetString(baseDirConfigKey), "directory relative source paths are resolved against (default: working directory)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(baseDirFlagName), baseDirConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude source files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// addOutputFlag registers -o/--output on a command that writes a tracefile.
// The flag is left unbound; outputPath falls back to the output key.
func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(outputFlagName, "o", "", "write the resulting tracefile here instead of standard output (default: output config key, else stdout)")
}

// outputPath returns --output when given, else the configured output.
func outputPath(cmd *cobra.Command) m.Path {
	if flag := cmd.Flags().Lookup(outputFlagName); flag != nil && flag.Changed {
		return m.Path(flag.Value.String())
	}

	return m.Path(viper.GetString(outputConfigKey))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// loadArgs collects the tracefile selection shared by every command.
func loadArgs(args []string) domain.LoadArgs {
	return domain.LoadArgs{
		Tracefiles: parsePaths(args),
		BaseDir:    m.Path(viper.GetString(baseDirConfigKey)),
		Exclude:    viper.GetStringSlice(excludeConfigKey),
	}
}
