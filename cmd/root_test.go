package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"covtree.dev/pkg/covtree/internal/domain"
	domainmocks "covtree.dev/pkg/covtree/internal/domain/mocks"
	m "covtree.dev/pkg/covtree/internal/model"
)

// withMockWorkflow swaps the package workflow for a mock during the test.
func withMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

// newTestRootCmd builds a root command with the given subcommand whose log
// goes to a temporary file.
func newTestRootCmd(t *testing.T, sub *cobra.Command) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(sub)

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, out
}

func testArgs(t *testing.T, args ...string) []string {
	t.Helper()

	return append([]string{"--log-file", filepath.Join(t.TempDir(), "covtree.log")}, args...)
}

func TestParsePaths(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []m.Path
	}{
		{"empty", []string{}, []m.Path{}},
		{"single", []string{"coverage.info"}, []m.Path{m.Path("coverage.info")}},
		{
			"multiple",
			[]string{"unit.info", "-", "e2e.info"},
			[]m.Path{m.Path("unit.info"), m.Path("-"), m.Path("e2e.info")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePaths(tt.args)
			require.Len(t, got, len(tt.want))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "covtree", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)

	for _, name := range []string{baseDirFlagName, excludeFlagName, verboseFlagName, logFileFlagName} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}

	assert.Nil(t, cmd.PersistentFlags().Lookup(outputFlagName))
}

func TestOutputFlag_OnlyOnTracefileWriters(t *testing.T) {
	assert.NotNil(t, newMergeCmd().Flags().Lookup(outputFlagName))
	assert.NotNil(t, newFilterCmd().Flags().Lookup(outputFlagName))

	for _, cmd := range []*cobra.Command{newReportCmd(), newCheckCmd(), newCleanCmd()} {
		assert.Nil(t, cmd.Flags().Lookup(outputFlagName), cmd.Name())
	}
}

func TestOutputFlag_RejectedByReport(t *testing.T) {
	withMockWorkflow(t)
	cmd, _ := newTestRootCmd(t, newReportCmd())

	cmd.SetArgs(testArgs(t, "report", "-o", "x.info", "coverage.info"))
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown shorthand flag")
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd := newRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs(testArgs(t))
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "end_of_record")
}

func TestInit(t *testing.T) {
	assert.NotNil(t, ui)
	assert.NotNil(t, store)
	assert.NotNil(t, workflow)
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	for _, name := range []string{"report", "merge", "filter", "check", "clean", "init", "version"} {
		found, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, found.Name())
	}
}

func TestLoadArgs_ExcludeAndBaseDir(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd, _ := newTestRootCmd(t, newFilterCmd())

	mockWorkflow.On("Filter", anyContext, domain.FilterArgs{
		LoadArgs: domain.LoadArgs{
			Tracefiles: []m.Path{"in.info"},
			BaseDir:    "/work",
			Exclude:    []string{"_test", "^/vendor/"},
		},
		Output: "",
	}).Return(nil)

	cmd.SetArgs(testArgs(t, "--base-dir", "/work", "-x", "_test", "--exclude", "^/vendor/", "filter", "in.info"))
	require.NoError(t, cmd.Execute())
}

func TestExecute(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() { rootCmd = originalRootCmd }()

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})
	mockCmd.SetArgs([]string{})

	rootCmd = mockCmd

	Execute()
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(os.Stderr, "error occurred")
				return fmt.Errorf("command failed")
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		mockCmd.SetArgs([]string{})
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute() // This should call os.Exit(1)
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	require.Error(t, err)

	if exitErr, ok := err.(*exec.ExitError); ok {
		assert.Equal(t, 1, exitErr.ExitCode())
	} else {
		assert.Fail(t, "expected exec.ExitError", "got %T", err)
	}

	assert.Contains(t, string(output), "error occurred")
}
