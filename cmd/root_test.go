package cmd

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInputs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"empty", []string{}, []string{"."}},
		{"nil", nil, []string{"."}},
		{"single", []string{"reports"}, []string{"reports"}},
		{
			"multiple",
			[]string{"unit.xml", "e2e/**/*.json", "results.yaml"},
			[]string{"unit.xml", "e2e/**/*.json", "results.yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseInputs(tt.args)
			require.Len(t, got, len(tt.want))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "testreport", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.Equal(t, rootLongDescription, cmd.Long)

	for _, name := range []string{excludeFlagName, parallelFlagName, titleFlagName, logFileFlagName, verboseFlagName} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd := newRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "doublestar globs")
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	for _, name := range []string{"render", "summary", "view", "init", "version"} {
		found, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, found.Name())
	}
}

func TestInit(t *testing.T) {
	// Test that init() created all the necessary instances
	assert.NotNil(t, ui)
	assert.NotNil(t, fsAdapter)
	assert.NotNil(t, inputResolver)
	assert.NotNil(t, resultLoader)
}

func TestNewWorkflow(t *testing.T) {
	assert.NotNil(t, newWorkflow())
}

// executeCaseEnv selects the command line a re-executed test binary runs
// through Execute, so exit codes can be observed from the parent.
const executeCaseEnv = "CMD_TEST_EXECUTE_CASE"

var executeCases = map[string][]string{
	"help":            {"--help"},
	"version":         {"version"},
	"unknown command": {"explode"},
	"missing input":   {"summary", "does-not-exist/*.xml"},
}

func TestExecute_ExitCode(t *testing.T) {
	if name := os.Getenv(executeCaseEnv); name != "" {
		rootCmd.SetArgs(append(executeCases[name], "--log-file", os.Getenv("CMD_TEST_LOG_FILE")))
		Execute()

		return
	}

	tests := []struct {
		name     string
		wantCode int
		want     string
	}{
		{"help", 0, "Usage:"},
		{"version", 0, "version"},
		{"unknown command", 1, `unknown command "explode"`},
		{"missing input", 1, "no input files match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(os.Args[0], "-test.run=^TestExecute_ExitCode$")
			cmd.Env = append(os.Environ(),
				executeCaseEnv+"="+tt.name,
				"CMD_TEST_LOG_FILE="+filepath.Join(t.TempDir(), "testreport.log"),
			)

			output, err := cmd.CombinedOutput()

			code := 0
			if exitErr, ok := err.(*exec.ExitError); ok {
				code = exitErr.ExitCode()
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantCode, code, "output: %s", output)
			assert.Contains(t, string(output), tt.want)
		})
	}
}
