package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/tempchart/internal/cli/config"
	"github.com/leapstack-labs/tempchart/internal/cli/output"
	"github.com/leapstack-labs/tempchart/internal/cli/testutil"
)

func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	cfgFile = ""

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand_Metadata(t *testing.T) {
	root := NewRootCmd()

	assert.Equal(t, "tempchart", root.Use)
	assert.True(t, root.SilenceUsage)
	assert.True(t, root.SilenceErrors)

	for _, flag := range []string{"config", "verbose", "output", "precision", "width", "default-unit"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"version", "prompt", "convert", "scales", "init", "doctor", "completion"} {
		assert.True(t, names[want], "subcommand %q should be registered", want)
	}
}

func TestRootCommand_ConvertWithFlags(t *testing.T) {
	testutil.Chdir(t, t.TempDir())

	out, _, err := runRoot(t, "convert", "100", "c", "-o", "json", "--precision", "0")
	require.NoError(t, err)

	var got output.ChartOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []output.BarOutput{
		{Label: "Celsius", Value: 100},
		{Label: "Fahrenheit", Value: 212},
		{Label: "Kelvin", Value: 373},
	}, got.Bars)
}

func TestRootCommand_ConfigFileAndDefaultUnit(t *testing.T) {
	dir := t.TempDir()
	testutil.Chdir(t, dir)
	testutil.WriteConfig(t, dir, "output: yaml\ndefault_unit: fahrenheit\n")

	out, _, err := runRoot(t, "convert", "212", "--default-unit", "fahrenheit")
	require.NoError(t, err)
	assert.Contains(t, out, "title: Temperature Conversion from 212°F")
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	testutil.Chdir(t, t.TempDir())

	_, _, err := runRoot(t, "scales", "--width", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chart.width")
}

func TestRootCommand_VerboseLogs(t *testing.T) {
	testutil.Chdir(t, t.TempDir())

	_, errOut, err := runRoot(t, "convert", "1", "k", "-v", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, errOut, "configuration loaded")
	assert.Contains(t, errOut, "plotting conversion")

	_, errOut, err = runRoot(t, "convert", "1", "k", "-o", "json")
	require.NoError(t, err)
	assert.Empty(t, errOut, "debug records are hidden without --verbose")
}

func TestRootCommand_UnknownCommand(t *testing.T) {
	_, _, err := runRoot(t, "fahrenheit")
	require.Error(t, err)
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, _, err := runRoot(t, "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, out, "tempchart")
		})
	}

	_, _, err := runRoot(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	newLogger(&buf, false).Info("hidden")
	assert.Empty(t, buf.String())

	newLogger(&buf, true).Debug("shown", "key", "value")
	assert.Contains(t, buf.String(), "key=value")
}
