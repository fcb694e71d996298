package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/tempchart/internal/cli/config"
	"github.com/leapstack-labs/tempchart/internal/cli/output"
	"github.com/leapstack-labs/tempchart/internal/cli/testutil"
	"github.com/leapstack-labs/tempchart/internal/prompt"
	"github.com/leapstack-labs/tempchart/pkg/temperature"
)

// loadTestConfig loads configuration from env vars only, in an empty
// working directory.
func loadTestConfig(t *testing.T, env map[string]string) *config.Config {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	testutil.Chdir(t, t.TempDir())
	for k, v := range env {
		t.Setenv(k, v)
	}
	cfg, err := config.LoadConfig("", nil)
	require.NoError(t, err)
	return cfg
}

// execute runs cmd with args and returns stdout and stderr.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestNewConvertCommand(t *testing.T) {
	cmd := NewConvertCommand()

	assert.Equal(t, "convert <value> [unit]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.Contains(t, cmd.Example, "-- -40", "negative values need an example")

	units, _ := cmd.ValidArgsFunction(cmd, []string{"25"}, "")
	assert.Equal(t, []string{"celsius", "fahrenheit", "kelvin"}, units)
}

func TestNewScalesCommand(t *testing.T) {
	cmd := NewScalesCommand()

	assert.Equal(t, "scales", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
}

func TestNewPromptCommand(t *testing.T) {
	cmd := NewPromptCommand()

	assert.Equal(t, "prompt", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Long, "Long should not be empty")
	assert.Contains(t, cmd.Long, "When stdin is not a terminal the prompts are not shown")
}

func TestConvert_Markdown(t *testing.T) {
	loadTestConfig(t, nil)

	out, _, err := execute(t, NewConvertCommand(), "25", "Celsius")
	require.NoError(t, err)

	testutil.AssertNoANSI(t, out)
	testutil.AssertValidMarkdown(t, out)
	assert.Contains(t, out, "# Temperature Conversion from 25°C")
	assert.Contains(t, out, "| Celsius | 25.00 |")
	assert.Contains(t, out, "| Fahrenheit | 77.00 |")
	assert.Contains(t, out, "| Kelvin | 298.15 |")
}

func TestConvert_Text(t *testing.T) {
	loadTestConfig(t, map[string]string{"TEMPCHART_OUTPUT": "text", "TEMPCHART_PRECISION": "1"})

	out, _, err := execute(t, NewConvertCommand(), "32", "f")
	require.NoError(t, err)

	testutil.AssertNoANSI(t, out)
	lines := testutil.NonEmptyLines(out)
	require.Len(t, lines, 5)
	assert.Equal(t, "Temperature Conversion from 32°F", lines[0])
	assert.Regexp(t, `^Fahrenheit  │█+ +32\.0$`, lines[2])
	assert.Regexp(t, `^Celsius     │ +0\.0$`, lines[3])
	assert.Regexp(t, `^Kelvin      │█{40} 273\.2$`, lines[4])
}

func TestConvert_JSON(t *testing.T) {
	loadTestConfig(t, map[string]string{"TEMPCHART_OUTPUT": "json"})

	tests := []struct {
		name string
		args []string
		want []output.BarOutput
	}{
		{
			name: "kelvin absolute zero",
			args: []string{"0", "kelvin"},
			want: []output.BarOutput{
				{Label: "Kelvin", Value: 0},
				{Label: "Celsius", Value: -273.15},
				{Label: "Fahrenheit", Value: -459.67},
			},
		},
		{
			name: "negative value after --",
			args: []string{"--", "-40", "F"},
			want: []output.BarOutput{
				{Label: "Fahrenheit", Value: -40},
				{Label: "Celsius", Value: -40},
				{Label: "Kelvin", Value: 233.15},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, NewConvertCommand(), tt.args...)
			require.NoError(t, err)

			var got output.ChartOutput
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, "Temperature", got.YLabel)
			assert.Equal(t, tt.want, got.Bars)
		})
	}
}

func TestConvert_DefaultUnit(t *testing.T) {
	loadTestConfig(t, map[string]string{"TEMPCHART_OUTPUT": "json", "TEMPCHART_DEFAULT_UNIT": "k"})

	out, _, err := execute(t, NewConvertCommand(), "300")
	require.NoError(t, err)

	var got output.ChartOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Temperature Conversion from 300K", got.Title)
}

func TestConvert_Errors(t *testing.T) {
	loadTestConfig(t, nil)

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"not a number", []string{"abc", "c"}, temperature.ErrInvalidNumber},
		{"not finite", []string{"NaN", "c"}, temperature.ErrInvalidNumber},
		{"unknown unit", []string{"25", "rankine"}, temperature.ErrUnrecognizedUnit},
		{"missing unit without default", []string{"25"}, temperature.ErrUnrecognizedUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, NewConvertCommand(), tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, out, "no chart on error")
		})
	}

	_, _, err := execute(t, NewConvertCommand())
	assert.Error(t, err, "a value is required")
}

func TestConvert_Overflow(t *testing.T) {
	t.Run("derived reading overflows", func(t *testing.T) {
		for _, mode := range []string{"markdown", "text", "json"} {
			loadTestConfig(t, map[string]string{"TEMPCHART_OUTPUT": mode})

			out, _, err := execute(t, NewConvertCommand(), "1e308", "c")
			require.ErrorIs(t, err, output.ErrValueOutOfRange, mode)
			assert.Contains(t, err.Error(), "Fahrenheit is +Inf")
			assert.Empty(t, out)
		}
	})

	t.Run("large finite readings", func(t *testing.T) {
		loadTestConfig(t, map[string]string{"TEMPCHART_OUTPUT": "json"})

		out, _, err := execute(t, NewConvertCommand(), "1e307", "k")
		require.NoError(t, err)

		var got output.ChartOutput
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "Temperature Conversion from 1e+307K", got.Title)
		require.Len(t, got.Bars, 3)
		assert.Equal(t, 1e307, got.Bars[0].Value)
		assert.InDelta(t, 1.8e307, got.Bars[2].Value, 1e294)
	})
}

func TestScales(t *testing.T) {
	t.Run("markdown", func(t *testing.T) {
		loadTestConfig(t, nil)

		out, _, err := execute(t, NewScalesCommand())
		require.NoError(t, err)

		testutil.AssertValidMarkdown(t, out)
		assert.Contains(t, out, "# Temperature Scales")
		assert.Contains(t, out, "| Kelvin | K | kelvin, k |")
		assert.Contains(t, out, "K = C + 273.15")
	})

	t.Run("text", func(t *testing.T) {
		loadTestConfig(t, map[string]string{"TEMPCHART_OUTPUT": "text"})

		out, _, err := execute(t, NewScalesCommand())
		require.NoError(t, err)

		testutil.AssertNoANSI(t, out)
		assert.Contains(t, out, "Temperature Scales (3)")
		assert.Contains(t, out, "Fahrenheit")
		assert.Contains(t, out, "F = (K - 273.15) * 9/5 + 32")
	})

	t.Run("json", func(t *testing.T) {
		loadTestConfig(t, map[string]string{"TEMPCHART_OUTPUT": "json"})

		out, _, err := execute(t, NewScalesCommand())
		require.NoError(t, err)

		var got []output.ScaleInfo
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.Len(t, got, 3)
		assert.Equal(t, output.ScaleInfo{
			Name:     "Celsius",
			Symbol:   "°C",
			Labels:   []string{"celsius", "c"},
			Formulas: []string{"F = C * 9/5 + 32", "K = C + 273.15"},
		}, got[0])
	})

	t.Run("yaml", func(t *testing.T) {
		loadTestConfig(t, map[string]string{"TEMPCHART_OUTPUT": "yaml"})

		out, _, err := execute(t, NewScalesCommand())
		require.NoError(t, err)
		assert.Contains(t, out, "- name: Fahrenheit")
		assert.Contains(t, out, "symbol: °F")
	})
}

// scriptedReader replays canned answers to the session prompts.
type scriptedReader struct {
	lines []string
}

func (r *scriptedReader) SetPrompt(string) {}

func (r *scriptedReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func runScripted(t *testing.T, lines ...string) (string, string, error) {
	t.Helper()
	cmd := NewPromptCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetContext(context.Background())
	err := runSession(cmd, &scriptedReader{lines: lines})
	return out.String(), errOut.String(), err
}

func TestRunSession(t *testing.T) {
	loadTestConfig(t, nil)

	t.Run("retries the value then charts", func(t *testing.T) {
		out, errOut, err := runScripted(t, "abc", "25", "c")
		require.NoError(t, err)

		assert.Contains(t, errOut, prompt.InvalidNumberMessage)
		assert.Contains(t, out, "# Temperature Conversion from 25°C")
		assert.NotContains(t, out, prompt.InvalidNumberMessage, "messages stay off stdout")
	})

	t.Run("unknown unit fails without chart", func(t *testing.T) {
		out, errOut, err := runScripted(t, "25", "rankine")
		require.ErrorIs(t, err, ErrReported)

		assert.Contains(t, errOut, prompt.InvalidUnitMessage)
		assert.Empty(t, out)
	})

	t.Run("chart failure is reported", func(t *testing.T) {
		out, errOut, err := runScripted(t, "1e308", "c")
		require.ErrorIs(t, err, ErrReported)

		assert.Contains(t, errOut, "An error occurred: value out of range")
		assert.Empty(t, out)
	})

	t.Run("end of input is not an error", func(t *testing.T) {
		out, _, err := runScripted(t)
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}
