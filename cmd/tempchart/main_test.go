// Package main provides tests for the tempchart CLI.
package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/leapstack-labs/tempchart/internal/cli"
	"github.com/leapstack-labs/tempchart/internal/cli/config"
)

// inTempDir keeps the tests away from any tempchart.yaml around the repo.
func inTempDir(t *testing.T) {
	t.Helper()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWd)
		config.ResetConfig()
	})
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	inTempDir(t)

	output, err := run(t, "version")
	if err != nil {
		t.Errorf("version command error = %v", err)
	}
	if !strings.Contains(output, "tempchart v") {
		t.Errorf("version output should contain 'tempchart v', got: %s", output)
	}
}

func TestHelpCommand(t *testing.T) {
	output, err := run(t, "--help")
	if err != nil {
		t.Errorf("help command error = %v", err)
	}

	for _, expected := range []string{"convert", "prompt", "scales", "init", "doctor", "completion"} {
		if !strings.Contains(output, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, output)
		}
	}
}

func TestConvertCommand(t *testing.T) {
	inTempDir(t)

	output, err := run(t, "convert", "25", "Celsius", "--output", "markdown")
	if err != nil {
		t.Fatalf("convert command error = %v", err)
	}

	for _, expected := range []string{"Temperature Conversion from 25°C", "77.00", "298.15"} {
		if !strings.Contains(output, expected) {
			t.Errorf("convert output should contain '%s', got: %s", expected, output)
		}
	}
}

func TestConvertCommand_UnknownUnit(t *testing.T) {
	inTempDir(t)

	output, err := run(t, "convert", "25", "rankine")
	if err == nil {
		t.Fatal("expected an error for an unknown unit")
	}
	if strings.Contains(output, "Temperature Conversion") {
		t.Errorf("no chart expected, got: %s", output)
	}
}

func TestScalesCommand(t *testing.T) {
	inTempDir(t)

	output, err := run(t, "scales", "-o", "yaml")
	if err != nil {
		t.Fatalf("scales command error = %v", err)
	}
	for _, expected := range []string{"name: Celsius", "name: Fahrenheit", "name: Kelvin"} {
		if !strings.Contains(output, expected) {
			t.Errorf("scales output should contain '%s', got: %s", expected, output)
		}
	}
}
