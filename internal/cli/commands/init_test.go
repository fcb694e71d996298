package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/tempchart/internal/cli/config"
	"github.com/leapstack-labs/tempchart/internal/cli/testutil"
)

func TestNewInitCommand(t *testing.T) {
	tests := []struct {
		name     string
		setupDir func(t *testing.T, dir string) // setup before running
		args     []string
		wantErr  bool
		wantOut  string
	}{
		{
			name:    "init empty directory",
			args:    []string{},
			wantOut: "tempchart.yaml",
		},
		{
			name: "init existing config without force",
			setupDir: func(t *testing.T, dir string) {
				testutil.WriteConfig(t, dir, "existing")
			},
			args:    []string{},
			wantErr: true,
		},
		{
			name: "init existing config with force",
			setupDir: func(t *testing.T, dir string) {
				testutil.WriteConfig(t, dir, "existing")
			},
			args:    []string{"--force"},
			wantOut: "tempchart.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.ResetConfig()
			tmpDir := t.TempDir()
			testutil.Chdir(t, tmpDir)

			if tt.setupDir != nil {
				tt.setupDir(t, tmpDir)
			}

			out, _, err := execute(t, NewInitCommand(), tt.args...)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "--force")
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.wantOut)

			content, err := os.ReadFile(filepath.Join(tmpDir, "tempchart.yaml"))
			require.NoError(t, err)
			assert.Contains(t, string(content), "chart:")
		})
	}
}

func TestInit_WrittenConfigLoads(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	dir := t.TempDir()
	target := filepath.Join(dir, "nested")

	_, _, err := execute(t, NewInitCommand(), target)
	require.NoError(t, err)

	cfg, err := config.LoadConfig(filepath.Join(target, "tempchart.yaml"), nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg, "the template matches the built-in defaults")
}

func TestNewInitCommandMetadata(t *testing.T) {
	cmd := NewInitCommand()

	assert.Equal(t, "init [directory]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotNil(t, cmd.Flags().Lookup("force"), "flag force should exist")
}
