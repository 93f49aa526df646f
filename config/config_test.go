package config

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "cmtscan"}
	InitFlags(cmd)
	return cmd
}

func TestLoadConfigs_Defaults(t *testing.T) {
	cfg, err := LoadConfigs(newTestCommand())

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig, *cfg)
}

func TestLoadConfigs_EnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("CMTSCAN_THEME", "dracula")
	t.Setenv("CMTSCAN_SUMMARY", "true")
	t.Setenv("CMTSCAN_CACHE_DIR", "/tmp/cmtscan-cache")

	cfg, err := LoadConfigs(newTestCommand())

	require.NoError(t, err)
	assert.Equal(t, "dracula", cfg.Theme)
	assert.True(t, cfg.Summary)
	assert.Equal(t, "/tmp/cmtscan-cache", cfg.CacheDir)
	assert.False(t, cfg.EnableCache)
}

func TestLoadConfigs_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("CMTSCAN_THEME", "dracula")
	cmd := newTestCommand()
	require.NoError(t, cmd.PersistentFlags().Set("theme", "monokai"))
	require.NoError(t, cmd.PersistentFlags().Set("no-color", "true"))
	require.NoError(t, cmd.PersistentFlags().Set("enable-cache", "true"))

	cfg, err := LoadConfigs(cmd)

	require.NoError(t, err)
	assert.Equal(t, "monokai", cfg.Theme)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.EnableCache)
}

func TestLoadConfigs_WithoutFlags(t *testing.T) {
	cfg, err := LoadConfigs(&cobra.Command{Use: "bare"})

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig.Version, cfg.Version)
}
