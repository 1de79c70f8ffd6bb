package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir isolates the test from config files and .env in the working
// directory and the user's home.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	return dir
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("file", "", "")
	fs.String("theme", "", "")
	fs.String("log-level", "", "")
	return fs
}

func TestLoadDefaults(t *testing.T) {
	inTempDir(t)
	cfg, err := Load("habits", nil)
	require.NoError(t, err)
	assert.Equal(t, "habits.json", cfg.File)
	assert.Equal(t, "classic", cfg.Theme)
	assert.Equal(t, LogConfig{Level: "error", Format: "console", Output: "stderr"}, cfg.Log)
}

func TestLoadEnvOverride(t *testing.T) {
	inTempDir(t)
	t.Setenv("INVENTORY_FILE", "stock.json")
	t.Setenv("INVENTORY_LOG_LEVEL", "debug")

	cfg, err := Load("inventory", testFlags())
	require.NoError(t, err)
	assert.Equal(t, "stock.json", cfg.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigFileThenFlags(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "habits.yaml"),
		[]byte("file: from-yaml.json\ntheme: neon\n"), 0o644))

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--file", "from-flag.json"}))

	cfg, err := Load("habits", flags)
	require.NoError(t, err)
	assert.Equal(t, "from-flag.json", cfg.File)
	assert.Equal(t, "neon", cfg.Theme)
}

func TestLoadRejectsUnknownTheme(t *testing.T) {
	inTempDir(t)
	t.Setenv("HABITS_THEME", "sparkly")
	_, err := Load("habits", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme")
}
