package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shide1989/zsh-docs/internal/validate"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, used, err := Load("", nil)
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, Config{
		OutputDir:  "public",
		ContentDir: "docs",
		LayoutsDir: "layouts",
		StaticDir:  "static",
		Port:       1313,
		LogLevel:   "info",
	}, cfg)
}

func TestLoadFileEnvAndFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tool.yaml")
	require.NoError(t, os.WriteFile(path, []byte("outputDir: dist\nport: 9000\nsiteConfig: site.yaml\n"), 0o644))

	t.Setenv("ZSHDOCS_CONTENTDIR", "manual")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("port", 1313, "")
	flags.String("log-level", "info", "")
	require.NoError(t, flags.Parse([]string{"--port", "4000"}))

	cfg, used, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "dist", cfg.OutputDir)
	assert.Equal(t, "manual", cfg.ContentDir)
	assert.Equal(t, "site.yaml", cfg.SiteConfig)
	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	chdir(t, t.TempDir())

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("port", 1313, "")
	flags.String("log-level", "info", "")
	flags.String("output-dir", "public", "")
	require.NoError(t, flags.Parse([]string{"--port", "0", "--log-level", "loud", "--output-dir", ""}))

	_, _, err := Load("", flags)
	require.Error(t, err)

	var verr validate.ValidationError
	require.True(t, errors.As(err, &verr))
	var fields []string
	for _, e := range verr.Errors() {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{"outputDir", "port", "logLevel"}, fields)
	assert.Contains(t, err.Error(), "invalid tool config (3 problems)")
}

// chdir changes the working directory for the duration of the test, like
// testing.T.Chdir (Go 1.24+), restoring the original directory on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
