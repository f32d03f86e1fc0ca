package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func reset(t *testing.T) {
	t.Helper()
	t.Cleanup(func() { Configure(Config{Level: "info"}) })
}

func TestConfigureLevelAndOutput(t *testing.T) {
	reset(t)
	var buf bytes.Buffer
	Configure(Config{Level: "warn", Output: &buf})

	logger := WithComponent("build")
	logger.Info().Msg("hidden")
	logger.Warn().Str("file", "docs/options.md").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"component":"build"`)
	assert.Contains(t, out, `"file":"docs/options.md"`)
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestConfigureLevelFromEnvironment(t *testing.T) {
	reset(t)
	t.Setenv("LOG_LEVEL", "debug")
	var buf bytes.Buffer
	Configure(Config{Output: &buf})

	logger := Base()
	logger.Debug().Msg("from env")
	assert.Contains(t, buf.String(), "from env")

	// An explicit level wins over the environment; unknown levels fall back to info.
	Configure(Config{Level: "bogus", Output: &buf})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestConfigureConsole(t *testing.T) {
	reset(t)
	var buf bytes.Buffer
	Configure(Config{Level: "info", Output: &buf, Console: true})

	logger := WithComponent("serve")
	logger.Info().Msg("serving site")

	out := buf.String()
	assert.Contains(t, out, "serving site")
	assert.Contains(t, out, "component=")
	assert.NotContains(t, out, `"message"`)
}
