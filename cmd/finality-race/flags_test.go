package main

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func parse(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(flags)
	require.NoError(t, flags.Parse(args))
	v, err := newViper(flags)
	require.NoError(t, err)
	return ParseConfig(v)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parse(t)
	require.NoError(t, err)

	assert.False(t, cfg.AutoRepeat)
	assert.False(t, cfg.Audio)
	assert.False(t, cfg.Debug)
	assert.Equal(t, defaultLogFile, cfg.LogFile)
	assert.Empty(t, cfg.MetricsAddr)
	assert.Equal(t, defaultFPS, cfg.FPS)
	assert.Equal(t, time.Second/60, cfg.FrameInterval())
}

func TestParseConfigFlags(t *testing.T) {
	cfg, err := parse(t, "--auto-repeat", "--audio", "--fps", "30", "--metrics-addr", "127.0.0.1:9100")
	require.NoError(t, err)

	assert.True(t, cfg.AutoRepeat)
	assert.True(t, cfg.Audio)
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, "127.0.0.1:9100", cfg.MetricsAddr)
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("FINALITY_RACE_AUTO_REPEAT", "true")
	t.Setenv("FINALITY_RACE_FPS", "24")

	cfg, err := parse(t)
	require.NoError(t, err)
	assert.True(t, cfg.AutoRepeat)
	assert.Equal(t, 24, cfg.FPS)

	// Explicit flags override the environment
	cfg, err = parse(t, "--fps", "50")
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.FPS)
}

func TestValidate(t *testing.T) {
	_, err := parse(t, "--fps", "0")
	assert.Error(t, err)

	_, err = parse(t, "--fps", "1000")
	assert.Error(t, err)

	cfg := &Config{FPS: 0, Debug: true}
	err = cfg.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
}
