package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/lixenwraith/finality-race/parameter"
)

const (
	AutoRepeatKey  = "auto-repeat"
	AudioKey       = "audio"
	DebugKey       = "debug"
	LogFileKey     = "log-file"
	MetricsAddrKey = "metrics-addr"
	FPSKey         = "fps"

	envPrefix = "FINALITY_RACE"

	defaultFPS     = 60
	defaultLogFile = "logs/finality-race.log"
)

func AddFlags(flags *pflag.FlagSet) {
	flags.Bool(AutoRepeatKey, false, "Enable auto-repeat at launch")
	flags.Bool(AudioKey, false, "Play a chime as each chain finishes")
	flags.Bool(DebugKey, false, "Write debug logs to --log-file")
	flags.String(LogFileKey, defaultLogFile, "Rotated log file used when --debug is set")
	flags.String(MetricsAddrKey, "", "Serve Prometheus metrics on this address (e.g. 127.0.0.1:9090)")
	flags.Int(FPSKey, defaultFPS, "Animation and redraw rate")
}

type Config struct {
	AutoRepeat  bool
	Audio       bool
	Debug       bool
	LogFile     string
	MetricsAddr string
	FPS         int
}

// newViper binds flags and FINALITY_RACE_* environment variables; flags win when set
func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AutoRepeat:  v.GetBool(AutoRepeatKey),
		Audio:       v.GetBool(AudioKey),
		Debug:       v.GetBool(DebugKey),
		LogFile:     v.GetString(LogFileKey),
		MetricsAddr: v.GetString(MetricsAddrKey),
		FPS:         v.GetInt(FPSKey),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs error
	if c.FPS < parameter.MinFPS || c.FPS > parameter.MaxFPS {
		errs = multierr.Append(errs, fmt.Errorf("--%s must be in [%d, %d], got %d",
			FPSKey, parameter.MinFPS, parameter.MaxFPS, c.FPS))
	}
	if c.Debug && c.LogFile == "" {
		errs = multierr.Append(errs, fmt.Errorf("--%s requires --%s", DebugKey, LogFileKey))
	}
	return errs
}

// FrameInterval is the animation tick derived from FPS
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
