package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"
)

// Config holds the viper-backed settings .stacktc.yaml can provide,
// layered under whatever flags the invoked subcommand sets explicitly.
type Config struct {
	DefaultFormat string `mapstructure:"default_format"`
	Workers       int    `mapstructure:"workers"`
	Verbose       bool   `mapstructure:"verbose"`
}

func loadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault("default_format", "vertices-json")
	v.SetDefault("workers", 0)
	v.SetDefault("verbose", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".stacktc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("cmd: reading config: %w", err)
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("cmd: decoding config: %w", err)
	}
	return &cfg, nil
}

// newLogger builds the CLI's own operational logger (command
// start/stop, counts, timings) — distinct from the algorithm-internal
// debug trace, which stays out of pkg/stacktc's public surface.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
