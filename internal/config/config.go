// Package config loads runtime configuration the same way for every
// command: defaults, then an rc file, then environment variables, then
// flag overrides bound by the command layer.
package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Freedom18946/audio-analyzer/internal/quality"
	"github.com/Freedom18946/audio-analyzer/internal/report"
)

// Config represents the audio-quality-report configuration.
type Config struct {
	Output         string `mapstructure:"output"`
	Format         string `mapstructure:"format"`
	MinScore       int    `mapstructure:"minScore"`
	ShowIncomplete bool   `mapstructure:"showIncomplete"`
	ShowStats      bool   `mapstructure:"showStats"`
	Quiet          bool   `mapstructure:"quiet"`
	Verbose        bool   `mapstructure:"verbose"`
	Workers        int    `mapstructure:"workers"`
	Profile        string `mapstructure:"profile"`
}

// Load builds the configuration from viper's merged sources.
func Load() (*Config, error) {
	viper.SetDefault("output", "audio_quality_report.csv")
	viper.SetDefault("format", report.FormatCSV)
	viper.SetDefault("minScore", 0)
	viper.SetDefault("showIncomplete", false)
	viper.SetDefault("showStats", false)
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("workers", runtime.NumCPU())

	configPaths := []string{".audioqualityrc.json", ".audioqualityrc.yaml", ".audioqualityrc.yml"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		break
	}

	viper.SetEnvPrefix("AUDIOQUALITY")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	valid := false
	for _, f := range report.Formats() {
		if config.Format == f {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid format: %s (want one of csv, json, markdown, console)", config.Format)
	}
	if config.MinScore < 0 || config.MinScore > 100 {
		return fmt.Errorf("min-score must be in [0,100], got %d", config.MinScore)
	}
	if config.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", config.Workers)
	}
	return nil
}

// Thresholds returns the active threshold profile: the defaults, or the
// YAML profile named in the configuration with unset fields left at
// their defaults.
func (c *Config) Thresholds() (quality.Thresholds, error) {
	t := quality.DefaultThresholds()
	if c.Profile == "" {
		return t, nil
	}
	data, err := os.ReadFile(c.Profile)
	if err != nil {
		return t, fmt.Errorf("reading threshold profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parsing threshold profile %s: %w", c.Profile, err)
	}
	return t, nil
}
