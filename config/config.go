// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"

	"github.com/engkinandatama/primerlab/internal/cache"
)

// BindingConfig bounds the binding-site search.
type BindingConfig struct {
	// the lowest window match percent reported as a binding site
	MinMatchPercent float64 `mapstructure:"min-match-percent"`

	// the most mismatched positions a binding site may carry
	MaxMismatches int `mapstructure:"max-mismatches"`
}

// SpecificityConfig holds the scoring thresholds.
type SpecificityConfig struct {
	// off-target match percent at which a check warning fires
	OfftargetThreshold float64 `mapstructure:"offtarget-threshold"`

	// off-target match percent at which a species counts as cross-reactive
	CrossReactivityThreshold float64 `mapstructure:"cross-reactivity-threshold"`
}

// BatchConfig controls parallel batch runs.
type BatchConfig struct {
	// worker pool size
	Workers int `mapstructure:"workers"`

	// per-file timeout in seconds; 0 disables it
	TimeoutSeconds int `mapstructure:"timeout"`
}

// CacheConfig locates and bounds the alignment cache.
type CacheConfig struct {
	// path to the SQLite cache file
	Path string `mapstructure:"path"`

	// entry lifetime in days
	TTLDays int `mapstructure:"ttl-days"`

	// disable the cache entirely
	Disabled bool `mapstructure:"disabled"`
}

// Config is the root-level settings struct, a mix of settings available in
// settings.yaml and those available from the command line.
type Config struct {
	Binding     BindingConfig     `mapstructure:"binding"`
	Specificity SpecificityConfig `mapstructure:"specificity"`
	Batch       BatchConfig       `mapstructure:"batch"`
	Cache       CacheConfig       `mapstructure:"cache"`
}

// setDefaults registers the routine thresholds with viper so a missing
// settings file still yields a working config.
func setDefaults() {
	viper.SetDefault("binding.min-match-percent", 80.0)
	viper.SetDefault("binding.max-mismatches", 3)
	viper.SetDefault("specificity.offtarget-threshold", 80.0)
	viper.SetDefault("specificity.cross-reactivity-threshold", 70.0)
	viper.SetDefault("batch.workers", 4)
	viper.SetDefault("batch.timeout", 120)
	viper.SetDefault("cache.path", cache.DefaultPath())
	viper.SetDefault("cache.ttl-days", 7)
	viper.SetDefault("cache.disabled", false)
}

// New returns a new Config struct populated by Viper settings (either from
// the local settings.yaml) and/or command line arguments.
func New() *Config {
	setDefaults()

	viper.SetConfigName("settings")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.primerlab")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("failed to read settings file: %v", err)
		}
	}

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct: %v", err)
	}
	return &c
}
