// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	viper.Reset()
	c := New()

	assert.Equal(t, 80.0, c.Binding.MinMatchPercent)
	assert.Equal(t, 3, c.Binding.MaxMismatches)
	assert.Equal(t, 80.0, c.Specificity.OfftargetThreshold)
	assert.Equal(t, 70.0, c.Specificity.CrossReactivityThreshold)
	assert.Equal(t, 4, c.Batch.Workers)
	assert.Equal(t, 120, c.Batch.TimeoutSeconds)
	assert.Equal(t, 7, c.Cache.TTLDays)
	assert.False(t, c.Cache.Disabled)
	assert.NotEmpty(t, c.Cache.Path)
}

func TestSettingsOverrideDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.Set("binding.max-mismatches", 1)
	viper.Set("batch.workers", 8)

	c := New()
	assert.Equal(t, 1, c.Binding.MaxMismatches)
	assert.Equal(t, 8, c.Batch.Workers)
	// Untouched settings keep their defaults.
	assert.Equal(t, 80.0, c.Binding.MinMatchPercent)
}
