// Package config loads the tunable runtime settings from a JSON file,
// with defaults for every key so the file is optional.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// RecordConfig holds stroke recording settings
type RecordConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Path    string `json:"path" mapstructure:"path"`
}

// AudioConfig holds sandbox audio cue settings
type AudioConfig struct {
	Enabled    bool `json:"enabled" mapstructure:"enabled"`
	SampleRate int  `json:"sampleRate" mapstructure:"sampleRate"`
}

// Load reads configuration from the JSON file in configDir and sets default
// values. A missing file is fine; only a malformed one is an error.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFile", "./airsketch.log")

	viper.SetDefault("marker.size", 0.01)

	viper.SetDefault("projection.fallbackEnabled", false)
	viper.SetDefault("projection.fallbackY", 0.0)

	viper.SetDefault("record.enabled", false)
	viper.SetDefault("record.path", "./airsketch.db")

	viper.SetDefault("audio.enabled", true)
	viper.SetDefault("audio.sampleRate", 44100)

	viper.SetConfigName("airsketch.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetFloat64 returns a float config value.
func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetMarkerSize returns the marker edge length in meters. Non-positive
// values fall back to the default so a bad file cannot break deduplication.
func GetMarkerSize() float64 {
	s := viper.GetFloat64("marker.size")
	if s <= 0 {
		return 0.01
	}
	return s
}

// GetRecordConfig returns the stroke recording settings.
func GetRecordConfig() RecordConfig {
	return RecordConfig{
		Enabled: viper.GetBool("record.enabled"),
		Path:    viper.GetString("record.path"),
	}
}

// GetAudioConfig returns the sandbox audio settings.
func GetAudioConfig() AudioConfig {
	return AudioConfig{
		Enabled:    viper.GetBool("audio.enabled"),
		SampleRate: viper.GetInt("audio.sampleRate"),
	}
}
