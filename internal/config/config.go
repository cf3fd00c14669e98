package config

import (
	"fmt"
	"vrgaze/internal/engine"
	"vrgaze/internal/gaze"

	"github.com/spf13/viper"
)

const FileName = "gaze.cfg.json"

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file.
func Load(configDir string) error {
	SetDefaults()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// SetDefaults installs every default without reading a file.
func SetDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("scene", "assets/scenes/gaze.json")

	viper.SetDefault("ray.length", 500.0)
	viper.SetDefault("ray.exclusionLayers", []string{"IgnoreRaycast"})
	viper.SetDefault("hitLog", false)

	viper.SetDefault("debugRay.enabled", false)
	viper.SetDefault("debugRay.color", "Blue")
	viper.SetDefault("debugRay.length", 5.0)
	viper.SetDefault("debugRay.duration", 0.1)

	viper.SetDefault("input.doubleClickTime", 0.3)

	viper.SetDefault("reticle.defaultDistance", 5.0)
	viper.SetDefault("reticle.normalAligned", false)

	viper.SetDefault("trigger.dwellTime", 1.5)
}

// Gaze builds the raycaster configuration from the loaded values.
func Gaze() (gaze.Config, error) {
	mask, err := engine.MaskFromNames(viper.GetStringSlice("ray.exclusionLayers"))
	if err != nil {
		return gaze.Config{}, fmt.Errorf("ray.exclusionLayers: %w", err)
	}
	color, err := engine.ParseColor(viper.GetString("debugRay.color"))
	if err != nil {
		return gaze.Config{}, fmt.Errorf("debugRay.color: %w", err)
	}

	cfg := gaze.Config{
		RayLength:        float32(viper.GetFloat64("ray.length")),
		ExclusionLayers:  mask,
		ShowHitLog:       viper.GetBool("hitLog"),
		ShowDebugRay:     viper.GetBool("debugRay.enabled"),
		DebugRayColor:    color,
		DebugRayLength:   float32(viper.GetFloat64("debugRay.length")),
		DebugRayDuration: float32(viper.GetFloat64("debugRay.duration")),
	}
	if cfg.RayLength <= 0 {
		return gaze.Config{}, fmt.Errorf("ray.length must be positive, got %v", cfg.RayLength)
	}
	return cfg, nil
}

func GetString(key string) string {
	return viper.GetString(key)
}

func GetFloat(key string) float32 {
	return float32(viper.GetFloat64(key))
}

func GetBool(key string) bool {
	return viper.GetBool(key)
}
