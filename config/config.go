// Package config loads host tuning knobs for the CHIP-8 emulator CLI:
// clock speed, display scale, audio volume, and log level. It never
// touches interpreter semantics; the instruction set, quirks, and the
// fixed key map are not configurable.
//
// A struct of nested per-subsystem config, a DefaultConfig constructor,
// and an optional file merged over the defaults via viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds every host-tunable knob.
type Config struct {
	CPU     CPUConfig     `yaml:"cpu"`
	Display DisplayConfig `yaml:"display"`
	Audio   AudioConfig   `yaml:"audio"`
	Log     LogConfig     `yaml:"log"`
}

// CPUConfig controls the rate governor's pacing.
type CPUConfig struct {
	ClockHz int `yaml:"clock_hz" mapstructure:"clock_hz"`
	TimerHz int `yaml:"timer_hz" mapstructure:"timer_hz"`
}

// DisplayConfig controls the SDL2 window.
type DisplayConfig struct {
	Scale int `yaml:"scale"`
}

// AudioConfig controls the beeper.
type AudioConfig struct {
	Volume float64 `yaml:"volume"`
}

// LogConfig controls log verbosity.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the configuration a fresh run uses if no file
// and no flags override it.
func DefaultConfig() *Config {
	return &Config{
		CPU: CPUConfig{
			ClockHz: 600,
			TimerHz: 60,
		},
		Display: DisplayConfig{
			Scale: 10,
		},
		Audio: AudioConfig{
			Volume: 0.3,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads an optional YAML file at path and merges it over
// DefaultConfig. An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	v.SetDefault("cpu.clock_hz", cfg.CPU.ClockHz)
	v.SetDefault("cpu.timer_hz", cfg.CPU.TimerHz)
	v.SetDefault("display.scale", cfg.Display.Scale)
	v.SetDefault("audio.volume", cfg.Audio.Volume)
	v.SetDefault("log.level", cfg.Log.Level)

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.CPU.ClockHz <= 0 {
		return fmt.Errorf("cpu.clock_hz must be positive, got %d", cfg.CPU.ClockHz)
	}
	if cfg.CPU.TimerHz <= 0 {
		return fmt.Errorf("cpu.timer_hz must be positive, got %d", cfg.CPU.TimerHz)
	}
	if cfg.Display.Scale <= 0 {
		return fmt.Errorf("display.scale must be positive, got %d", cfg.Display.Scale)
	}
	if cfg.Audio.Volume < 0 || cfg.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be in [0,1], got %f", cfg.Audio.Volume)
	}
	return nil
}
