// Package config loads game settings from defaults, an optional config file
// and STARSHOOT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// STARSHOOT_AUDIO_ENABLED=false.
const EnvPrefix = "STARSHOOT"

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string  `mapstructure:"title"`
	Scale      float64 `mapstructure:"scale"`
	Fullscreen bool    `mapstructure:"fullscreen"`
}

// AudioConfig holds sound settings.
type AudioConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	SampleRate  int     `mapstructure:"sampleRate"`
	Volume      float64 `mapstructure:"volume"`
	MusicVolume float64 `mapstructure:"musicVolume"`
}

// GraylogConfig holds the optional GELF sink.
type GraylogConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

// CPUConfig selects which sides the built-in bot drives.
type CPUConfig struct {
	Player bool `mapstructure:"player"`
	Alien  bool `mapstructure:"alien"`
}

// MatchConfig holds gameplay settings.
type MatchConfig struct {
	Seed               int64     `mapstructure:"seed"`           // 0 picks a time-based seed
	ItemIntervalMs     int       `mapstructure:"itemIntervalMs"` // 0 draws one from 5000-15000
	RerollItemInterval bool      `mapstructure:"rerollItemInterval"`
	CPU                CPUConfig `mapstructure:"cpu"`
}

// KeyBindings maps one side's actions to Ebiten key names.
type KeyBindings struct {
	Left   string `mapstructure:"left"`
	Right  string `mapstructure:"right"`
	Fire   string `mapstructure:"fire"`
	Spread string `mapstructure:"spread"`
	Speed  string `mapstructure:"speed"`
}

// KeysConfig holds both sides' bindings.
type KeysConfig struct {
	Player KeyBindings `mapstructure:"player"`
	Alien  KeyBindings `mapstructure:"alien"`
}

// TelemetryConfig toggles OpenTelemetry instruments.
type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Config is the full settings tree.
type Config struct {
	LogLevel  string          `mapstructure:"logLevel"`
	Window    WindowConfig    `mapstructure:"window"`
	Audio     AudioConfig     `mapstructure:"audio"`
	Graylog   GraylogConfig   `mapstructure:"graylog"`
	Match     MatchConfig     `mapstructure:"match"`
	Keys      KeysConfig      `mapstructure:"keys"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")

	v.SetDefault("window.title", "Star Shoot")
	v.SetDefault("window.scale", 1.0)
	v.SetDefault("window.fullscreen", false)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.sampleRate", 44100)
	v.SetDefault("audio.volume", 0.6)
	v.SetDefault("audio.musicVolume", 0.35)

	v.SetDefault("graylog.enabled", false)
	v.SetDefault("graylog.address", "localhost:12201")

	v.SetDefault("match.seed", 0)
	v.SetDefault("match.itemIntervalMs", 0)
	v.SetDefault("match.rerollItemInterval", false)
	v.SetDefault("match.cpu.player", false)
	v.SetDefault("match.cpu.alien", false)

	v.SetDefault("keys.player.left", "ArrowLeft")
	v.SetDefault("keys.player.right", "ArrowRight")
	v.SetDefault("keys.player.fire", "Enter")
	v.SetDefault("keys.player.spread", "L")
	v.SetDefault("keys.player.speed", "K")

	v.SetDefault("keys.alien.left", "A")
	v.SetDefault("keys.alien.right", "D")
	v.SetDefault("keys.alien.fire", "T")
	v.SetDefault("keys.alien.spread", "R")
	v.SetDefault("keys.alien.speed", "E")

	v.SetDefault("telemetry.enabled", false)
}

// Default returns the built-in settings.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)
	return cfg
}

// Load reads settings. path may name a JSON, TOML or YAML file; an empty
// path only applies defaults and the environment.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("window.scale must be positive, got %v", c.Window.Scale))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sampleRate must be positive, got %d", c.Audio.SampleRate))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within 0-1, got %v", c.Audio.Volume))
	}
	if c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1 {
		errs = append(errs, fmt.Errorf("audio.musicVolume must be within 0-1, got %v", c.Audio.MusicVolume))
	}
	if c.Match.ItemIntervalMs < 0 {
		errs = append(errs, fmt.Errorf("match.itemIntervalMs must not be negative, got %d", c.Match.ItemIntervalMs))
	}
	if c.Graylog.Enabled && c.Graylog.Address == "" {
		errs = append(errs, errors.New("graylog.address is required when graylog is enabled"))
	}
	for side, kb := range map[string]KeyBindings{"player": c.Keys.Player, "alien": c.Keys.Alien} {
		for action, name := range kb.byAction() {
			if name == "" {
				errs = append(errs, fmt.Errorf("keys.%s.%s is empty", side, action))
			}
		}
	}
	return errors.Join(errs...)
}

func (kb KeyBindings) byAction() map[string]string {
	return map[string]string{
		"left":   kb.Left,
		"right":  kb.Right,
		"fire":   kb.Fire,
		"spread": kb.Spread,
		"speed":  kb.Speed,
	}
}
