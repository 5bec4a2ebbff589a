package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "sombox"

type Config struct {
	Playlist    string `koanf:"playlist"`     // optional M3U file or URL replacing the built-in line-up
	GridColumns int    `koanf:"grid_columns"` // 0 derives the column count from the terminal width
	Country     string `koanf:"country"`      // initial guide country
	LogFile     string `koanf:"log_file"`     // enables debug logging when set

	Notifications *bool `koanf:"notifications"` // desktop notification on channel change (default: true)
	MPRIS         *bool `koanf:"mpris"`         // MPRIS remote control (default: true)

	Player PlayerConfig `koanf:"player"`
	Dial   DialConfig   `koanf:"dial"`
	Scroll ScrollConfig `koanf:"scroll"`
}

// PlayerConfig holds media backend settings.
type PlayerConfig struct {
	Command string   `koanf:"command"` // external video player (default: mpv)
	Args    []string `koanf:"args"`    // extra arguments placed before the stream URL
	Volume  int      `koanf:"volume"`  // initial volume 0-100 (default: 80)
}

// DialConfig holds numeric channel entry settings.
type DialConfig struct {
	TimeoutMS int `koanf:"timeout_ms"` // idle time before a partial number is dropped (default: 2000)
}

// ScrollConfig holds list scrolling settings.
type ScrollConfig struct {
	DebounceMS int `koanf:"debounce_ms"` // pause before focus follows manual scrolling (default: 150)
}

func Load() (*Config, error) {
	return loadFrom(getConfigPaths())
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Playlist != "" {
		cfg.Playlist = expandPath(cfg.Playlist)
	}
	if cfg.LogFile != "" {
		cfg.LogFile = expandPath(cfg.LogFile)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/sombox/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasPlaylist returns true if a playlist replaces the built-in line-up.
func (c *Config) HasPlaylist() bool {
	return c.Playlist != ""
}

// NotificationsEnabled returns whether desktop notifications are on.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications == nil || *c.Notifications
}

// MPRISEnabled returns whether the MPRIS remote is on.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS == nil || *c.MPRIS
}

// InitialCountry returns the guide country to start with.
func (c *Config) InitialCountry() string {
	if c.Country == "" {
		return "All"
	}
	return c.Country
}

// GetPlayerConfig returns the player configuration with defaults applied.
func (c *Config) GetPlayerConfig() PlayerConfig {
	cfg := c.Player

	if cfg.Command == "" {
		cfg.Command = "mpv"
	}
	if cfg.Volume <= 0 || cfg.Volume > 100 {
		cfg.Volume = 80
	}

	return cfg
}

// DialTimeout returns the numeric entry idle timeout.
func (c *Config) DialTimeout() time.Duration {
	ms := c.Dial.TimeoutMS
	if ms <= 0 || ms > 10000 {
		ms = 2000
	}
	return time.Duration(ms) * time.Millisecond
}

// ScrollDebounce returns the delay before focus follows manual scrolling.
func (c *Config) ScrollDebounce() time.Duration {
	ms := c.Scroll.DebounceMS
	if ms <= 0 || ms > 2000 {
		ms = 150
	}
	return time.Duration(ms) * time.Millisecond
}

// GetGridColumns returns the fixed grid width, or 0 to derive it.
func (c *Config) GetGridColumns() int {
	if c.GridColumns < 0 || c.GridColumns > 8 {
		return 0
	}
	return c.GridColumns
}
