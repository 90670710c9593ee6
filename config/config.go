// Package config loads the console configuration from
// ~/.config/rradio-console/config.toml, with environment overrides for
// scripting and development.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	consoleerrors "github.com/rradio/console/errors"
)

// Config holds everything the console reads at startup. The session only
// consumes Server; the rest configures the surrounding program.
type Config struct {
	Server ServerConfig `toml:"server"`
	UI     UIConfig     `toml:"ui"`
}

// ServerConfig locates the player and tunes the reconnect behaviour.
type ServerConfig struct {
	// Host is the player's host:port. Overridden by RRADIO_SERVER.
	Host string `toml:"host"`
	// ReconnectDelay is the fixed backoff between reconnection attempts,
	// as a Go duration string.
	ReconnectDelay time.Duration `toml:"-"`
}

// UIConfig selects the startup view and log verbosity.
type UIConfig struct {
	// DefaultView is one of "player", "podcasts", "debug".
	DefaultView string `toml:"default_view"`
	// LogLevel overrides the default "info". Also settable via
	// RRADIO_LOG_LEVEL.
	LogLevel string `toml:"log_level"`
}

const (
	defaultHost           = "localhost:8000"
	defaultReconnectDelay = 3 * time.Second
	defaultView           = "player"
)

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, "rradio-console", "config.toml"), nil
}

// Load parses the config at path, falling back to defaults when the file does
// not exist. An empty path means the default location.
func Load(path string) (Config, error) {
	cfg := Config{
		Server: ServerConfig{Host: defaultHost, ReconnectDelay: defaultReconnectDelay},
		UI:     UIConfig{DefaultView: defaultView},
	}

	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Config{}, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Server struct {
			Host           string `toml:"host"`
			ReconnectDelay string `toml:"reconnect_delay"`
		} `toml:"server"`
		UI UIConfig `toml:"ui"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, consoleerrors.Wrap(err, consoleerrors.ErrCodeConfigInvalid, "failed to parse config")
	}

	if host := strings.TrimSpace(raw.Server.Host); host != "" {
		cfg.Server.Host = host
	}
	if delay := strings.TrimSpace(raw.Server.ReconnectDelay); delay != "" {
		parsed, err := time.ParseDuration(delay)
		if err != nil || parsed <= 0 {
			return Config{}, consoleerrors.ConfigInvalid(
				fmt.Sprintf("reconnect_delay %q is not a positive duration", delay))
		}
		cfg.Server.ReconnectDelay = parsed
	}
	if view := strings.TrimSpace(raw.UI.DefaultView); view != "" {
		cfg.UI.DefaultView = view
	}
	cfg.UI.LogLevel = strings.TrimSpace(raw.UI.LogLevel)

	applyEnv(&cfg)

	switch cfg.UI.DefaultView {
	case "player", "podcasts", "debug":
	default:
		return Config{}, consoleerrors.ConfigInvalid(
			fmt.Sprintf("default_view %q is not one of player, podcasts, debug", cfg.UI.DefaultView))
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if host := os.Getenv("RRADIO_SERVER"); host != "" {
		cfg.Server.Host = host
	}
	if level := os.Getenv("RRADIO_LOG_LEVEL"); level != "" {
		cfg.UI.LogLevel = level
	}
}

// WebsocketURL returns the player API endpoint for the configured host.
func (c Config) WebsocketURL() string {
	return "ws://" + c.Server.Host + "/api"
}
