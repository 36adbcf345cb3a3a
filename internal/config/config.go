// Package config loads focald settings from layered sources: built-in
// defaults, an optional YAML file, then FOCALD_ environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Database      DatabaseConfig      `koanf:"database"`
	Day           DayConfig           `koanf:"day"`
	Calm          CalmConfig          `koanf:"calm"`
	Focus         FocusConfig         `koanf:"focus"`
	Scheduler     SchedulerConfig     `koanf:"scheduler"`
	Notifications NotificationsConfig `koanf:"notifications"`
}

type DatabaseConfig struct {
	Path string `koanf:"path"`
}

// DayConfig bounds the planning window used for free-slot suggestions.
type DayConfig struct {
	StartHour     int `koanf:"start_hour"`
	EndHour       int `koanf:"end_hour"`
	MinGapMinutes int `koanf:"min_gap_minutes"`
}

type CalmConfig struct {
	UpNextLimit int `koanf:"up_next_limit"`
}

type FocusConfig struct {
	WorkMinutes  int `koanf:"work_minutes"`
	BreakMinutes int `koanf:"break_minutes"`
}

type SchedulerConfig struct {
	Buffer int `koanf:"buffer"`
}

type NotificationsConfig struct {
	Desktop bool `koanf:"desktop"`
}

func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		configPath = expandPath(configPath)

		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	// FOCALD_DAY_START_HOUR maps to day.start_hour. A single underscore
	// separates path segments, so multi-word keys keep their last split:
	// the transform lowers and swaps the first underscore only.
	if err := k.Load(env.Provider("FOCALD_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Database.Path = expandPath(cfg.Database.Path)

	return &cfg, nil
}

func envTransform(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "FOCALD_"))
	return strings.Replace(s, "_", ".", 1)
}

func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}
	if c.Day.StartHour < 0 || c.Day.StartHour > 23 {
		return fmt.Errorf("day start_hour must be between 0 and 23")
	}
	if c.Day.EndHour < 1 || c.Day.EndHour > 24 {
		return fmt.Errorf("day end_hour must be between 1 and 24")
	}
	if c.Day.EndHour <= c.Day.StartHour {
		return fmt.Errorf("day end_hour must come after start_hour")
	}
	if c.Day.MinGapMinutes < 0 {
		return fmt.Errorf("day min_gap_minutes must not be negative")
	}
	if c.Calm.UpNextLimit <= 0 {
		return fmt.Errorf("calm up_next_limit must be positive")
	}
	if c.Focus.WorkMinutes <= 0 || c.Focus.BreakMinutes <= 0 {
		return fmt.Errorf("focus work_minutes and break_minutes must be positive")
	}
	if c.Scheduler.Buffer <= 0 {
		return fmt.Errorf("scheduler buffer must be positive")
	}
	return nil
}

func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	return path
}
