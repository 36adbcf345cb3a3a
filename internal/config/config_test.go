package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if cfg.Day.StartHour != 7 || cfg.Day.EndHour != 22 {
		t.Fatalf("unexpected day window: %+v", cfg.Day)
	}
	if cfg.Calm.UpNextLimit != 3 {
		t.Fatalf("unexpected calm limit: %d", cfg.Calm.UpNextLimit)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "day:\n  start_hour: 6\nfocus:\n  work_minutes: 50\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Day.StartHour != 6 {
		t.Fatalf("file override not applied: %d", cfg.Day.StartHour)
	}
	if cfg.Focus.WorkMinutes != 50 {
		t.Fatalf("file override not applied: %d", cfg.Focus.WorkMinutes)
	}
	// Untouched keys keep defaults.
	if cfg.Day.EndHour != 22 {
		t.Fatalf("default lost: %d", cfg.Day.EndHour)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("day:\n  start_hour: 6\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("FOCALD_DAY_START_HOUR", "5")
	t.Setenv("FOCALD_CALM_UP_NEXT_LIMIT", "5")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Day.StartHour != 5 {
		t.Fatalf("env override not applied: %d", cfg.Day.StartHour)
	}
	if cfg.Calm.UpNextLimit != 5 {
		t.Fatalf("env override not applied: %d", cfg.Calm.UpNextLimit)
	}
}

func TestValidateRejectsBadWindow(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	cfg.Day.StartHour = 20
	cfg.Day.EndHour = 8
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation error for inverted window")
	}

	cfg, _ = Load("")
	cfg.Scheduler.Buffer = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation error for zero buffer")
	}
}
