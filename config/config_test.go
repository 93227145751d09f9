package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with empty environment failed: %v", err)
	}
	if cfg.EliminationInterval != 4*time.Second {
		t.Errorf("Expected 4s interval, got %v", cfg.EliminationInterval)
	}
	if cfg.FrameRate != 30 {
		t.Errorf("Expected 30 fps, got %d", cfg.FrameRate)
	}
	if cfg.Muted {
		t.Error("Expected sound on by default")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LASTTOUCH_ELIMINATION_INTERVAL", "1500ms")
	t.Setenv("LASTTOUCH_FPS", "60")
	t.Setenv("LASTTOUCH_MUTED", "true")
	t.Setenv("LASTTOUCH_SEED", "12345")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.EliminationInterval != 1500*time.Millisecond {
		t.Errorf("Interval %v, want 1.5s", cfg.EliminationInterval)
	}
	if cfg.FrameRate != 60 || !cfg.Muted || cfg.Seed != 12345 {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if cfg.FrameInterval() != time.Second/60 {
		t.Errorf("FrameInterval %v, want %v", cfg.FrameInterval(), time.Second/60)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"Zero interval", "LASTTOUCH_ELIMINATION_INTERVAL", "0s"},
		{"Negative interval", "LASTTOUCH_ELIMINATION_INTERVAL", "-2s"},
		{"Zero fps", "LASTTOUCH_FPS", "0"},
		{"Absurd fps", "LASTTOUCH_FPS", "10000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.EliminationInterval != 4000*time.Millisecond {
		t.Errorf("Default interval %v", cfg.EliminationInterval)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("Default config invalid: %v", err)
	}
}
