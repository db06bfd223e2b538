package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultTuningIsValid(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("default tuning invalid: %v", err)
	}
}

func TestLoadTuningOverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
player:
  lives: 0
  speed: 40
respawn:
  deadDelay: 0.5
weapons:
  missile:
    damage: 80
`)
	got, err := LoadTuning(path)
	if err != nil {
		t.Fatal(err)
	}
	def := DefaultTuning()
	if got.Player.Lives != 0 || got.Player.Speed != 40 {
		t.Errorf("player overrides not applied: %+v", got.Player)
	}
	if got.Player.MaxHealth != def.Player.MaxHealth {
		t.Errorf("expected default maxHealth %d, got %d", def.Player.MaxHealth, got.Player.MaxHealth)
	}
	if got.Respawn.DeadDelay != 0.5 || got.Respawn.InvulnerableDuration != def.Respawn.InvulnerableDuration {
		t.Errorf("unexpected respawn tuning %+v", got.Respawn)
	}
	if got.Weapons.Missile.Damage != 80 || got.Weapons.Missile.Speed != def.Weapons.Missile.Speed {
		t.Errorf("unexpected missile tuning %+v", got.Weapons.Missile)
	}
}

func TestLoadTuningRejectsInvalidValues(t *testing.T) {
	path := writeFile(t, `
player:
  maxHealth: -5
weapons:
  bullet:
    damage: -1
`)
	_, err := LoadTuning(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"maxHealth", "weapons.bullet"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}
}

func TestLoadTuningErrors(t *testing.T) {
	if _, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := LoadTuning(writeFile(t, "player: [")); err == nil {
		t.Error("expected parse error")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SHOOTER_TEST_KEY", "set")
	if got := GetEnv("SHOOTER_TEST_KEY", "fallback"); got != "set" {
		t.Errorf("expected set, got %s", got)
	}
	if got := GetEnv("SHOOTER_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %s", got)
	}
}

func TestLoadTuningFromEnv(t *testing.T) {
	t.Setenv("SHOOTER_CONFIG", "")
	got, err := LoadTuningFromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if got != DefaultTuning() {
		t.Error("expected defaults without SHOOTER_CONFIG")
	}

	t.Setenv("SHOOTER_CONFIG", writeFile(t, "enemies:\n  target: 5\n"))
	got, err = LoadTuningFromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if got.Enemies.Target != 5 {
		t.Errorf("expected enemy target 5, got %d", got.Enemies.Target)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv("LOG_LEVEL", "warn")
	logger := NewLogger(&buf, "test")
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("unexpected log output %q", buf.String())
	}

	buf.Reset()
	t.Setenv("LOG_LEVEL", "loud")
	logger = NewLogger(&buf, "test")
	if logger.GetLevel() != log.InfoLevel {
		t.Errorf("expected info level fallback, got %v", logger.GetLevel())
	}
}
