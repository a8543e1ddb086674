package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tile-robot/internal/component"
	"tile-robot/internal/system"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "robot.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Rules() != system.DefaultRules() {
		t.Errorf("Rules() = %+v; want %+v", cfg.Rules(), system.DefaultRules())
	}
	if len(cfg.Keys) != len(DefaultKeys()) {
		t.Errorf("got %d key bindings; want %d", len(cfg.Keys), len(DefaultKeys()))
	}
}

func TestDefaultsAreNotShared(t *testing.T) {
	cfg := Default()
	cfg.Keys["w"][2] = "down"
	delete(cfg.Keys, "r")
	keys := DefaultKeys()
	if keys["w"][2] != "up" || len(keys["r"]) == 0 {
		t.Fatal("mutating a Config must not change DefaultKeys")
	}
	if Default().Keys["w"][2] != "up" {
		t.Fatal("mutating a Config must not change later Defaults")
	}

	rules := system.DefaultRules()
	rules.StartEnergy = 99
	if system.DefaultRules().StartEnergy == 99 {
		t.Fatal("mutating a Rules value must not change DefaultRules")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
start_energy: 3
glitch_delay_ms: 500
spawn: {x: -4, y: 7}
canvas_tiles: 12
keys:
  k: [robotAction, move, up]
  w: []
  "=": [cameraAction, zoom, in]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := system.Rules{
		StartEnergy: 3,
		GlitchDelay: 500 * time.Millisecond,
		Spawn:       component.Position{X: -4, Y: 7},
	}
	if cfg.Rules() != want {
		t.Errorf("Rules() = %+v; want %+v", cfg.Rules(), want)
	}
	if cfg.SpawnPos() != (component.Position{X: -4, Y: 7}) {
		t.Errorf("SpawnPos() = %v", cfg.SpawnPos())
	}
	if cfg.CanvasTiles != 12 || cfg.TilePixels != 64 {
		t.Errorf("canvas = %d tiles of %d px; want 12 of 64", cfg.CanvasTiles, cfg.TilePixels)
	}
	if _, ok := cfg.Keys["w"]; ok {
		t.Error("empty binding should unbind w")
	}
	if got := strings.Join(cfg.Keys["k"], " "); got != "robotAction move up" {
		t.Errorf("k = %q", got)
	}
	if _, ok := cfg.Keys["a"]; !ok {
		t.Error("defaults not mentioned in the file must stay bound")
	}
}

func TestLoadZeroEnergy(t *testing.T) {
	cfg, err := Load(writeConfig(t, "start_energy: 0\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StartEnergy != 0 {
		t.Errorf("StartEnergy = %d; want 0", cfg.StartEnergy)
	}
}

func TestLoadRejectsBadBindings(t *testing.T) {
	cases := []struct {
		name string
		body string
		want error
	}{
		{"unknown action", "keys:\n  x: [robotAction, fly]\n", system.ErrUnknownAction},
		{"bad direction", "keys:\n  x: [cameraAction, move, north]\n", system.ErrInvalidArgs},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v; want %v", err, tc.want)
			}
		})
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	for _, body := range []string{
		"start_energy: -1\n",
		"glitch_delay_ms: -5\n",
		"tile_pixels: 0\n",
		"spawn: [1, 2]\n",
	} {
		if _, err := Load(writeConfig(t, body)); err == nil {
			t.Errorf("Load(%q) should fail", body)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v; want os.ErrNotExist", err)
	}
}
