package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/scene"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Editor.GridSize != 20 || !cfg.Editor.Snap || cfg.Editor.HistoryLimit != 0 {
		t.Fatalf("editor defaults = %+v", cfg.Editor)
	}
	if cfg.Room.Width != 4 || cfg.Room.Length != 5 || cfg.Room.Height != 2.8 {
		t.Fatalf("room defaults = %+v", cfg.Room)
	}
	if cfg.Window.Width != 1280 || cfg.Preview.Height != 600 {
		t.Fatalf("size defaults = %+v %+v", cfg.Window, cfg.Preview)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cfg.Log.Level = "debug"
	cfg.Editor.Snap = false
	cfg.Editor.HistoryLimit = 50
	cfg.Room.Unit = "feet"
	cfg.Room.Width = 20
	cfg.Room.Preset = "Pastels"
	cfg.Catalog.DB = "/tmp/catalog.db"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if got.Log.Level != "debug" || got.Editor.Snap || got.Editor.HistoryLimit != 50 {
		t.Fatalf("reloaded = %+v", got)
	}
	if got.Room.Unit != "feet" || got.Room.Width != 20 || got.Catalog.DB != "/tmp/catalog.db" {
		t.Fatalf("reloaded room/catalog = %+v %+v", got.Room, got.Catalog)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("OTR_EDITOR_GRID_SIZE", "25")
	t.Setenv("OTR_LOG_LEVEL", "warn")
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Editor.GridSize != 25 || cfg.Log.Level != "warn" {
		t.Fatalf("env not applied: %+v %+v", cfg.Editor, cfg.Log)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("editor: [unclosed"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestSceneRoom(t *testing.T) {
	cfg := &Config{Room: RoomConfig{Width: 30, Length: 10, Height: 3, Unit: "ft", Preset: "cool"}}
	r, err := cfg.SceneRoom()
	if err != nil {
		t.Fatalf("SceneRoom failed: %v", err)
	}
	if r.Unit != scene.Feet || r.Width != 30 || r.Length != 10 {
		t.Fatalf("room = %+v", r)
	}
	if lim := scene.LimitsFor(scene.Feet); r.Height != lim.MinHeight {
		t.Fatalf("height = %v, want clamp to %v", r.Height, lim.MinHeight)
	}
	if scene.Hex(r.Walls) != "#4B9CD3" {
		t.Fatalf("walls = %s", scene.Hex(r.Walls))
	}

	cfg.Room.Preset = "Neon"
	if _, err := cfg.SceneRoom(); err == nil {
		t.Fatal("expected error for unknown preset")
	}
	cfg.Room.Unit = "parsecs"
	if _, err := cfg.SceneRoom(); err == nil {
		t.Fatal("expected error for unknown unit")
	}
}
