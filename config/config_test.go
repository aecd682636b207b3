package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFileWritesDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := LoadFile(path)

	if cfg.Width != 64 || cfg.Height != 64 || cfg.FPS != 60 {
		t.Fatalf("defaults wrong: %+v", cfg)
	}
	if cfg.Device != DeviceTerminal {
		t.Fatalf("default device = %q", cfg.Device)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("defaults file not written: %v", err)
	}
	if !strings.Contains(string(data), `"width": 64`) {
		t.Fatalf("written defaults malformed:\n%s", data)
	}
}

func TestLoadFileMergesPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"width":32,"height":16,"device":"window"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := LoadFile(path)
	if cfg.Width != 32 || cfg.Height != 16 {
		t.Fatalf("explicit fields lost: %+v", cfg)
	}
	if cfg.Device != DeviceWindow {
		t.Fatalf("device = %q", cfg.Device)
	}
	if cfg.FPS != 60 || cfg.LogDir == "" {
		t.Fatalf("missing fields not defaulted: %+v", cfg)
	}
}

func TestLoadFileRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"width":2,"height":2}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := LoadFile(path)
	if cfg.Width != 64 {
		t.Fatalf("invalid config not replaced by defaults: %+v", cfg)
	}

	if err := os.WriteFile(path, []byte(`{not json`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg = LoadFile(path)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("fallback config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	cfg.Device = "hologram"
	if cfg.Validate() == nil {
		t.Fatal("unknown device accepted")
	}
	cfg = Default()
	cfg.FPS = 500
	if cfg.Validate() == nil {
		t.Fatal("absurd fps accepted")
	}
	cfg = Default()
	cfg.BackgroundInterval = -1
	if cfg.Validate() == nil {
		t.Fatal("negative background interval accepted")
	}
	cfg = Default()
	cfg.Dim = 1.5
	if cfg.Validate() == nil {
		t.Fatal("dim above 1 accepted")
	}
	cfg = Default()
	cfg.Scanlines = -0.1
	if cfg.Validate() == nil {
		t.Fatal("negative scanlines accepted")
	}
}
