package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"mircfg/internal/config"
)

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	cfg, ok, err := config.Load(filepath.Join(t.TempDir(), config.FileName))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Error("ok = true for a missing file")
	}
	if cfg != (config.Config{}) {
		t.Errorf("cfg = %+v, want zero", cfg)
	}
}

func TestLoad_ReadsSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	content := `
renderer = "neato"
format = "svg"
out_dir = "graphs"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, ok, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("ok = false for an existing file")
	}
	if cfg.Renderer != "neato" || cfg.Format != "svg" || cfg.OutDir != "graphs" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Section != "" {
		t.Errorf("unset section = %q, want empty", cfg.Section)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	if err := os.WriteFile(path, []byte("renderer = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := config.Load(path); err == nil {
		t.Error("malformed toml should error")
	}
}
