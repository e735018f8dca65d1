package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8091" {
		t.Errorf("expected default port 8091, got %s", cfg.Port)
	}
	if cfg.MaxLevel != 3 {
		t.Errorf("expected default max level 3, got %d", cfg.MaxLevel)
	}
	if cfg.WriteConcurrency != 4 {
		t.Errorf("expected default concurrency 4, got %d", cfg.WriteConcurrency)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DEFAULT_MAX_LEVEL", "2")
	t.Setenv("DOCSPLIT_API_KEY", "secret")

	cfg := Load()
	if cfg.Port != "9000" || cfg.MaxLevel != 2 || cfg.APIKey != "secret" {
		t.Errorf("env not applied: %+v", cfg)
	}
}

func TestLoadFile_Overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("max_level: 4\nout_dir: chapters\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(Load(), path, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxLevel != 4 {
		t.Errorf("expected max level 4 from file, got %d", cfg.MaxLevel)
	}
	if cfg.OutDir != "chapters" {
		t.Errorf("expected out dir from file, got %s", cfg.OutDir)
	}
	// Untouched fields keep their env defaults.
	if cfg.Port != "8091" {
		t.Errorf("expected port untouched, got %s", cfg.Port)
	}
}

func TestLoadFile_MissingImplicitIsFine(t *testing.T) {
	cfg, err := LoadFile(Load(), filepath.Join(t.TempDir(), "nope.yaml"), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxLevel != 3 {
		t.Errorf("expected defaults preserved, got %+v", cfg)
	}
}

func TestLoadFile_MissingExplicitFails(t *testing.T) {
	if _, err := LoadFile(Load(), filepath.Join(t.TempDir(), "nope.yaml"), true); err == nil {
		t.Error("expected an error for an explicitly requested missing file")
	}
}

func TestValidate(t *testing.T) {
	cfg := Load()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
	cfg.MaxLevel = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for level 0")
	}
	cfg.MaxLevel = 7
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for level 7")
	}
}
