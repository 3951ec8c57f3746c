package config

import (
	"path/filepath"
	"testing"
)

func withTempConfig(t *testing.T) {
	t.Helper()
	origDir, origPath := configDir, configPath
	configDir = t.TempDir()
	configPath = filepath.Join(configDir, "config.json")
	t.Cleanup(func() {
		configDir, configPath = origDir, origPath
	})
}

func TestLoadMissingFile(t *testing.T) {
	withTempConfig(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("missing config file should not be an error: %v", err)
	}
	if cfg.ModelPath != "" || len(cfg.DefaultIntents) != 0 {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	withTempConfig(t)

	saved := &Config{
		ModelPath:      "/models/assistant.zip",
		DefaultIntents: []string{"MakeCoffee", "MakeTea"},
	}
	if err := Save(saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ModelPath != saved.ModelPath {
		t.Errorf("ModelPath = %q", cfg.ModelPath)
	}
	if len(cfg.DefaultIntents) != 2 || cfg.DefaultIntents[0] != "MakeCoffee" {
		t.Errorf("DefaultIntents = %v", cfg.DefaultIntents)
	}
}

func TestPath(t *testing.T) {
	withTempConfig(t)

	if Path() != configPath {
		t.Errorf("Path() = %q, want %q", Path(), configPath)
	}
}
