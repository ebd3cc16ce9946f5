package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output.Path != "" {
		t.Errorf("expected empty output path, got %s", cfg.Output.Path)
	}
	if !cfg.Sampling.ClampLow {
		t.Error("expected clamp_low to be true by default")
	}
	if cfg.Render.Workers != 0 {
		t.Errorf("expected workers 0 (one per CPU), got %d", cfg.Render.Workers)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
output:
  path: "result.bmp"

sampling:
  clamp_low: false

render:
  workers: 4

logging:
  level: "debug"
  log_file: "convert.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Output.Path != "result.bmp" {
		t.Errorf("expected output path 'result.bmp', got %s", cfg.Output.Path)
	}
	if cfg.Sampling.ClampLow {
		t.Error("expected clamp_low to be false")
	}
	if cfg.Render.Workers != 4 {
		t.Errorf("expected workers 4, got %d", cfg.Render.Workers)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "convert.log" {
		t.Errorf("expected log file 'convert.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
render:
  workers: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "output flag",
			setup: func() {
				*flagOutput = "custom.bmp"
			},
			verify: func(cfg *Config) {
				if cfg.Output.Path != "custom.bmp" {
					t.Errorf("expected output 'custom.bmp', got %s", cfg.Output.Path)
				}
			},
			teardown: func() {
				*flagOutput = ""
			},
		},
		{
			name: "workers flag",
			setup: func() {
				*flagWorkers = 8
			},
			verify: func(cfg *Config) {
				if cfg.Render.Workers != 8 {
					t.Errorf("expected workers 8, got %d", cfg.Render.Workers)
				}
			},
			teardown: func() {
				*flagWorkers = -1
			},
		},
		{
			name: "workers flag zero is an override",
			setup: func() {
				*flagWorkers = 0
			},
			verify: func(cfg *Config) {
				if cfg.Render.Workers != 0 {
					t.Errorf("expected workers 0, got %d", cfg.Render.Workers)
				}
			},
			teardown: func() {
				*flagWorkers = -1
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
render:
  workers: 2
logging:
  level: "warn"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWorkers = 6
	defer func() {
		*flagConfig = ""
		*flagWorkers = -1
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Workers comes from the flag (6), not the file (2).
	if cfg.Render.Workers != 6 {
		t.Errorf("expected workers 6 from flag, got %d", cfg.Render.Workers)
	}

	// Level comes from the file since no flag overrides it.
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected level 'warn' from file, got %s", cfg.Logging.Level)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Render.Workers = 3
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if loaded.Render.Workers != 3 {
		t.Errorf("expected workers 3 after round-trip, got %d", loaded.Render.Workers)
	}
}
