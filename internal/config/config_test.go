package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/spheregen/pkg/mesh"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Mesh.Shape != ShapeIcosahedron {
		t.Errorf("expected shape %q, got %q", ShapeIcosahedron, cfg.Mesh.Shape)
	}
	if cfg.Mesh.Depth != 3 {
		t.Errorf("expected depth 3, got %d", cfg.Mesh.Depth)
	}
	if cfg.Mesh.IndexWidth != 16 {
		t.Errorf("expected index width 16, got %d", cfg.Mesh.IndexWidth)
	}
	if cfg.Mesh.Strategy != "recursive" {
		t.Errorf("expected strategy recursive, got %s", cfg.Mesh.Strategy)
	}
	if !cfg.Mesh.OutwardWinding {
		t.Error("expected outward winding to be enabled by default")
	}
	if cfg.Bench.Runs != 0 {
		t.Errorf("expected benchmark disabled, got %d runs", cfg.Bench.Runs)
	}
	if cfg.Bench.MaxDepth != 5 {
		t.Errorf("expected bench max depth 5, got %d", cfg.Bench.MaxDepth)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "spheregen.yaml")

	yamlContent := `
mesh:
  shape: sphere
  depth: 5
  index_width: 32
  strategy: iterative
  outward_winding: false

bench:
  runs: 10
  max_depth: 6
  csv_path: "bench.csv"

logging:
  level: "debug"
  log_file: "spheregen.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Mesh.Shape != ShapeSphere {
		t.Errorf("expected shape sphere, got %s", cfg.Mesh.Shape)
	}
	if cfg.Mesh.Depth != 5 {
		t.Errorf("expected depth 5, got %d", cfg.Mesh.Depth)
	}
	if cfg.Mesh.IndexWidth != 32 {
		t.Errorf("expected index width 32, got %d", cfg.Mesh.IndexWidth)
	}
	if cfg.Mesh.Strategy != "iterative" {
		t.Errorf("expected strategy iterative, got %s", cfg.Mesh.Strategy)
	}
	if cfg.Mesh.OutwardWinding {
		t.Error("expected outward winding to be disabled")
	}
	if cfg.Bench.Runs != 10 || cfg.Bench.MaxDepth != 6 || cfg.Bench.CSVPath != "bench.csv" {
		t.Errorf("unexpected bench config %+v", cfg.Bench)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "spheregen.log" {
		t.Errorf("expected log file 'spheregen.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(configPath, []byte("mesh:\n  depth: 1\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Mesh.Depth != 1 {
		t.Errorf("expected depth 1, got %d", cfg.Mesh.Depth)
	}
	if cfg.Mesh.Shape != ShapeIcosahedron {
		t.Errorf("expected default shape to survive, got %s", cfg.Mesh.Shape)
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Errorf("expected empty file to load, got %v", err)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad syntax", "mesh:\n  depth: not a number\n  invalid syntax here\n"},
		{"unknown field", "mesh:\n  radius: 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "invalid.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}
			if err := loadFromFile(Default(), configPath); err == nil {
				t.Error("expected error loading invalid YAML, got nil")
			}
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/spheregen.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"sphere 32 bit", func(c *Config) { c.Mesh.Shape = ShapeSphere; c.Mesh.IndexWidth = 32 }, false},
		{"unknown shape", func(c *Config) { c.Mesh.Shape = "cube" }, true},
		{"negative depth", func(c *Config) { c.Mesh.Depth = -1 }, true},
		{"index width 8", func(c *Config) { c.Mesh.IndexWidth = 8 }, true},
		{"unknown strategy", func(c *Config) { c.Mesh.Strategy = "parallel" }, true},
		{"negative runs", func(c *Config) { c.Bench.Runs = -3 }, true},
		{"negative bench depth", func(c *Config) { c.Bench.MaxDepth = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	cfg := Default()
	cfg.Mesh.Depth = -2
	if err := cfg.Validate(); !errors.Is(err, mesh.ErrNegativeDepth) {
		t.Errorf("Validate() error = %v, want %v", err, mesh.ErrNegativeDepth)
	}
}

func TestMeshOptions(t *testing.T) {
	cfg := Default()
	cfg.Mesh.Strategy = "iterative"
	opts, err := cfg.MeshOptions()
	if err != nil {
		t.Fatalf("MeshOptions() error: %v", err)
	}
	if len(opts) != 2 {
		t.Errorf("expected strategy and winding options, got %d", len(opts))
	}

	cfg.Mesh.OutwardWinding = false
	opts, _ = cfg.MeshOptions()
	if len(opts) != 1 {
		t.Errorf("expected only the strategy option, got %d", len(opts))
	}

	cfg.Mesh.Strategy = "bogus"
	if _, err := cfg.MeshOptions(); err == nil {
		t.Error("expected error for unknown strategy")
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

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "spheregen.yaml")
	if err := os.WriteFile(configPath, []byte("mesh:\n  depth: 2\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find spheregen.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "shape and depth flags",
			setup: func() {
				*flagShape = ShapeSphere
				*flagDepth = 0
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Mesh.Shape != ShapeSphere {
					t.Errorf("expected shape sphere, got %s", cfg.Mesh.Shape)
				}
				if cfg.Mesh.Depth != 0 {
					t.Errorf("expected depth 0, got %d", cfg.Mesh.Depth)
				}
			},
			teardown: func() {
				*flagShape = ""
				*flagDepth = -1
			},
		},
		{
			name: "index width and iterative flags",
			setup: func() {
				*flagIndexWidth = 32
				*flagIterative = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Mesh.IndexWidth != 32 {
					t.Errorf("expected index width 32, got %d", cfg.Mesh.IndexWidth)
				}
				if cfg.Mesh.Strategy != "iterative" {
					t.Errorf("expected strategy iterative, got %s", cfg.Mesh.Strategy)
				}
			},
			teardown: func() {
				*flagIndexWidth = 0
				*flagIterative = false
			},
		},
		{
			name: "bench flags",
			setup: func() {
				*flagRuns = 25
				*flagCSV = "out.csv"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Bench.Runs != 25 {
					t.Errorf("expected 25 runs, got %d", cfg.Bench.Runs)
				}
				if cfg.Bench.CSVPath != "out.csv" {
					t.Errorf("expected csv path out.csv, got %s", cfg.Bench.CSVPath)
				}
			},
			teardown: func() {
				*flagRuns = 0
				*flagCSV = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "spheregen.yaml")
	yamlContent := `
mesh:
  shape: sphere
  depth: 4
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagDepth = 2
	defer func() {
		*flagConfig = ""
		*flagDepth = -1
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Depth comes from the flag, shape from the file.
	if cfg.Mesh.Depth != 2 {
		t.Errorf("expected depth 2 from flag, got %d", cfg.Mesh.Depth)
	}
	if cfg.Mesh.Shape != ShapeSphere {
		t.Errorf("expected shape sphere from file, got %s", cfg.Mesh.Shape)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "spheregen.yaml")
	if err := os.WriteFile(configPath, []byte("mesh:\n  index_width: 64\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected validation error, got nil")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "spheregen.yaml")

	cfg := Default()
	cfg.Mesh.Depth = 6
	cfg.Bench.CSVPath = "runs.csv"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Mesh.Depth != 6 || loaded.Bench.CSVPath != "runs.csv" {
		t.Errorf("reloaded config = %+v, want depth 6 and csv runs.csv", loaded)
	}
}
