// Package config handles generator configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/spheregen/pkg/mesh"
)

// Shape names accepted in MeshConfig.Shape.
const (
	ShapeSphere      = "sphere"
	ShapeIcosahedron = "icosahedron"
)

// Config holds all generator settings.
type Config struct {
	Mesh    MeshConfig    `yaml:"mesh"`
	Bench   BenchConfig   `yaml:"bench"`
	Logging LoggingConfig `yaml:"logging"`
}

// MeshConfig selects the mesh to generate.
type MeshConfig struct {
	Shape          string `yaml:"shape"`           // "sphere" or "icosahedron"
	Depth          int    `yaml:"depth"`           // Subdivision levels per base face
	IndexWidth     int    `yaml:"index_width"`     // 16 or 32 bit indices
	Strategy       string `yaml:"strategy"`        // "recursive" or "iterative"
	OutwardWinding bool   `yaml:"outward_winding"` // Force outward-facing triangles
	Weld           bool   `yaml:"weld"`            // Merge duplicate icosahedron vertices
}

// BenchConfig holds benchmark settings.
type BenchConfig struct {
	Runs     int    `yaml:"runs"`      // Timed runs per depth (0 = disabled)
	MaxDepth int    `yaml:"max_depth"` // Deepest level benchmarked
	CSVPath  string `yaml:"csv_path"`  // Results are appended here when set
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Mesh: MeshConfig{
			Shape:          ShapeIcosahedron,
			Depth:          3,
			IndexWidth:     16,
			Strategy:       mesh.Recursive.String(),
			OutwardWinding: true,
		},
		Bench: BenchConfig{
			Runs:     0,
			MaxDepth: 5,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks that the settings describe a mesh that can be generated.
func (c *Config) Validate() error {
	switch c.Mesh.Shape {
	case ShapeSphere, ShapeIcosahedron:
	default:
		return fmt.Errorf("mesh.shape: unknown shape %q", c.Mesh.Shape)
	}
	if c.Mesh.Depth < 0 {
		return fmt.Errorf("mesh.depth: %w", mesh.ErrNegativeDepth)
	}
	if c.Mesh.IndexWidth != 16 && c.Mesh.IndexWidth != 32 {
		return fmt.Errorf("mesh.index_width: must be 16 or 32, got %d", c.Mesh.IndexWidth)
	}
	if _, err := mesh.ParseStrategy(c.Mesh.Strategy); err != nil {
		return fmt.Errorf("mesh.strategy: %w", err)
	}
	if c.Bench.Runs < 0 {
		return fmt.Errorf("bench.runs: must not be negative, got %d", c.Bench.Runs)
	}
	if c.Bench.MaxDepth < 0 {
		return fmt.Errorf("bench.max_depth: %w", mesh.ErrNegativeDepth)
	}
	return nil
}

// MeshOptions converts the mesh settings into generator options.
func (c *Config) MeshOptions() ([]mesh.Option, error) {
	s, err := mesh.ParseStrategy(c.Mesh.Strategy)
	if err != nil {
		return nil, err
	}
	opts := []mesh.Option{mesh.WithStrategy(s)}
	if c.Mesh.OutwardWinding {
		opts = append(opts, mesh.WithOutwardWinding())
	}
	return opts, nil
}
