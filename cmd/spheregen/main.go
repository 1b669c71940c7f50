// Package main is the entry point for the spheregen mesh generator.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/spheregen/internal/bench"
	"github.com/Faultbox/spheregen/internal/config"
	"github.com/Faultbox/spheregen/internal/logger"
	"github.com/Faultbox/spheregen/pkg/mesh"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("spheregen failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	opts, err := cfg.MeshOptions()
	if err != nil {
		return err
	}

	st, err := generate(cfg.Mesh, opts)
	if err != nil {
		return err
	}
	logger.Info("mesh generated",
		zap.String("shape", cfg.Mesh.Shape),
		zap.Int("depth", cfg.Mesh.Depth),
		zap.String("strategy", cfg.Mesh.Strategy),
		zap.Int("vertices", st.vertices),
		zap.Int("triangles", st.triangles),
		zap.Bool("indexed", st.indexed),
		zap.Float32s("min", st.bounds.Min[:]),
		zap.Float32s("max", st.bounds.Max[:]))

	if cfg.Bench.Runs == 0 {
		return nil
	}

	rec, err := bench.Run(bench.Cases(cfg.Bench.MaxDepth, opts...), cfg.Bench.Runs, logger.Named("bench"))
	if err != nil {
		return fmt.Errorf("benchmark: %w", err)
	}
	if err := rec.Print(os.Stdout); err != nil {
		return err
	}
	if cfg.Bench.CSVPath != "" {
		if err := rec.Save(cfg.Bench.CSVPath); err != nil {
			return fmt.Errorf("saving benchmark: %w", err)
		}
		logger.Info("benchmark saved", zap.String("path", cfg.Bench.CSVPath), zap.Int("cases", len(rec.Entries)))
	}
	return nil
}

type stats struct {
	vertices  int
	triangles int
	indexed   bool
	bounds    mesh.Bounds
}

func generate(mc config.MeshConfig, opts []mesh.Option) (stats, error) {
	switch mc.Shape {
	case config.ShapeSphere:
		if mc.IndexWidth == 32 {
			return sphereStats[uint32](mc.Depth, opts)
		}
		return sphereStats[uint16](mc.Depth, opts)
	default:
		s, err := mesh.GenerateIcosahedron(mc.Depth, opts...)
		if err != nil {
			return stats{}, err
		}
		if !mc.Weld {
			return stats{len(s.Vertices), s.TriangleCount(), false, s.Bounds()}, nil
		}
		if mc.IndexWidth == 32 {
			return weldStats[uint32](s)
		}
		return weldStats[uint16](s)
	}
}

func sphereStats[I mesh.Index](depth int, opts []mesh.Option) (stats, error) {
	m, err := mesh.GenerateSphere[I](depth, opts...)
	if err != nil {
		return stats{}, err
	}
	return stats{len(m.Vertices), len(m.Triangles), true, m.Bounds()}, nil
}

func weldStats[I mesh.Index](s *mesh.Soup) (stats, error) {
	m, err := mesh.Weld[I](s)
	if err != nil {
		return stats{}, err
	}
	return stats{len(m.Vertices), len(m.Triangles), true, m.Bounds()}, nil
}
