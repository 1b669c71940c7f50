// Package bench times mesh generation and records the results as CSV.
package bench

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/spheregen/pkg/mesh"
)

// ErrNoRuns is returned when a benchmark is asked to run zero times.
var ErrNoRuns = errors.New("benchmark needs at least one run")

// Case is a single timed workload.
type Case struct {
	Label    string
	Generate func() error
}

// Cases returns sphere and icosahedron workloads for every depth up to maxDepth.
// Spheres switch to 32-bit indices once 16 bits no longer fit.
func Cases(maxDepth int, opts ...mesh.Option) []Case {
	var cases []Case
	for depth := 0; depth <= maxDepth; depth++ {
		d := depth
		sphere := func() error {
			_, err := mesh.GenerateSphere[uint16](d, opts...)
			return err
		}
		if d > mesh.MaxDepth[uint16]() {
			sphere = func() error {
				_, err := mesh.GenerateSphere[uint32](d, opts...)
				return err
			}
		}
		cases = append(cases,
			Case{Label: fmt.Sprintf("sphere-d%d", d), Generate: sphere},
			Case{Label: fmt.Sprintf("icosahedron-d%d", d), Generate: func() error {
				_, err := mesh.GenerateIcosahedron(d, opts...)
				return err
			}},
		)
	}
	return cases
}

// Run times each case runs times and records average, min and max durations.
func Run(cases []Case, runs int, log *zap.Logger) (*Recorder, error) {
	if runs <= 0 {
		return nil, ErrNoRuns
	}
	if log == nil {
		log = zap.NewNop()
	}

	rec := &Recorder{}
	for _, c := range cases {
		var total, lo, hi time.Duration
		for i := range runs {
			start := time.Now()
			if err := c.Generate(); err != nil {
				return nil, fmt.Errorf("%s run %d: %w", c.Label, i, err)
			}
			elapsed := time.Since(start)

			total += elapsed
			if i == 0 || elapsed < lo {
				lo = elapsed
			}
			hi = max(hi, elapsed)
		}
		avg := total / time.Duration(runs)
		rec.Log(c.Label, avg, lo, hi)
		log.Debug("benchmark case done",
			zap.String("case", c.Label),
			zap.Int("runs", runs),
			zap.Duration("average", avg),
			zap.Duration("min", lo),
			zap.Duration("max", hi))
	}
	return rec, nil
}
