package mesh

import "fmt"

// Strategy selects how the subdivision tree is traversed.
type Strategy int

// Traversal strategies. Both visit children in the same order and produce
// identical output.
const (
	Recursive Strategy = iota // call-stack recursion
	Iterative                 // explicit LIFO work stack
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Recursive:
		return "recursive"
	case Iterative:
		return "iterative"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy converts a strategy name into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "recursive":
		return Recursive, nil
	case "iterative":
		return Iterative, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", name)
	}
}

type options struct {
	strategy Strategy
	outward  bool
}

// Option configures a generator call.
type Option func(*options)

// WithStrategy selects the traversal strategy.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithOutwardWinding makes every emitted triangle wind counter-clockwise when
// seen from outside the sphere.
//
// The child corner order flips orientation at each level, so without this
// option triangles face outward at even depths and inward at odd depths.
func WithOutwardWinding() Option {
	return func(o *options) {
		o.outward = true
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// flip reports whether triangles emitted at the given depth need reversing.
func (o options) flip(depth int) bool {
	return o.outward && depth%2 == 1
}
