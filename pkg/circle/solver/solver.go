// Package solver searches for the largest uniform scale factor at which a
// list of items still fits a target diameter.
//
// The search refines one decimal digit per level. Level i steps the scalar
// by 10^-i for as long as the [Predicate] accepts the scaled sizes, then hands
// the last accepted value to the next, finer level:
//
//	level 0: 0 -> 1 -> ... -> 23          (24 fails)
//	level 1: 23 -> 23.1 -> ... -> 23.5    (23.6 fails)
//	level 2: 23.5 -> 23.51 -> 23.52       (23.53 fails)
//
// After the last level the scalar is rounded to Precision-1 decimals. Because
// sizes are clamped to a maximum, some inputs stay feasible forever; each
// level therefore stops after MaxIterations accepted steps and records a
// [Diagnostic] instead of looping.
//
// The solver never returns an error. Empty input yields a scalar of 0, and
// input that does not fit even at the smallest sizes yields a [Result] with
// Feasible set to false.
package solver

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/repomap/pkg/sizing"
)

const (
	// DefaultPrecision is the number of refinement levels (1, 0.1, ... 0.0001).
	DefaultPrecision = 5

	// DefaultMaxIterations caps the accepted steps of a single level.
	DefaultMaxIterations = 10_000
)

// Diagnostic records a condition that cut the search short.
type Diagnostic struct {
	Level     int     `json:"level" yaml:"level"`
	Increment float64 `json:"increment" yaml:"increment"`
	Scalar    float64 `json:"scalar" yaml:"scalar"`
	Message   string  `json:"message" yaml:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("level %d (step %g) at scalar %g: %s", d.Level, d.Increment, d.Scalar, d.Message)
}

// Result is the outcome of [Solve].
type Result struct {
	Scalar      float64      `json:"scalar" yaml:"scalar"`
	Feasible    bool         `json:"feasible" yaml:"feasible"`
	Iterations  int          `json:"iterations" yaml:"iterations"`
	Predicate   string       `json:"predicate" yaml:"predicate"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// CapReached reports whether any level stopped at the iteration cap.
func (r Result) CapReached() bool {
	for _, d := range r.Diagnostics {
		if d.Message == msgCapReached {
			return true
		}
	}
	return false
}

const (
	msgCapReached = "iteration cap reached"
	msgInfeasible = "infeasible at minimum sizes"
)

type config struct {
	predicate     Predicate
	precision     int
	maxIterations int
	logger        *log.Logger
}

// Option configures [Solve].
type Option func(*config)

// WithPredicate sets the feasibility test. The default is [RowFit].
func WithPredicate(p Predicate) Option {
	return func(c *config) { c.predicate = p }
}

// WithPrecision sets the number of refinement levels. Values below 1 are
// treated as 1.
func WithPrecision(levels int) Option {
	return func(c *config) { c.precision = levels }
}

// WithMaxIterations sets the per-level step cap. Values below 1 select
// [DefaultMaxIterations].
func WithMaxIterations(n int) Option {
	return func(c *config) { c.maxIterations = n }
}

// WithLogger sets the logger diagnostics are written to.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Solve returns the largest scalar for which model-scaled raws satisfy the
// predicate against target.
func Solve(raws []int64, target float64, model sizing.Model, opts ...Option) Result {
	cfg := config{
		predicate:     RowFit{},
		precision:     DefaultPrecision,
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.precision = max(cfg.precision, 1)
	if cfg.maxIterations < 1 {
		cfg.maxIterations = DefaultMaxIterations
	}
	logger := cfg.logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	res := Result{Predicate: cfg.predicate.Name(), Feasible: true}
	if len(raws) == 0 {
		return res
	}

	feasible := func(scalar float64) bool {
		return cfg.predicate.Feasible(model.ScaleAll(raws, scalar), target)
	}

	if !feasible(0) {
		d := Diagnostic{Level: 0, Increment: 1, Scalar: 0, Message: msgInfeasible}
		logger.Warn(msgInfeasible, "predicate", res.Predicate, "items", len(raws), "target", target)
		res.Feasible = false
		res.Diagnostics = append(res.Diagnostics, d)
		return res
	}

	var scalar float64
	for level := range cfg.precision {
		inc := math.Pow(10, -float64(level))
		steps := 0
		for {
			next := roundTo(scalar+inc, level)
			if !feasible(next) {
				break
			}
			if steps == cfg.maxIterations {
				d := Diagnostic{Level: level, Increment: inc, Scalar: scalar, Message: msgCapReached}
				logger.Warn(msgCapReached, "predicate", res.Predicate, "level", level, "step", inc, "scalar", scalar)
				res.Diagnostics = append(res.Diagnostics, d)
				break
			}
			scalar = next
			steps++
		}
		res.Iterations += steps
		logger.Debug("refined scalar", "level", level, "step", inc, "scalar", scalar, "steps", steps)
	}

	res.Scalar = roundTo(scalar, cfg.precision-1)
	return res
}

// roundTo rounds v to the given number of decimals. Stepping through rounded
// values keeps the search free of accumulated float error.
func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
