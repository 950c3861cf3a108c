package solver

import (
	"github.com/matzehuels/repomap/pkg/circle/radial"
	"github.com/matzehuels/repomap/pkg/circle/rowpack"
)

// Predicate decides whether a list of scaled sizes fits a target diameter.
//
// The search assumes a predicate is monotonic in the scalar and stops at the
// first rejected step.
type Predicate interface {
	// Name identifies the predicate in logs and diagnostics.
	Name() string
	// Feasible reports whether sizes fit within target.
	Feasible(sizes []float64, target float64) bool
}

// RowFit accepts sizes that [rowpack.Pack] can arrange in rows inside a
// circle of the target diameter.
type RowFit struct{}

// Name implements [Predicate].
func (RowFit) Name() string { return "rows" }

// Feasible implements [Predicate].
func (RowFit) Feasible(sizes []float64, target float64) bool {
	_, ok := rowpack.Pack(target, sizes)
	return ok
}

// Circumference accepts sizes whose ring, plus the largest item sticking out
// on both sides, stays within the target diameter.
type Circumference struct {
	Spacing float64
}

// Name implements [Predicate].
func (Circumference) Name() string { return "ring" }

// Feasible implements [Predicate].
func (c Circumference) Feasible(sizes []float64, target float64) bool {
	return c.Required(sizes) <= target
}

// Required returns the window needed to hold sizes on a ring:
// circumference/π + max(size). It is 0 for an empty list.
func (c Circumference) Required(sizes []float64) float64 {
	_, window := radial.Window(sizes, c.Spacing)
	return window
}
