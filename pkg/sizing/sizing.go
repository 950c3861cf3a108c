// Package sizing maps raw byte counts to bounded visual sizes.
//
// A [Model] applies a square-root law, scalar * sqrt(rawSize), and clamps the
// result to [Model.Min, Model.Max]. The square root keeps area, not diameter,
// roughly proportional to byte count, so a file twice as large reads as a
// circle twice the area.
//
// Sizes are monotonic non-decreasing in both the raw size (for a fixed
// scalar) and the scalar (for a fixed raw size). This is what lets the solver
// in pkg/circle/solver search for the largest feasible scalar by stepping it
// upward.
//
//	m := sizing.Model{Min: 10, Max: 200}
//	m.Scale(0, 5)         // 10 (empty files map to Min)
//	m.Scale(100, 5)       // 50
//	m.Scale(1_000_000, 5) // 200 (clamped)
package sizing

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

const (
	// DefaultMin is the smallest visual size an item can take.
	DefaultMin = 10.0

	// DefaultMax is the largest visual size an item can take.
	DefaultMax = 200.0
)

// Model is the canonical size law. The zero value is not usable; start from
// [Default] or set both bounds.
type Model struct {
	Min float64 `json:"min_size" toml:"min_size"`
	Max float64 `json:"max_size" toml:"max_size"`
}

// Default returns a model clamped to [DefaultMin, DefaultMax].
func Default() Model {
	return Model{Min: DefaultMin, Max: DefaultMax}
}

// Validate reports whether the bounds describe a usable model.
func (m Model) Validate() error {
	if m.Min <= 0 || math.IsNaN(m.Min) {
		return fmt.Errorf("min size must be positive, got %v", m.Min)
	}
	if math.IsNaN(m.Max) || m.Max < m.Min {
		return fmt.Errorf("max size %v must not be below min size %v", m.Max, m.Min)
	}
	return nil
}

// Scale returns scalar * sqrt(raw) clamped to [m.Min, m.Max].
// Zero and negative raw sizes, and non-finite intermediate values, map to m.Min.
func (m Model) Scale(raw int64, scalar float64) float64 {
	if raw <= 0 {
		return m.Min
	}
	return m.clamp(scalar * math.Sqrt(float64(raw)))
}

// ScaleAll applies [Model.Scale] to every raw size, preserving order.
func (m Model) ScaleAll(raws []int64, scalar float64) []float64 {
	return lo.Map(raws, func(raw int64, _ int) float64 {
		return m.Scale(raw, scalar)
	})
}

// Saturation returns the smallest scalar at which raw reaches m.Max.
// It returns +Inf for raw sizes that never leave m.Min.
func (m Model) Saturation(raw int64) float64 {
	if raw <= 0 {
		return math.Inf(1)
	}
	return m.Max / math.Sqrt(float64(raw))
}

func (m Model) clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < m.Min:
		return m.Min
	case v > m.Max:
		return m.Max
	}
	return v
}
