// Package radial places an ordered list of circles evenly around a ring.
//
// Each item owns an angular span proportional to size+spacing. Items are
// walked clockwise from the top of the ring (angle 0) and placed at the
// middle of their span, so the spans tile the full turn without overlapping:
//
//	radius = diameter / 2
//	circ   = sum(size_i + spacing)
//	rpu    = 2π / circ              (radians per unit of length)
//	span_i = (size_i + spacing) * rpu
//
// The top-left anchor of item i is center + radius*(sin a, -cos a) - size/2
// where a is the middle of its span.
package radial

import (
	"math"

	"github.com/matzehuels/repomap/pkg/circle"
)

// Ring describes where items are placed.
type Ring struct {
	Diameter float64
	Spacing  float64
	Center   circle.Point
}

// Placement is the position of one item on the ring. Angles are in radians,
// measured clockwise from the top.
type Placement struct {
	Index int        `json:"index" yaml:"index"`
	Start float64    `json:"start" yaml:"start"`
	Angle float64    `json:"angle" yaml:"angle"`
	End   float64    `json:"end" yaml:"end"`
	Box   circle.Box `json:"box" yaml:"box"`
}

// Place assigns every size an angle and a top-left anchor on the ring,
// preserving input order. It returns nil for an empty list.
func Place(sizes []float64, ring Ring) []Placement {
	if len(sizes) == 0 {
		return nil
	}
	circ := circle.Circumference(sizes, ring.Spacing)
	if circ <= 0 {
		return nil
	}

	radius := ring.Diameter / 2
	rpu := 2 * math.Pi / circ

	out := make([]Placement, len(sizes))
	var angle float64
	for i, size := range sizes {
		half := (size + ring.Spacing) * rpu / 2
		start := angle
		angle += half
		mid := angle
		angle += half

		out[i] = Placement{
			Index: i,
			Start: start,
			Angle: mid,
			End:   angle,
			Box: circle.Box{
				Left: ring.Center.X + radius*math.Sin(mid) - size/2,
				Top:  ring.Center.Y - radius*math.Cos(mid) - size/2,
				Size: size,
			},
		}
	}
	return out
}

// Window returns the ring diameter that fits sizes with the given spacing,
// and the window (ring diameter plus the largest size) that contains every
// placed item.
func Window(sizes []float64, spacing float64) (ringDiameter, window float64) {
	if len(sizes) == 0 {
		return 0, 0
	}
	ringDiameter = circle.Circumference(sizes, spacing) / math.Pi
	return ringDiameter, ringDiameter + circle.MaxSize(sizes)
}

// Centered returns the ring for sizes, centered inside its [Window].
func Centered(sizes []float64, spacing float64) (Ring, float64) {
	d, w := Window(sizes, spacing)
	return Ring{Diameter: d, Spacing: spacing, Center: circle.Point{X: w / 2, Y: w / 2}}, w
}
