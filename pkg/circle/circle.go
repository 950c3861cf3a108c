package circle

import (
	"math"

	"github.com/samber/lo"
)

// Point is a position in layout space. The origin is the top-left corner of
// the bounding square and Y increases downward.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Box is the size x size square a circle is drawn into, anchored at its
// top-left corner.
type Box struct {
	Left float64 `json:"x" yaml:"x"`
	Top  float64 `json:"y" yaml:"y"`
	Size float64 `json:"size" yaml:"size"`
}

// Right returns the horizontal end of the box.
func (b Box) Right() float64 { return b.Left + b.Size }

// Bottom returns the vertical end of the box.
func (b Box) Bottom() float64 { return b.Top + b.Size }

// Center returns the center of the circle inscribed in the box.
func (b Box) Center() Point { return Point{X: b.Left + b.Size/2, Y: b.Top + b.Size/2} }

// WidthAtOffset returns the chord width of a circle of the given diameter at
// vertical distance offset from its top. It is only meaningful for
// 0 <= offset <= diameter; outside that range it returns NaN.
func WidthAtOffset(diameter, offset float64) float64 {
	r := diameter / 2
	return 2 * math.Sqrt(r*r-(r-offset)*(r-offset))
}

// Circumference returns the ring length needed to place sizes side by side
// with spacing after each one: sum(size) + len(sizes)*spacing.
func Circumference(sizes []float64, spacing float64) float64 {
	return lo.Sum(sizes) + float64(len(sizes))*spacing
}

// MaxSize returns the largest size, or 0 for an empty slice.
func MaxSize(sizes []float64) float64 {
	return lo.Max(sizes)
}
