package circle

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestWidthAtOffset(t *testing.T) {
	tests := []struct {
		diameter, offset, want float64
	}{
		{50, 0, 0},
		{50, 25, 50},
		{50, 50, 0},
		{100, 50, 100},
		{10, 2, 8},
		{10, 8, 8},
	}

	for _, tt := range tests {
		got := WidthAtOffset(tt.diameter, tt.offset)
		if math.Abs(got-tt.want) > eps {
			t.Errorf("WidthAtOffset(%v, %v) = %v, want %v", tt.diameter, tt.offset, got, tt.want)
		}
	}
}

func TestWidthAtOffsetSymmetric(t *testing.T) {
	const d = 73.0
	for o := 0.0; o <= d; o += 0.5 {
		top := WidthAtOffset(d, o)
		bottom := WidthAtOffset(d, d-o)
		if math.Abs(top-bottom) > 1e-6 {
			t.Errorf("chord at %v = %v, chord at %v = %v", o, top, d-o, bottom)
		}
	}
}

func TestWidthAtOffsetOutside(t *testing.T) {
	if got := WidthAtOffset(10, 11); !math.IsNaN(got) {
		t.Errorf("WidthAtOffset past the bottom = %v, want NaN", got)
	}
}

func TestCircumference(t *testing.T) {
	if got := Circumference(nil, 3); got != 0 {
		t.Errorf("Circumference(nil) = %v, want 0", got)
	}
	if got := Circumference([]float64{1, 2, 3}, 2); got != 12 {
		t.Errorf("Circumference = %v, want 12", got)
	}
}

func TestMaxSize(t *testing.T) {
	if got := MaxSize(nil); got != 0 {
		t.Errorf("MaxSize(nil) = %v, want 0", got)
	}
	if got := MaxSize([]float64{3, 9, 4}); got != 9 {
		t.Errorf("MaxSize = %v, want 9", got)
	}
}

func TestBox(t *testing.T) {
	b := Box{Left: 10, Top: 20, Size: 6}
	if b.Right() != 16 {
		t.Errorf("Right() = %v, want 16", b.Right())
	}
	if b.Bottom() != 26 {
		t.Errorf("Bottom() = %v, want 26", b.Bottom())
	}
	if c := b.Center(); c.X != 13 || c.Y != 23 {
		t.Errorf("Center() = %+v, want {13 23}", c)
	}
}
