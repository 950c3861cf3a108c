package sizing

import (
	"math"
	"testing"
)

func TestScale(t *testing.T) {
	m := Model{Min: 10, Max: 200}

	tests := []struct {
		name   string
		raw    int64
		scalar float64
		want   float64
	}{
		{"zero bytes", 0, 5, 10},
		{"negative bytes", -4, 5, 10},
		{"zero scalar", 100, 0, 10},
		{"below min", 1, 2, 10},
		{"in range", 100, 5, 50},
		{"at max", 10_000, 2, 200},
		{"clamped", 1_000_000, 5, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Scale(tt.raw, tt.scalar); got != tt.want {
				t.Errorf("Scale(%d, %v) = %v, want %v", tt.raw, tt.scalar, got, tt.want)
			}
		})
	}
}

func TestScaleClampedAtMax(t *testing.T) {
	m := Model{Min: 10, Max: 200}
	threshold := m.Saturation(1_000_000)
	if threshold != 0.2 {
		t.Fatalf("Saturation(1e6) = %v, want 0.2", threshold)
	}
	for _, s := range []float64{0.2, 0.5, 1, 17.3, 1e6} {
		if got := m.Scale(1_000_000, s); got != 200 {
			t.Errorf("Scale(1e6, %v) = %v, want exactly 200", s, got)
		}
	}
}

func TestScaleMonotonic(t *testing.T) {
	m := Default()
	raws := []int64{0, 1, 2, 10, 99, 100, 4096, 65536, 1 << 30}
	scalars := []float64{0, 0.01, 0.5, 1, 2.5, 10, 100}

	for _, s := range scalars {
		prev := math.Inf(-1)
		for _, raw := range raws {
			got := m.Scale(raw, s)
			if got < prev {
				t.Errorf("Scale not monotonic in raw at s=%v: %v < %v", s, got, prev)
			}
			if got < m.Min || got > m.Max {
				t.Errorf("Scale(%d, %v) = %v outside [%v, %v]", raw, s, got, m.Min, m.Max)
			}
			prev = got
		}
	}

	for _, raw := range raws {
		prev := math.Inf(-1)
		for _, s := range scalars {
			got := m.Scale(raw, s)
			if got < prev {
				t.Errorf("Scale not monotonic in scalar at raw=%d: %v < %v", raw, got, prev)
			}
			prev = got
		}
	}
}

func TestScaleAllPreservesOrder(t *testing.T) {
	m := Model{Min: 1, Max: 1000}
	got := m.ScaleAll([]int64{400, 1, 100}, 1)
	want := []float64{20, 1, 10}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		model   Model
		wantErr bool
	}{
		{Default(), false},
		{Model{Min: 5, Max: 5}, false},
		{Model{Min: 0, Max: 5}, true},
		{Model{Min: -1, Max: 5}, true},
		{Model{Min: 10, Max: 5}, true},
		{Model{Min: 1, Max: math.NaN()}, true},
	}

	for _, tt := range tests {
		err := tt.model.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%+v) error = %v, wantErr %v", tt.model, err, tt.wantErr)
		}
	}
}
