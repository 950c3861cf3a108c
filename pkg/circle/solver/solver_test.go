package solver

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/repomap/pkg/circle/rowpack"
	"github.com/matzehuels/repomap/pkg/sizing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestSolveEmpty(t *testing.T) {
	res := Solve(nil, 50, sizing.Default())
	if res.Scalar != 0 || !res.Feasible || len(res.Diagnostics) != 0 {
		t.Errorf("Solve(nil) = %+v, want scalar 0, feasible, no diagnostics", res)
	}
}

func TestSolveThreeEqualItems(t *testing.T) {
	res := Solve([]int64{1, 1, 1}, 50, sizing.Model{Min: 10, Max: 200}, WithPrecision(3))
	if !near(res.Scalar, 23.52) {
		t.Fatalf("Scalar = %v, want 23.52", res.Scalar)
	}
	if !res.Feasible || len(res.Diagnostics) != 0 {
		t.Errorf("unexpected result %+v", res)
	}

	sizes := sizing.Model{Min: 10, Max: 200}.ScaleAll([]int64{1, 1, 1}, res.Scalar)
	if _, ok := rowpack.Pack(50, sizes); !ok {
		t.Error("solved scalar must be feasible")
	}
	sizes = sizing.Model{Min: 10, Max: 200}.ScaleAll([]int64{1, 1, 1}, res.Scalar+0.01)
	if _, ok := rowpack.Pack(50, sizes); ok {
		t.Error("one step above the solved scalar must be infeasible")
	}
}

func TestSolveIterationCap(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	res := Solve(
		[]int64{1_000_000}, 500, sizing.Model{Min: 10, Max: 200},
		WithPrecision(3), WithMaxIterations(1000), WithLogger(logger),
	)

	if !near(res.Scalar, 1110) {
		t.Errorf("Scalar = %v, want 1110", res.Scalar)
	}
	if len(res.Diagnostics) != 3 {
		t.Fatalf("got %d diagnostics, want one per level: %+v", len(res.Diagnostics), res.Diagnostics)
	}
	for i, d := range res.Diagnostics {
		if d.Level != i {
			t.Errorf("diagnostic %d level = %d", i, d.Level)
		}
	}
	if !res.CapReached() {
		t.Error("CapReached() = false")
	}
	if res.Iterations != 3000 {
		t.Errorf("Iterations = %d, want 3000", res.Iterations)
	}
	if !strings.Contains(buf.String(), "iteration cap reached") {
		t.Errorf("cap not logged, got %q", buf.String())
	}
}

func TestSolveInfeasibleStart(t *testing.T) {
	res := Solve([]int64{5, 5}, 15, sizing.Model{Min: 10, Max: 200})
	if res.Feasible {
		t.Fatal("two items of minimum size 10 cannot fit a diameter of 15")
	}
	if res.Scalar != 0 || len(res.Diagnostics) != 1 {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestSolveDeterministic(t *testing.T) {
	raws := []int64{120, 4000, 9, 77, 1500, 300, 18}
	first := Solve(raws, 400, sizing.Default())
	for range 5 {
		if got := Solve(raws, 400, sizing.Default()); got.Scalar != first.Scalar || got.Iterations != first.Iterations {
			t.Fatalf("Solve not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestSolveMonotonicInTarget(t *testing.T) {
	raws := []int64{120, 4000, 9, 77, 1500, 300, 18}
	pred := WithPredicate(Circumference{Spacing: 2})

	prev := -1.0
	for target := 100.0; target <= 600; target += 25 {
		res := Solve(raws, target, sizing.Default(), pred, WithPrecision(3))
		if res.Scalar < prev {
			t.Errorf("target %v: scalar %v < previous %v", target, res.Scalar, prev)
		}
		prev = res.Scalar
	}
}

func TestSolveCircumference(t *testing.T) {
	model := sizing.Model{Min: 1, Max: 1000}
	res := Solve([]int64{100, 100}, 100, model, WithPredicate(Circumference{}), WithPrecision(3))
	if !near(res.Scalar, 6.11) {
		t.Errorf("Scalar = %v, want 6.11", res.Scalar)
	}
	if res.Predicate != "ring" {
		t.Errorf("Predicate = %q, want ring", res.Predicate)
	}
}

func TestCircumferenceRequired(t *testing.T) {
	c := Circumference{Spacing: 1}
	if got := c.Required(nil); got != 0 {
		t.Errorf("Required(nil) = %v, want 0", got)
	}
	sizes := []float64{10, 20}
	circ := 32.0
	want := circ/math.Pi + 20
	if got := c.Required(sizes); !near(got, want) {
		t.Errorf("Required = %v, want %v", got, want)
	}
	if !c.Feasible(sizes, want) || c.Feasible(sizes, want-0.01) {
		t.Error("Feasible should accept exactly the required window")
	}
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		v    float64
		d    int
		want float64
	}{
		{23.5 + 0.01, 2, 23.51},
		{0.1 + 0.2, 1, 0.3},
		{1.23456, 0, 1},
		{1.5, 0, 2},
	}
	for _, tt := range tests {
		if got := roundTo(tt.v, tt.d); got != tt.want {
			t.Errorf("roundTo(%v, %d) = %v, want %v", tt.v, tt.d, got, tt.want)
		}
	}
}
