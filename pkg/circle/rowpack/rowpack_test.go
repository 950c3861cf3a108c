package rowpack

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/matzehuels/repomap/pkg/circle"
)

func TestPackEmpty(t *testing.T) {
	p, ok := Pack(50, nil)
	if !ok {
		t.Fatal("empty input should pack")
	}
	if len(p.Rows) != 0 || len(p.Boxes) != 0 {
		t.Errorf("got %d rows, %d boxes, want none", len(p.Rows), len(p.Boxes))
	}
}

func TestPackSingleItem(t *testing.T) {
	tests := []struct {
		size   float64
		wantOK bool
	}{
		{1, true},
		{49.99, true},
		{50, true},
		{50.01, false},
		{120, false},
	}

	for _, tt := range tests {
		p, ok := Pack(50, []float64{tt.size})
		if ok != tt.wantOK {
			t.Errorf("Pack(50, [%v]) ok = %v, want %v", tt.size, ok, tt.wantOK)
			continue
		}
		if ok && (len(p.Rows) != 1 || p.Rows[0].Offset != 0) {
			t.Errorf("Pack(50, [%v]) rows = %+v, want one row at offset 0", tt.size, p.Rows)
		}
	}
}

func TestPackThreeEqual(t *testing.T) {
	tests := []struct {
		name string
		size float64
		want []int
	}{
		{"one row", 16.66, []int{3}},
		{"spills to second row", 16.67, []int{2, 1}},
		{"largest feasible", 23.52, []int{2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := Pack(50, []float64{tt.size, tt.size, tt.size})
			if !ok {
				t.Fatalf("Pack(50, 3x%v) infeasible", tt.size)
			}
			if got := p.Counts(); !slices.Equal(got, tt.want) {
				t.Errorf("Counts() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, ok := Pack(50, []float64{23.53, 23.53, 23.53}); ok {
		t.Error("Pack(50, 3x23.53) should be infeasible")
	}
}

func TestPackInfeasibleSecondRow(t *testing.T) {
	if _, ok := Pack(50, []float64{30, 30}); ok {
		t.Error("two items of 30 cannot stack in a circle of 50")
	}
}

func TestPackRowsFitChords(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const d = 100.0

	for trial := range 500 {
		n := 1 + rng.Intn(20)
		sizes := make([]float64, n)
		for i := range sizes {
			sizes[i] = 2 + rng.Float64()*30
		}

		p, ok := Pack(d, sizes)
		if !ok {
			continue
		}
		for _, r := range p.Rows {
			if r.Offset == 0 {
				if r.Width > d || r.Height > d {
					t.Errorf("trial %d: top row %+v exceeds diameter", trial, r)
				}
				continue
			}
			limit := min(circle.WidthAtOffset(d, r.Offset), circle.WidthAtOffset(d, r.Offset+r.Height))
			if r.Width > limit {
				t.Errorf("trial %d: row %+v wider than chord %v", trial, r, limit)
			}
		}
	}
}

func TestPackPreservesOrder(t *testing.T) {
	sizes := []float64{12, 5, 20, 7, 7, 3, 15, 9}
	p, ok := Pack(80, sizes)
	if !ok {
		t.Fatal("expected feasible packing")
	}

	next := 0
	for _, r := range p.Rows {
		if r.Start != next {
			t.Fatalf("row starts at %d, want %d", r.Start, next)
		}
		next = r.End
	}
	if next != len(sizes) {
		t.Fatalf("rows cover %d items, want %d", next, len(sizes))
	}

	for i, b := range p.Boxes {
		if b.Size != sizes[i] {
			t.Errorf("box %d size = %v, want %v", i, b.Size, sizes[i])
		}
	}
}

func TestPackPositions(t *testing.T) {
	p, ok := Pack(50, []float64{10, 20, 10})
	if !ok {
		t.Fatal("expected feasible packing")
	}
	want := []circle.Box{
		{Left: 5, Top: 5, Size: 10},
		{Left: 15, Top: 0, Size: 20},
		{Left: 35, Top: 5, Size: 10},
	}
	for i, b := range p.Boxes {
		if math.Abs(b.Left-want[i].Left) > 1e-9 || math.Abs(b.Top-want[i].Top) > 1e-9 || b.Size != want[i].Size {
			t.Errorf("box %d = %+v, want %+v", i, b, want[i])
		}
	}
}

func TestFits(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		dim    Dimensions
		want   bool
	}{
		{"negative offset", -1, Dimensions{1, 1}, false},
		{"offset past bottom", 51, Dimensions{1, 1}, false},
		{"too tall", 0, Dimensions{1, 51}, false},
		{"too wide", 0, Dimensions{51, 1}, false},
		{"top row anchored", 0, Dimensions{50, 50}, true},
		{"equator band", 20, Dimensions{40, 10}, true},
		{"band too wide", 20, Dimensions{49, 10}, false},
		{"runs off bottom", 45, Dimensions{1, 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fits(50, tt.offset, tt.dim); got != tt.want {
				t.Errorf("Fits(50, %v, %+v) = %v, want %v", tt.offset, tt.dim, got, tt.want)
			}
		})
	}
}

func TestTableRange(t *testing.T) {
	table := NewTable([]float64{3, 9, 4, 1})

	tests := []struct {
		i, j int
		want Dimensions
	}{
		{0, 1, Dimensions{3, 3}},
		{0, 4, Dimensions{17, 9}},
		{2, 4, Dimensions{5, 4}},
		{3, 4, Dimensions{1, 1}},
	}
	for _, tt := range tests {
		if got := table.Range(tt.i, tt.j); got != tt.want {
			t.Errorf("Range(%d, %d) = %+v, want %+v", tt.i, tt.j, got, tt.want)
		}
	}
}

func TestTableRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Range(2, 2) should panic")
		}
	}()
	NewTable([]float64{1, 2, 3}).Range(2, 2)
}
