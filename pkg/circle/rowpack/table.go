package rowpack

import "fmt"

// Dimensions is the bounding rectangle of a run of circles laid side by side:
// Width is the sum of their sizes and Height the largest one.
type Dimensions struct {
	Width  float64
	Height float64
}

// Table caches the [Dimensions] of every contiguous run sizes[i:j].
//
// It is a triangular matrix: dims[i][k] describes sizes[i : i+k+1]. Widths
// are accumulated left to right from i so that a run's width is always the
// same sum regardless of where the table is queried from.
type Table struct {
	dims [][]Dimensions
}

// NewTable precomputes the dimensions of every contiguous run of sizes.
func NewTable(sizes []float64) *Table {
	n := len(sizes)
	t := &Table{dims: make([][]Dimensions, n)}
	for i := range n {
		row := make([]Dimensions, n-i)
		var d Dimensions
		for k := range row {
			s := sizes[i+k]
			d.Width += s
			d.Height = max(d.Height, s)
			row[k] = d
		}
		t.dims[i] = row
	}
	return t
}

// Len returns the number of sizes the table was built from.
func (t *Table) Len() int { return len(t.dims) }

// Range returns the dimensions of sizes[i:j]. It panics unless 0 <= i < j <= Len().
func (t *Table) Range(i, j int) Dimensions {
	if i < 0 || j > t.Len() || i >= j {
		panic(fmt.Sprintf("rowpack: invalid range [%d, %d) for %d sizes", i, j, t.Len()))
	}
	return t.dims[i][j-i-1]
}
