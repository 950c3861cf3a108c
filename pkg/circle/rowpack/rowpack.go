// Package rowpack decides whether an ordered list of circles fits into rows
// inside a bounding circle.
//
// Rows are stacked from the top of the bounding circle downward and each row
// is centered horizontally. Items keep their input order: row k holds a
// contiguous slice of the input that follows row k-1.
//
// # Fit Rule
//
// A row of width w and height h starting at vertical offset o fits inside a
// circle of diameter D when it stays within the narrower of the two chords
// bounding its band:
//
//	w <= min(WidthAtOffset(D, o), WidthAtOffset(D, o+h))
//
// The top row (o == 0) is the exception. Its upper chord has zero width, so
// it is anchored to the full diameter instead: w <= D and h <= D. This is
// what makes a single circle fit exactly when its size does not exceed D.
//
// # Greedy Packing
//
// [Pack] opens a row with the next unplaced item and extends it one item at a
// time while the row still fits. When the next item cannot even start a row
// of its own, packing is infeasible. There is no backtracking, so an input
// that a smarter partition could fit may still be reported infeasible.
package rowpack

import (
	"github.com/matzehuels/repomap/pkg/circle"
)

// Row is a contiguous run of items, sizes[Start:End], placed at Offset from
// the top of the bounding circle.
type Row struct {
	Start  int     `json:"start" yaml:"start"`
	End    int     `json:"end" yaml:"end"`
	Offset float64 `json:"offset" yaml:"offset"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Len returns the number of items in the row.
func (r Row) Len() int { return r.End - r.Start }

// Packing is a feasible row partition together with the position of every
// item. Boxes is indexed like the input sizes.
type Packing struct {
	Diameter float64      `json:"diameter" yaml:"diameter"`
	Rows     []Row        `json:"rows" yaml:"rows"`
	Boxes    []circle.Box `json:"boxes" yaml:"boxes"`
}

// Counts returns the number of items in each row, top to bottom.
func (p Packing) Counts() []int {
	counts := make([]int, len(p.Rows))
	for i, r := range p.Rows {
		counts[i] = r.Len()
	}
	return counts
}

// Fits reports whether a row with the given dimensions fits inside a circle
// of the given diameter when its top edge sits at offset.
func Fits(diameter, offset float64, d Dimensions) bool {
	if offset < 0 || offset > diameter || d.Height > diameter || d.Width > diameter {
		return false
	}
	if offset == 0 {
		return true
	}
	if offset+d.Height > diameter {
		return false
	}
	limit := min(circle.WidthAtOffset(diameter, offset), circle.WidthAtOffset(diameter, offset+d.Height))
	return d.Width <= limit
}

// Pack arranges sizes into rows inside a circle of the given diameter.
//
// It returns false when the items cannot be packed; that is an ordinary
// outcome, not an error. An empty input always packs into zero rows.
func Pack(diameter float64, sizes []float64) (Packing, bool) {
	p := Packing{Diameter: diameter}
	if len(sizes) == 0 {
		return p, true
	}

	table := NewTable(sizes)
	var offset float64
	for start := 0; start < len(sizes); {
		if !Fits(diameter, offset, table.Range(start, start+1)) {
			return Packing{}, false
		}
		end := start + 1
		for end < len(sizes) && Fits(diameter, offset, table.Range(start, end+1)) {
			end++
		}

		dim := table.Range(start, end)
		p.Rows = append(p.Rows, Row{
			Start:  start,
			End:    end,
			Offset: offset,
			Width:  dim.Width,
			Height: dim.Height,
		})
		offset += dim.Height
		start = end
	}

	p.Boxes = place(p, sizes)
	return p, true
}

// place centers each row horizontally on the bounding circle and centers
// every item vertically within its row.
func place(p Packing, sizes []float64) []circle.Box {
	boxes := make([]circle.Box, len(sizes))
	for _, r := range p.Rows {
		x := (p.Diameter - r.Width) / 2
		for i := r.Start; i < r.End; i++ {
			s := sizes[i]
			boxes[i] = circle.Box{
				Left: x,
				Top:  r.Offset + (r.Height-s)/2,
				Size: s,
			}
			x += s
		}
	}
	return boxes
}
