package layout

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"github.com/matzehuels/repomap/pkg/circle/radial"
	"github.com/matzehuels/repomap/pkg/circle/rowpack"
	"github.com/matzehuels/repomap/pkg/circle/solver"
	"github.com/matzehuels/repomap/pkg/sizing"
	"github.com/matzehuels/repomap/pkg/tree"
	"github.com/matzehuels/repomap/pkg/tree/lang"
)

// Mode selects how a gaggle is arranged.
type Mode string

const (
	// ModeRows packs items in centered rows inside the bounding circle.
	ModeRows Mode = "rows"
	// ModeRing places items evenly on a ring.
	ModeRing Mode = "ring"
)

// Modes lists every supported mode.
var Modes = []Mode{ModeRows, ModeRing}

// ParseMode converts a string to a [Mode].
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !lo.Contains(Modes, m) {
		return "", fmt.Errorf("unknown layout mode %q (want rows or ring)", s)
	}
	return m, nil
}

// Config controls a single layout computation.
type Config struct {
	Mode          Mode
	Diameter      float64
	Spacing       float64
	Model         sizing.Model
	Precision     int
	MaxIterations int
	Logger        *log.Logger
}

// DefaultConfig returns a rows layout in a circle of the given diameter.
func DefaultConfig(diameter float64) Config {
	return Config{
		Mode:          ModeRows,
		Diameter:      diameter,
		Model:         sizing.Default(),
		Precision:     solver.DefaultPrecision,
		MaxIterations: solver.DefaultMaxIterations,
	}
}

// Item is one input to a layout.
type Item struct {
	Name    string
	Kind    tree.Kind
	RawSize int64
}

// FromGaggle converts tree nodes to layout items, preserving order.
func FromGaggle(nodes []*tree.Node) []Item {
	return lo.Map(nodes, func(n *tree.Node, _ int) Item {
		return Item{Name: n.Name, Kind: n.Kind, RawSize: n.Size}
	})
}

// Placed is an item with its solved size and position. X and Y are the
// top-left corner of the item's size x size box. Row is -1 in ring mode and
// for unplaced items; Angle is only set in ring mode.
type Placed struct {
	Name     string    `json:"name" yaml:"name"`
	Kind     tree.Kind `json:"kind" yaml:"kind"`
	RawSize  int64     `json:"raw_size" yaml:"raw_size"`
	Size     float64   `json:"size" yaml:"size"`
	Row      int       `json:"row" yaml:"row"`
	X        float64   `json:"x" yaml:"x"`
	Y        float64   `json:"y" yaml:"y"`
	Angle    float64   `json:"angle,omitempty" yaml:"angle,omitempty"`
	Language string    `json:"language,omitempty" yaml:"language,omitempty"`
}

// Result is a solved layout.
type Result struct {
	Path        string              `json:"path,omitempty" yaml:"path,omitempty"`
	Mode        Mode                `json:"mode" yaml:"mode"`
	Scalar      float64             `json:"scalar" yaml:"scalar"`
	Diameter    float64             `json:"diameter" yaml:"diameter"`
	Feasible    bool                `json:"feasible" yaml:"feasible"`
	Iterations  int                 `json:"iterations" yaml:"iterations"`
	Items       []Placed            `json:"items" yaml:"items"`
	Rows        []int               `json:"rows,omitempty" yaml:"rows,omitempty"`
	Diagnostics []solver.Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Compute solves the scale factor for items and positions them.
//
// In rows mode the bounding circle has cfg.Diameter and Result.Diameter
// equals it. In ring mode Result.Diameter is the window actually used by the
// ring, which never exceeds cfg.Diameter when the layout is feasible.
// An empty item list yields a feasible result with diameter 0.
func Compute(items []Item, cfg Config) Result {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeRows
	}

	res := Result{Mode: cfg.Mode, Feasible: true, Items: []Placed{}}
	if len(items) == 0 {
		return res
	}

	raws := lo.Map(items, func(it Item, _ int) int64 { return it.RawSize })

	var pred solver.Predicate = solver.RowFit{}
	if cfg.Mode == ModeRing {
		pred = solver.Circumference{Spacing: cfg.Spacing}
	}
	sol := solver.Solve(raws, cfg.Diameter, cfg.Model,
		solver.WithPredicate(pred),
		solver.WithPrecision(cfg.Precision),
		solver.WithMaxIterations(cfg.MaxIterations),
		solver.WithLogger(logger),
	)
	res.Scalar = sol.Scalar
	res.Feasible = sol.Feasible
	res.Iterations = sol.Iterations
	res.Diagnostics = sol.Diagnostics

	sizes := cfg.Model.ScaleAll(raws, sol.Scalar)
	res.Items = lo.Map(items, func(it Item, i int) Placed {
		p := Placed{Name: it.Name, Kind: it.Kind, RawSize: it.RawSize, Size: sizes[i], Row: -1}
		if it.Kind == tree.Leaf {
			p.Language = lang.Classify(it.Name)
		}
		return p
	})

	switch cfg.Mode {
	case ModeRing:
		ring, window := radial.Centered(sizes, cfg.Spacing)
		res.Diameter = window
		for _, pl := range radial.Place(sizes, ring) {
			it := &res.Items[pl.Index]
			it.X, it.Y, it.Angle = pl.Box.Left, pl.Box.Top, pl.Angle
		}
	default:
		res.Diameter = cfg.Diameter
		packing, ok := rowpack.Pack(cfg.Diameter, sizes)
		if !ok {
			res.Feasible = false
			break
		}
		res.Rows = packing.Counts()
		for r, row := range packing.Rows {
			for i := row.Start; i < row.End; i++ {
				b := packing.Boxes[i]
				res.Items[i].Row = r
				res.Items[i].X, res.Items[i].Y = b.Left, b.Top
			}
		}
	}

	logger.Debug("layout computed",
		"mode", res.Mode, "items", len(items), "scalar", res.Scalar,
		"diameter", res.Diameter, "feasible", res.Feasible)
	return res
}
