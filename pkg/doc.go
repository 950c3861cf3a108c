// Package pkg provides the core libraries for repomap circle layouts.
//
// # Overview
//
// Repomap turns a repository file tree into a map of circles: every file is a
// circle whose area follows its byte count, and the files of a directory are
// packed together inside a bounding circle. The pkg directory is organized
// into four main areas:
//
//  1. [sizing] and [circle] - The layout engine (size law, row packing, scale
//     solving, ring placement)
//  2. [tree] - The file tree model and its builders
//  3. [layout] and [pipeline] - Orchestration (resolve a directory, solve,
//     encode)
//  4. [io], [errors], [observability] - Document formats, coded errors and
//     instrumentation hooks
//
// # Architecture
//
// The typical data flow through repomap:
//
//	tree document (nested map or flat git listing)
//	         ↓
//	    [io] package (decode, auto-detect shape)
//	         ↓
//	    [tree] package (nodes, gaggles, masses)
//	         ↓
//	    [circle/solver] package (largest scale that still fits)
//	         ↓
//	    [circle/rowpack] or [circle/radial] (positions)
//	         ↓
//	    JSON/YAML output
//
// # Quick Start
//
// Lay out the heaviest directory of a tree:
//
//	import (
//	    "context"
//	    "os"
//
//	    rmio "github.com/matzehuels/repomap/pkg/io"
//	    "github.com/matzehuels/repomap/pkg/pipeline"
//	)
//
//	root, _, _ := rmio.ImportTree("tree.json")
//	runner := pipeline.NewRunner(nil, nil)
//	res, _ := runner.Layout(context.Background(), root, pipeline.Options{
//	    Diameter: 600,
//	    Largest:  true,
//	})
//	pipeline.Encode(os.Stdout, res, pipeline.FormatJSON)
//
// # Main Packages
//
// ## Layout Engine
//
// [sizing] - The square-root size law, clamped to a minimum and maximum size.
//
// [circle/rowpack] - Greedy packing of ordered sizes into centered rows that
// each fit the chord of the bounding circle at their height.
//
// [circle/solver] - Refines the scale factor digit by digit until one more
// step would no longer fit, under either the row or the ring predicate.
//
// [circle/radial] - Places sizes around a ring, each taking an angular span
// proportional to its size.
//
// ## Tree Model
//
// [tree] - Explicitly tagged file and directory nodes built from nested or
// flat documents, with the gaggle (direct files) and mass (their bytes) of a
// directory.
//
// [tree/lang] - Language classification by file extension.
//
// ## Orchestration
//
// [layout] - One layout computation and the request-scoped context that
// tracks navigation and memoizes layouts.
//
// [pipeline] - Validated options, target resolution and the runner used by
// the CLI, including concurrent layout of every directory.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/circle/...    # Engine only
//	go test -run Example ./...  # Examples only
//
// [sizing]: https://pkg.go.dev/github.com/matzehuels/repomap/pkg/sizing
// [circle]: https://pkg.go.dev/github.com/matzehuels/repomap/pkg/circle
// [circle/rowpack]: https://pkg.go.dev/github.com/matzehuels/repomap/pkg/circle/rowpack
// [circle/solver]: https://pkg.go.dev/github.com/matzehuels/repomap/pkg/circle/solver
// [circle/radial]: https://pkg.go.dev/github.com/matzehuels/repomap/pkg/circle/radial
// [tree]: https://pkg.go.dev/github.com/matzehuels/repomap/pkg/tree
// [tree/lang]: https://pkg.go.dev/github.com/matzehuels/repomap/pkg/tree/lang
// [layout]: https://pkg.go.dev/github.com/matzehuels/repomap/pkg/layout
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/repomap/pkg/pipeline
// [io]: https://pkg.go.dev/github.com/matzehuels/repomap/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/repomap/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/repomap/pkg/observability
package pkg
