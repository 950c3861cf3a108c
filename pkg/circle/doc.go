// Package circle holds the geometry shared by the circle layout engine.
//
// # Overview
//
// A directory of files is drawn as a "gaggle" of circles inside one bounding
// circle. Each file becomes a circle whose diameter comes from
// pkg/sizing, and the engine decides where every circle goes. The
// subpackages split that work:
//
//   - [rowpack]: can an ordered list of circles be packed into rows inside a
//     circle of diameter D? Returns the row partition or "infeasible".
//   - [solver]: search for the largest uniform scalar that keeps the scaled
//     circles feasible, using either the row packer or a ring circumference
//     check.
//   - [radial]: place an ordered list of circles on a ring and report their
//     angles and positions.
//
// This package provides the primitives they share: [Point], [Box], the chord
// width of a circle at a vertical offset ([WidthAtOffset]) and the ring
// circumference of a list of sizes ([Circumference]).
//
// # Coordinates
//
// All positions use the top-left corner of the bounding square as the origin,
// with Y increasing downward. A circle of size s is described by the s x s
// [Box] it is inscribed in.
//
// # Chord Width
//
// The horizontal room available at distance o from the top of a circle of
// diameter D is
//
//	2 * sqrt((D/2)^2 - (D/2 - o)^2)
//
// which is 0 at both poles and D at the equator.
//
// [rowpack]: github.com/matzehuels/repomap/pkg/circle/rowpack
// [solver]: github.com/matzehuels/repomap/pkg/circle/solver
// [radial]: github.com/matzehuels/repomap/pkg/circle/radial
package circle
