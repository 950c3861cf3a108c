// Package tree models a source tree as explicitly tagged nodes.
//
// # Overview
//
// Every [Node] is either a [Leaf] (a file with a byte size) or a [Container]
// (a directory whose size is the sum of its children). Trees are built from
// one of two document shapes:
//
//   - [FromNested]: a nested mapping, one key per entry, with "entries" for
//     directories and "size" for files. This is the shape a filesystem crawl
//     naturally produces.
//   - [FromFlat]: a flat recursive listing of {path, type, size} records,
//     the shape of a git tree listing.
//
// Both builders preserve input order, since layouts place items in the order
// they appear, and both finish with [ComputeSizes].
//
// # Gaggles and Mass
//
// A container's gaggle is its direct leaf children ([Gaggle]); these are the
// circles drawn for that directory. Its mass ([Mass]) is the total size of
// the gaggle. [LargestMass] picks the directory whose own files are heaviest,
// which makes a good default view for an unfamiliar repository:
//
//	root, _ := tree.FromFlat(entries)
//	start := tree.LargestMass(root)
//	files := tree.Gaggle(start)
package tree
