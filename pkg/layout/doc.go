// Package layout turns a directory's files into a solved circle layout.
//
// # Overview
//
// [Compute] is the single entry point for one gaggle:
//
//  1. Raw byte sizes are collected from the [Item] list.
//  2. The solver finds the largest scalar at which the sizes still fit the
//     configured diameter, using the predicate that matches [Config.Mode].
//  3. Sizes are recomputed at that scalar and positioned, either by the row
//     packer ([ModeRows]) or on a ring ([ModeRing]).
//
// Items are never reordered: Result.Items[i] always describes items[i].
//
// # Request Context
//
// Interactive callers browse a tree one directory at a time. A [Context]
// holds what belongs to one such request: the tree, the stack of visited
// containers and a memo of layouts already solved, keyed by container path.
// Nothing is global, so independent requests never share state.
//
//	lc := layout.NewContext(root, layout.DefaultConfig(600))
//	_ = lc.Push(tree.Find(root, "src"))
//	res := lc.Layout()
//	lc.Pop()
package layout
