// Package io reads tree documents and writes layout results.
//
// # Overview
//
// repomap never fetches a repository itself. Something else (a crawler, the
// git CLI, a hosting API) produces a tree document and this package turns it
// into a [tree.Node]. Results flow back out as JSON or YAML.
//
// # Tree Documents
//
// Two shapes are accepted, in either JSON or YAML. A flat listing, the shape
// returned by git tree APIs:
//
//	{
//	  "tree": [
//	    {"path": "src", "type": "tree"},
//	    {"path": "src/main.go", "type": "blob", "size": 1204}
//	  ]
//	}
//
// and a nested mapping, the shape a filesystem crawl produces:
//
//	{
//	  "src": {
//	    "size": 1204,
//	    "entries": {
//	      "main.go": {"size": 1204}
//	    }
//	  }
//	}
//
// Use [ImportTree] for a file path ("-" for stdin) or [ReadTree] for any
// io.Reader. Both report the detected [Shape]. Entry order is preserved in
// both shapes, which matters because layouts never reorder items.
//
// # Export
//
// [Write] encodes any value as JSON or YAML; [Export] does the same into a
// file. Unsupported formats fail with an INVALID_FORMAT error.
//
// [tree.Node]: github.com/matzehuels/repomap/pkg/tree.Node
package io
