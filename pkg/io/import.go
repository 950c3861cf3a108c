package io

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	rmerrors "github.com/matzehuels/repomap/pkg/errors"
	"github.com/matzehuels/repomap/pkg/tree"
)

// Shape identifies which tree document layout was decoded.
type Shape string

const (
	// ShapeNested is a nested {name: {size, entries}} mapping.
	ShapeNested Shape = "nested"
	// ShapeFlat is a list of {path, type, size} records, either bare or
	// under a top-level "tree" key.
	ShapeFlat Shape = "flat"
)

// ReadTree decodes a JSON or YAML tree document from r.
//
// The shape is detected from the document itself:
//
//	[{"path": "src/main.go", "type": "blob", "size": 120}, ...]      flat
//	{"sha": "...", "tree": [{"path": ..., "type": ...}], ...}         flat
//	{"src": {"size": 120, "entries": {"main.go": {"size": 120}}}}     nested
//
// A top-level "tree" key only selects the flat shape when its value is a
// list; a directory named "tree" in a nested document is left alone.
//
// ReadTree returns an INVALID_TREE error for empty, malformed or
// inconsistent documents. It does not close r.
func ReadTree(r io.Reader) (*tree.Node, Shape, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, "", rmerrors.New(rmerrors.ErrCodeInvalidTree, "empty tree document")
		}
		return nil, "", rmerrors.Wrap(rmerrors.ErrCodeInvalidTree, err, "decode")
	}

	body := &doc
	if body.Kind == yaml.DocumentNode && len(body.Content) > 0 {
		body = body.Content[0]
	}

	if list := flatList(body); list != nil {
		var entries []tree.FlatEntry
		if err := list.Decode(&entries); err != nil {
			return nil, "", rmerrors.Wrap(rmerrors.ErrCodeInvalidTree, err, "decode flat listing")
		}
		root, err := tree.FromFlat(entries)
		return root, ShapeFlat, err
	}

	root, err := tree.FromNested(body)
	return root, ShapeNested, err
}

// flatList returns the sequence of flat entries in body, or nil when body is
// a nested document.
func flatList(body *yaml.Node) *yaml.Node {
	switch body.Kind {
	case yaml.SequenceNode:
		return body
	case yaml.MappingNode:
		for i := 0; i+1 < len(body.Content); i += 2 {
			if body.Content[i].Value == "tree" && body.Content[i+1].Kind == yaml.SequenceNode {
				return body.Content[i+1]
			}
		}
	}
	return nil
}

// ImportTree reads a tree document from the file at path. A path of "-"
// reads from standard input.
//
// ImportTree returns the same errors as [ReadTree]; errors opening the file
// are reported as INVALID_INPUT with the path for context.
func ImportTree(path string) (*tree.Node, Shape, error) {
	if path == "-" {
		return ReadTree(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", rmerrors.Wrap(rmerrors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	root, shape, err := ReadTree(f)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return root, shape, nil
}
