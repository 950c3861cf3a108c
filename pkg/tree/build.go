package tree

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/repomap/pkg/errors"
)

// Entry types used by flat listings.
const (
	TypeBlob = "blob"
	TypeTree = "tree"
)

// FlatEntry is one line of a recursive listing such as a git tree:
// a full path, an entry type and, for blobs, a byte size.
type FlatEntry struct {
	Path string `json:"path" yaml:"path"`
	Type string `json:"type" yaml:"type"`
	Size int64  `json:"size,omitempty" yaml:"size,omitempty"`
}

// FromFlat builds a tree from a flat recursive listing.
//
// Parents that are not listed before their children are created on demand.
// Entries with a type other than "blob" or "tree" (git submodules appear as
// "commit") are skipped. Container sizes are computed before returning.
func FromFlat(entries []FlatEntry) (*Node, error) {
	root := NewRoot()
	for _, e := range entries {
		var kind Kind
		switch e.Type {
		case TypeBlob:
			kind = Leaf
		case TypeTree:
			kind = Container
		default:
			continue
		}
		if e.Size < 0 {
			return nil, errors.New(errors.ErrCodeInvalidTree, "entry %q has negative size %d", e.Path, e.Size)
		}

		segs := strings.Split(strings.Trim(e.Path, "/"), "/")
		for _, seg := range segs {
			if err := errors.ValidateEntryName(seg); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidTree, err, "entry %q", e.Path)
			}
		}

		parent := root
		for _, seg := range segs[:len(segs)-1] {
			next := parent.child(seg)
			switch {
			case next == nil:
				next = parent.add(seg, Container, 0)
			case !next.IsContainer():
				return nil, errors.New(errors.ErrCodeInvalidTree, "entry %q is nested under file %q", e.Path, next.Path)
			}
			parent = next
		}

		name := segs[len(segs)-1]
		if existing := parent.child(name); existing != nil {
			if kind == Container && existing.IsContainer() {
				continue
			}
			return nil, errors.New(errors.ErrCodeInvalidTree, "duplicate entry %q", e.Path)
		}
		size := e.Size
		if kind == Container {
			size = 0
		}
		parent.add(name, kind, size)
	}
	ComputeSizes(root)
	return root, nil
}

// FromNested builds a tree from a nested document of the form
//
//	{"src": {"size": 300, "entries": {"main.go": {"size": 300}}}}
//
// An entry with an "entries" mapping is a directory; anything else is a file
// whose size is read from "size". A bare number is accepted as a file size.
// Document order is preserved. Directory sizes in the document are ignored
// and recomputed from their children.
func FromNested(doc *yaml.Node) (*Node, error) {
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return NewRoot(), nil
		}
		doc = doc.Content[0]
	}
	root := NewRoot()
	if err := addNested(root, doc); err != nil {
		return nil, err
	}
	ComputeSizes(root)
	return root, nil
}

func addNested(parent *Node, m *yaml.Node) error {
	if m.Kind != yaml.MappingNode {
		return errors.New(errors.ErrCodeInvalidTree, "%s: expected a mapping of entries (line %d)", parent.Path, m.Line)
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		key, val := m.Content[i], m.Content[i+1]
		name := key.Value
		if err := errors.ValidateEntryName(name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidTree, err, "%s (line %d)", parent.Path, key.Line)
		}
		if parent.child(name) != nil {
			return errors.New(errors.ErrCodeInvalidTree, "%s: duplicate entry %q (line %d)", parent.Path, name, key.Line)
		}

		if val.Kind == yaml.ScalarNode {
			size, err := parseSize(val)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidTree, err, "%s/%s", strings.TrimSuffix(parent.Path, "/"), name)
			}
			parent.add(name, Leaf, size)
			continue
		}
		if val.Kind != yaml.MappingNode {
			return errors.New(errors.ErrCodeInvalidTree, "%s: entry %q must be a mapping or a size (line %d)", parent.Path, name, val.Line)
		}

		var sizeNode, entries *yaml.Node
		for j := 0; j+1 < len(val.Content); j += 2 {
			switch val.Content[j].Value {
			case "size":
				sizeNode = val.Content[j+1]
			case "entries":
				entries = val.Content[j+1]
			}
		}

		if entries != nil {
			dir := parent.add(name, Container, 0)
			if err := addNested(dir, entries); err != nil {
				return err
			}
			continue
		}

		var size int64
		if sizeNode != nil {
			var err error
			if size, err = parseSize(sizeNode); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidTree, err, "%s/%s", strings.TrimSuffix(parent.Path, "/"), name)
			}
		}
		parent.add(name, Leaf, size)
	}
	return nil
}

func parseSize(n *yaml.Node) (int64, error) {
	if n.Kind != yaml.ScalarNode {
		return 0, errors.New(errors.ErrCodeInvalidTree, "size must be a number (line %d)", n.Line)
	}
	size, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(n.Value, 64)
		if ferr != nil {
			return 0, errors.New(errors.ErrCodeInvalidTree, "size %q is not a number (line %d)", n.Value, n.Line)
		}
		size = int64(f)
	}
	if size < 0 {
		return 0, errors.New(errors.ErrCodeInvalidTree, "size %d is negative (line %d)", size, n.Line)
	}
	return size, nil
}
