package tree

import (
	"fmt"
	"path"
	"strings"

	"github.com/samber/lo"
)

// Kind distinguishes files from directories.
type Kind int

const (
	// Leaf is a file. Its Size is its byte count.
	Leaf Kind = iota
	// Container is a directory. Its Size is the sum of its children.
	Container
)

func (k Kind) String() string {
	if k == Container {
		return "container"
	}
	return "leaf"
}

// MarshalText encodes the kind as "leaf" or "container".
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText accepts "leaf"/"blob" and "container"/"tree".
func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "leaf", "blob":
		*k = Leaf
	case "container", "tree":
		*k = Container
	default:
		return fmt.Errorf("unknown kind %q", b)
	}
	return nil
}

// Node is one entry of a source tree.
//
// Path is the slash-separated location from the root, always starting with
// "/". The root itself has Path "/" and an empty Name.
type Node struct {
	Name     string  `json:"name" yaml:"name"`
	Path     string  `json:"path" yaml:"path"`
	Kind     Kind    `json:"kind" yaml:"kind"`
	Size     int64   `json:"size" yaml:"size"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// NewRoot returns an empty container to build a tree under.
func NewRoot() *Node {
	return &Node{Path: "/", Kind: Container}
}

// IsContainer reports whether n is a directory.
func (n *Node) IsContainer() bool { return n.Kind == Container }

// child returns the direct child with the given name, or nil.
func (n *Node) child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// add appends a new child under n, deriving its path.
func (n *Node) add(name string, kind Kind, size int64) *Node {
	c := &Node{Name: name, Path: path.Join(n.Path, name), Kind: kind, Size: size}
	n.Children = append(n.Children, c)
	return c
}

// ComputeSizes sets every container's Size to the sum of its children's
// sizes, recursively, and returns the root's size. Leaf sizes are left as is.
func ComputeSizes(n *Node) int64 {
	if !n.IsContainer() {
		return n.Size
	}
	var total int64
	for _, c := range n.Children {
		total += ComputeSizes(c)
	}
	n.Size = total
	return total
}

// Gaggle returns the direct leaf children of a container, in order.
// It returns nil for a leaf.
func Gaggle(n *Node) []*Node {
	if !n.IsContainer() {
		return nil
	}
	return lo.Filter(n.Children, func(c *Node, _ int) bool { return !c.IsContainer() })
}

// Mass is the total size of a container's direct leaf children. Files in
// nested directories do not count.
func Mass(n *Node) int64 {
	return lo.SumBy(Gaggle(n), func(c *Node) int64 { return c.Size })
}

// LargestMass returns the container with the greatest [Mass], searching
// depth first from n. Ties keep the container found first, so n wins over
// any descendant of equal mass.
func LargestMass(n *Node) *Node {
	best := n
	for _, c := range n.Children {
		if !c.IsContainer() {
			continue
		}
		if challenger := LargestMass(c); Mass(challenger) > Mass(best) {
			best = challenger
		}
	}
	return best
}

// Find resolves a slash-separated path relative to n. A leading slash is
// ignored, and "" or "/" return n itself. It returns nil when any segment
// does not exist.
func Find(n *Node, p string) *Node {
	p = strings.Trim(p, "/")
	if p == "" {
		return n
	}
	cur := n
	for _, seg := range strings.Split(p, "/") {
		if cur = cur.child(seg); cur == nil {
			return nil
		}
	}
	return cur
}

// Walk calls fn for n and every descendant in pre-order. Returning false
// from fn skips that node's children.
func Walk(n *Node, fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// Containers returns n and all containers below it in pre-order.
func Containers(n *Node) []*Node {
	var out []*Node
	Walk(n, func(c *Node) bool {
		if !c.IsContainer() {
			return false
		}
		out = append(out, c)
		return true
	})
	return out
}

// Stats summarizes a tree.
type Stats struct {
	Files       int   `json:"files" yaml:"files"`
	Directories int   `json:"directories" yaml:"directories"`
	Bytes       int64 `json:"bytes" yaml:"bytes"`
	MaxDepth    int   `json:"max_depth" yaml:"max_depth"`
}

// Summarize counts the files and directories under n. The root itself is
// not counted as a directory.
func Summarize(n *Node) Stats {
	var s Stats
	var visit func(*Node, int)
	visit = func(cur *Node, depth int) {
		s.MaxDepth = max(s.MaxDepth, depth)
		for _, c := range cur.Children {
			if c.IsContainer() {
				s.Directories++
				visit(c, depth+1)
				continue
			}
			s.Files++
			s.Bytes += c.Size
		}
	}
	visit(n, 0)
	return s
}
