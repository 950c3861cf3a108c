package layout

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/matzehuels/repomap/pkg/errors"
	"github.com/matzehuels/repomap/pkg/tree"
)

// Context is the state of one layout request: the tree being viewed, the
// stack of containers the caller has descended into and the layouts already
// computed for this request.
//
// A Context is created per request and passed explicitly. Navigation
// ([Context.Push], [Context.Pop]) is not safe for concurrent use; layout
// lookups ([Context.Layout], [Context.LayoutOf]) are.
type Context struct {
	id    string
	root  *tree.Node
	cfg   Config
	stack []*tree.Node

	mu   sync.Mutex
	memo map[string]Result
}

// NewContext starts a request at root. The request gets a fresh ID, which
// is attached to the configured logger.
func NewContext(root *tree.Node, cfg Config) *Context {
	id := uuid.NewString()
	if cfg.Logger != nil {
		cfg.Logger = cfg.Logger.With("request", id)
	}
	return &Context{
		id:    id,
		root:  root,
		cfg:   cfg,
		stack: []*tree.Node{root},
		memo:  make(map[string]Result),
	}
}

// ID returns the request ID.
func (c *Context) ID() string { return c.id }

// Root returns the tree the request was started with.
func (c *Context) Root() *tree.Node { return c.root }

// Config returns the layout configuration of the request.
func (c *Context) Config() Config { return c.cfg }

// Current returns the container on top of the stack.
func (c *Context) Current() *tree.Node { return c.stack[len(c.stack)-1] }

// Depth returns how many containers have been pushed above the root.
func (c *Context) Depth() int { return len(c.stack) - 1 }

// Push descends into n, which must be a container.
func (c *Context) Push(n *tree.Node) error {
	if n == nil || !n.IsContainer() {
		return errors.New(errors.ErrCodeInvalidPath, "cannot descend into a file")
	}
	c.stack = append(c.stack, n)
	return nil
}

// Pop returns to the previous container. It reports false at the root,
// which is never popped.
func (c *Context) Pop() (*tree.Node, bool) {
	if len(c.stack) == 1 {
		return c.stack[0], false
	}
	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return top, true
}

// Navigate replaces the stack with the chain of containers from the root to
// the node at path.
func (c *Context) Navigate(path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	target := tree.Find(c.root, path)
	if target == nil {
		return errors.New(errors.ErrCodeNotFound, "no entry at %q", path)
	}
	if !target.IsContainer() {
		return errors.New(errors.ErrCodeInvalidPath, "%q is a file, not a directory", path)
	}

	stack := []*tree.Node{c.root}
	cur := c.root
	if trimmed := strings.Trim(path, "/"); trimmed != "" {
		for _, seg := range strings.Split(trimmed, "/") {
			cur = tree.Find(cur, seg)
			stack = append(stack, cur)
		}
	}
	c.stack = stack
	return nil
}

// Breadcrumb returns the names of the containers on the stack, starting
// with "/" for the root.
func (c *Context) Breadcrumb() []string {
	out := make([]string, len(c.stack))
	for i, n := range c.stack {
		if i == 0 {
			out[i] = "/"
			continue
		}
		out[i] = n.Name
	}
	return out
}

// Layout returns the layout of the current container's gaggle.
func (c *Context) Layout() Result {
	return c.LayoutOf(c.Current())
}

// LayoutOf returns the layout of a container's gaggle, computing it at most
// once per request.
func (c *Context) LayoutOf(n *tree.Node) Result {
	c.mu.Lock()
	if res, ok := c.memo[n.Path]; ok {
		c.mu.Unlock()
		return res
	}
	c.mu.Unlock()

	res := Compute(FromGaggle(tree.Gaggle(n)), c.cfg)
	res.Path = n.Path

	c.mu.Lock()
	c.memo[n.Path] = res
	c.mu.Unlock()
	return res
}

// Cached reports how many layouts the request has computed so far.
func (c *Context) Cached() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.memo)
}

type contextKey struct{}

// WithContext returns a copy of ctx carrying lc.
func WithContext(ctx context.Context, lc *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, lc)
}

// FromContext returns the layout context carried by ctx, or nil.
func FromContext(ctx context.Context) *Context {
	lc, _ := ctx.Value(contextKey{}).(*Context)
	return lc
}
