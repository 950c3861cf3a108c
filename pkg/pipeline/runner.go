package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/repomap/pkg/errors"
	"github.com/matzehuels/repomap/pkg/layout"
	"github.com/matzehuels/repomap/pkg/observability"
	"github.com/matzehuels/repomap/pkg/tree"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger and hooks - it doesn't
// store layout results. Each call builds its own request-scoped
// [layout.Context], so multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger
	Hooks  observability.LayoutHooks
}

// NewRunner creates a runner reporting to logger and hooks.
// If logger is nil, log.Default() is used. If hooks is nil, no-op hooks are used.
func NewRunner(logger *log.Logger, hooks observability.LayoutHooks) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	if hooks == nil {
		hooks = observability.NoopLayoutHooks{}
	}
	return &Runner{Logger: logger, Hooks: hooks}
}

// Resolve returns the container opts select within root: the node at
// opts.Path if set, else the container with the largest mass if
// opts.Largest is set, else root.
func Resolve(root *tree.Node, opts Options) (*tree.Node, error) {
	switch {
	case opts.Path != "":
		if err := errors.ValidatePath(opts.Path); err != nil {
			return nil, err
		}
		n := tree.Find(root, opts.Path)
		if n == nil {
			return nil, errors.New(errors.ErrCodeNotFound, "no entry at %q", opts.Path)
		}
		if !n.IsContainer() {
			return nil, errors.New(errors.ErrCodeInvalidPath, "%q is a file, not a directory", opts.Path)
		}
		return n, nil
	case opts.Largest:
		return tree.LargestMass(root), nil
	default:
		return root, nil
	}
}

// Layout lays out the gaggle of the container selected by opts.
func (r *Runner) Layout(ctx context.Context, root *tree.Node, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	target, err := Resolve(root, opts)
	if err != nil {
		return nil, err
	}

	lc := layout.NewContext(root, opts.LayoutConfig())
	ctx = layout.WithContext(ctx, lc)
	return r.layoutOne(ctx, lc, target)
}

// LayoutAll lays out every container of root concurrently. Results are
// returned in pre-order, root first, regardless of completion order.
// opts.Path and opts.Largest are ignored.
func (r *Runner) LayoutAll(ctx context.Context, root *tree.Node, opts Options) ([]*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	containers := tree.Containers(root)
	results := make([]*Result, len(containers))

	lc := layout.NewContext(root, opts.LayoutConfig())
	ctx = layout.WithContext(ctx, lc)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	for i, c := range containers {
		g.Go(func() error {
			res, err := r.layoutOne(gctx, lc, c)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.Logger.Info("laid out containers", "count", len(results), "request", lc.ID())
	return results, nil
}

func (r *Runner) layoutOne(ctx context.Context, lc *layout.Context, n *tree.Node) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := lc.Config()
	items := tree.Gaggle(n)
	r.Hooks.OnLayoutStart(ctx, string(cfg.Mode), n.Path, len(items))

	start := time.Now()
	res := lc.LayoutOf(n)
	elapsed := time.Since(start)

	for _, d := range res.Diagnostics {
		r.Hooks.OnDiagnostic(ctx, n.Path, d.Level, d.Scalar, d.Message)
	}
	r.Hooks.OnLayoutComplete(ctx, string(cfg.Mode), n.Path, elapsed, res.Feasible)

	r.Logger.Debug("computed layout",
		"path", n.Path,
		"items", len(items),
		"scalar", res.Scalar,
		"feasible", res.Feasible,
		"duration", elapsed)

	return &Result{
		Result:    res,
		RequestID: lc.ID(),
		Stats: Stats{
			Items:       len(items),
			Mass:        tree.Mass(n),
			LayoutNanos: elapsed.Nanoseconds(),
		},
	}, nil
}

// applyLogger sets the runner's logger on opts if opts doesn't have one.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
