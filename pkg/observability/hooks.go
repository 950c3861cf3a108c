// Package observability provides hooks for instrumenting layout runs.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Hooks are injected into
// the pipeline runner by whoever constructs it; there is no global registry,
// so two runners in one process can report to different sinks.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for layout events
//   - Provide a no-op default and a logging implementation
//   - Let callers plug in their own (metrics, tracing) at construction time
//
// # Usage
//
//	runner := pipeline.NewRunner(logger, observability.NewLogHooks(logger))
//
// The runner calls hooks around each container layout:
//
//	hooks.OnLayoutStart(ctx, "rows", "/src", 12)
//	// ... solve and place ...
//	hooks.OnLayoutComplete(ctx, "rows", "/src", duration, feasible)
package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from layout runs.
type LayoutHooks interface {
	// OnLayoutStart is called before a container's gaggle is solved.
	OnLayoutStart(ctx context.Context, mode, path string, items int)

	// OnLayoutComplete is called after a container's gaggle is solved.
	OnLayoutComplete(ctx context.Context, mode, path string, duration time.Duration, feasible bool)

	// OnDiagnostic is called for every condition that cut a solve short,
	// such as a refinement level hitting its iteration cap.
	OnDiagnostic(ctx context.Context, path string, level int, scalar float64, message string)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLayoutStart(context.Context, string, string, int)                    {}
func (NoopLayoutHooks) OnLayoutComplete(context.Context, string, string, time.Duration, bool) {}
func (NoopLayoutHooks) OnDiagnostic(context.Context, string, int, float64, string)            {}

// =============================================================================
// Logging Implementation
// =============================================================================

// LogHooks reports layout events to a logger at debug level. The solver
// already warns about diagnostics itself, so they are not repeated above
// debug here.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that write to logger. A nil logger yields
// [NoopLayoutHooks] behavior.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnLayoutStart(_ context.Context, mode, path string, items int) {
	if h.logger == nil {
		return
	}
	h.logger.Debug("layout start", "mode", mode, "path", path, "items", items)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, mode, path string, d time.Duration, feasible bool) {
	if h.logger == nil {
		return
	}
	h.logger.Debug("layout complete", "mode", mode, "path", path, "duration", d, "feasible", feasible)
}

func (h *LogHooks) OnDiagnostic(_ context.Context, path string, level int, scalar float64, message string) {
	if h.logger == nil {
		return
	}
	h.logger.Debug("layout diagnostic", "path", path, "level", level, "scalar", scalar, "message", message)
}
