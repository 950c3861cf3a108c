// Package pipeline provides the layout pipeline shared by every repomap
// entry point.
//
// This package wires the pieces together: it validates options, decides
// which container of a tree to lay out, runs the solver and placer on its
// gaggle and reports progress through injected hooks. The CLI is a thin
// layer over [Runner].
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Resolve: pick the container to lay out (explicit path, the container
//     with the largest mass, or the root)
//  2. Layout: solve the scale factor and position every file of the
//     container's gaggle
//  3. Encode: write the result as JSON or YAML
//
// # Usage
//
//	runner := pipeline.NewRunner(logger, nil)
//	opts := pipeline.Options{Diameter: 600, Largest: true}
//	result, err := runner.Layout(ctx, root, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pipeline.Encode(os.Stdout, result, "json")
//
// Lay out every directory at once:
//
//	results, err := runner.LayoutAll(ctx, root, opts)
package pipeline

import (
	stderrors "errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/repomap/pkg/circle/solver"
	"github.com/matzehuels/repomap/pkg/errors"
	rmio "github.com/matzehuels/repomap/pkg/io"
	"github.com/matzehuels/repomap/pkg/layout"
	"github.com/matzehuels/repomap/pkg/sizing"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library Callers
// =============================================================================

const (
	// DefaultMode is the default arrangement of a gaggle.
	DefaultMode = string(layout.ModeRows)

	// DefaultDiameter is the default bounding circle diameter in pixels.
	DefaultDiameter = 600.0

	// DefaultMinSize is the smallest circle drawn for a file.
	DefaultMinSize = sizing.DefaultMin

	// DefaultMaxSize is the largest circle drawn for a file.
	DefaultMaxSize = sizing.DefaultMax

	// DefaultPrecision is the number of solver refinement levels.
	DefaultPrecision = solver.DefaultPrecision

	// DefaultMaxIterations caps the steps of one solver refinement level.
	DefaultMaxIterations = solver.DefaultMaxIterations

	// DefaultConcurrency bounds how many containers LayoutAll solves at once.
	DefaultConcurrency = 8
)

// Format constants for output formats.
const (
	FormatJSON = rmio.FormatJSON
	FormatYAML = rmio.FormatYAML
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a layout run. It can be loaded from
// a TOML file with [LoadOptions] and overridden by CLI flags.
type Options struct {
	// Layout options
	Mode          string  `toml:"mode" json:"mode,omitempty" validate:"oneof=rows ring"`
	Diameter      float64 `toml:"diameter" json:"diameter,omitempty" validate:"gt=0"`
	Spacing       float64 `toml:"spacing" json:"spacing,omitempty" validate:"gte=0"`
	MinSize       float64 `toml:"min_size" json:"min_size,omitempty" validate:"gt=0"`
	MaxSize       float64 `toml:"max_size" json:"max_size,omitempty" validate:"gtefield=MinSize"`
	Precision     int     `toml:"precision" json:"precision,omitempty" validate:"gte=1,lte=10"`
	MaxIterations int     `toml:"max_iterations" json:"max_iterations,omitempty" validate:"gte=1"`

	// Target selection
	Path    string `toml:"path" json:"path,omitempty" validate:"max=4096"`
	Largest bool   `toml:"largest" json:"largest,omitempty"`

	// Output options
	Formats []string `toml:"formats" json:"formats,omitempty" validate:"dive,oneof=json yaml"`

	// Concurrency bounds LayoutAll; it is not read from config files.
	Concurrency int `toml:"-" json:"-" validate:"gte=0"`

	// Runtime options (not serialized)
	Logger *log.Logger `toml:"-" json:"-" validate:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run for one container.
type Result struct {
	layout.Result `yaml:",inline"`

	// RequestID identifies the run in logs.
	RequestID string `json:"request_id" yaml:"request_id"`

	// Stats contains timing and size information.
	Stats Stats `json:"stats" yaml:"stats"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Items      int           `json:"items" yaml:"items"`
	Mass       int64         `json:"mass" yaml:"mass"`
	// LayoutNanos is the solve time in nanoseconds.
	LayoutNanos int64 `json:"layout_time_ns" yaml:"layout_time_ns"`
}

// =============================================================================
// Validation
// =============================================================================

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their config names rather than Go names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks option values. Call [Options.SetDefaults] first when
// zero values should mean "use the default".
func (o *Options) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid options")
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.New(errors.ErrCodeInvalidConfig, "%s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %v", fe.Field(), fe.Param(), fe.Value())
	case "gtefield":
		return fmt.Sprintf("%s must not be below min_size, got %v", fe.Field(), fe.Value())
	case "gt", "gte", "lte", "max":
		return fmt.Sprintf("%s must be %s %s, got %v", fe.Field(), fe.Tag(), fe.Param(), fe.Value())
	}
	return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
}

// SetDefaults fills zero values with their defaults.
func (o *Options) SetDefaults() {
	if o.Mode == "" {
		o.Mode = DefaultMode
	}
	if o.Diameter == 0 {
		o.Diameter = DefaultDiameter
	}
	if o.MinSize == 0 {
		o.MinSize = DefaultMinSize
	}
	if o.MaxSize == 0 {
		o.MaxSize = max(DefaultMaxSize, o.MinSize)
	}
	if o.Precision == 0 {
		o.Precision = DefaultPrecision
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if o.Concurrency == 0 {
		o.Concurrency = DefaultConcurrency
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateAndSetDefaults applies defaults and validates the result.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := o.Validate(); err != nil {
		return err
	}
	if o.Path != "" {
		if err := errors.ValidatePath(o.Path); err != nil {
			return err
		}
	}
	o.validated = true
	return nil
}

// Model returns the size model described by the options.
func (o *Options) Model() sizing.Model {
	return sizing.Model{Min: o.MinSize, Max: o.MaxSize}
}

// LayoutConfig converts the options to a [layout.Config].
func (o *Options) LayoutConfig() layout.Config {
	return layout.Config{
		Mode:          layout.Mode(o.Mode),
		Diameter:      o.Diameter,
		Spacing:       o.Spacing,
		Model:         o.Model(),
		Precision:     o.Precision,
		MaxIterations: o.MaxIterations,
		Logger:        o.Logger,
	}
}

// Format returns the first requested output format.
func (o *Options) Format() string {
	if len(o.Formats) == 0 {
		return FormatJSON
	}
	return o.Formats[0]
}

// Encode writes v to w in the given format.
func Encode(w io.Writer, v any, format string) error {
	return rmio.Write(w, v, format)
}
