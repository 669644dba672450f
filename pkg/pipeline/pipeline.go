// Package pipeline provides the figure rendering pipeline for Figment.
//
// This package implements the complete bind → layout → draw → encode
// pipeline used by the CLI and by library consumers. Centralizing it keeps
// caching, instrumentation, and defaults consistent across entry points.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Bind: Resolve the design's symbolic column references against the
//     data source
//  2. Layout: Run the two layout passes over the bound figure
//  3. Draw: Emit the primitive stream onto a recording surface
//  4. Encode: Serialize the frame into the requested output formats
//
// Rendering is deterministic, so encoded frames are cached by content hash
// of the design, the data, and the render options. A cache hit skips all
// four stages.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    DesignPath: "figure.toml",
//	    DataPath:   "points.json",
//	    Formats:    []string{"json"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	frameJSON := result.Artifacts["json"]
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/figment/pkg/cache"
	"github.com/matzehuels/figment/pkg/data"
	"github.com/matzehuels/figment/pkg/figure"
	"github.com/matzehuels/figment/pkg/render"
	"github.com/matzehuels/figment/pkg/text"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library Consumers
// =============================================================================

// Format constants for output formats.
const (
	// FormatJSON is the type-tagged primitives stream, the data interchange
	// format external backends replay.
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Design is the figure design to render. When nil, DesignPath is loaded
	// instead; exactly one of the two is required.
	Design     *figure.Figure `json:"-"`
	DesignPath string         `json:"design_path,omitempty"`

	// Data is the data source to bind against. When nil, DataPath is loaded
	// instead; exactly one of the two is required.
	Data     data.Source `json:"-"`
	DataPath string      `json:"data_path,omitempty"`

	// Theme, Width, and Height override the design's own values when set.
	Theme  string  `json:"theme,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Formats selects the output encodings. Empty defaults to json.
	Formats []string `json:"formats,omitempty"`

	// Refresh bypasses the cache and overwrites any cached entries.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Measurer text.Measurer `json:"-"`
	Logger   *log.Logger   `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this pipeline run in logs.
	RunID string

	// Frame is the recorded primitive stream. Nil when the whole run was
	// served from cache.
	Frame *render.Frame

	// FrameHash is the content hash of the encoded frame. Empty on a full
	// cache hit.
	FrameHash string

	// Artifacts contains encoded outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SeriesCount    int
	PrimitiveCount int
	BindTime       time.Duration
	LayoutTime     time.Duration
	DrawTime       time.Duration
	EncodeTime     time.Duration
}

// CacheInfo tracks cache hits per stage.
type CacheInfo struct {
	FrameHit    bool // Whether the encoded frame came from cache
	ArtifactHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be: json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForBind(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForBind checks required fields for the bind stage.
func (o *Options) ValidateForBind() error {
	if o.Design == nil && o.DesignPath == "" {
		return fmt.Errorf("design or design_path is required")
	}
	if o.Data == nil && o.DataPath == "" {
		return fmt.Errorf("data or data_path is required")
	}
	if o.Width < 0 || o.Height < 0 {
		return fmt.Errorf("size override must be non-negative, got %gx%g", o.Width, o.Height)
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// SetRenderDefaults sets default values for rendering and encoding.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if o.Measurer == nil {
		o.Measurer = text.Ratio{}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// apply overlays the option overrides onto a copy of the design. The
// caller's design is never mutated.
func (o *Options) apply(fig *figure.Figure) *figure.Figure {
	out := *fig
	if o.Theme != "" {
		out.Theme = o.Theme
	}
	if o.Width != 0 {
		out.Width = o.Width
	}
	if o.Height != 0 {
		out.Height = o.Height
	}
	return &out
}

// frameKeyOpts returns cache key options for the resolved design.
func (o *Options) frameKeyOpts(fig *figure.Figure) cache.FrameKeyOpts {
	return cache.FrameKeyOpts{
		Theme:    fig.Theme,
		Width:    fig.Width,
		Height:   fig.Height,
		Measurer: fmt.Sprintf("%T", o.Measurer),
	}
}

// newRunID generates a fresh run identifier.
func newRunID() string {
	return uuid.NewString()
}
