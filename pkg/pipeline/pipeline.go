// Package pipeline provides the core compute pipeline for PromptCanvas.
//
// This package implements the complete load → compute → theme → compose
// pipeline that can be used by CLI, API, and TUI components. By centralizing
// this logic, we ensure consistent behavior across all entry points and
// avoid code duplication.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Load: Resolve the layout template (built-in name or file path)
//  2. Compute: Validate the template and calculate zone geometry
//  3. Theme: Apply the corporate-identity palette to the containers
//  4. Compose: Render the final image-generation prompt
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Template:     "vertical_split",
//	    Ratio:        pipeline.Int(50),
//	    Transparency: pipeline.Int(60),
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Prompt)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/promptcanvas/promptcanvas/pkg/compose"
	"github.com/promptcanvas/promptcanvas/pkg/design"
	"github.com/promptcanvas/promptcanvas/pkg/errors"
	"github.com/promptcanvas/promptcanvas/pkg/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and TUI
// =============================================================================

const (
	// DefaultRatio is the default image-to-text ratio in percent.
	DefaultRatio = 50

	// DefaultTransparency is the default container transparency in percent.
	DefaultTransparency = 60
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the compute pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options. Template is a built-in name or a file path; Definition
	// short-circuits loading when the caller already holds one.
	Template   string                   `json:"template,omitempty"`
	Definition *layout.LayoutDefinition `json:"definition,omitempty"`

	// Compute options. Ratio and Transparency are pointers so an explicit
	// zero survives the trip through JSON and flag surfaces; nil means
	// "use the default".
	Ratio        *int  `json:"ratio,omitempty"`
	Transparency *int  `json:"transparency,omitempty"`
	Seed         int64 `json:"seed,omitempty"`
	Strict       bool  `json:"strict,omitempty"`
	NoCache      bool  `json:"no_cache,omitempty"`

	// Theme options. A zero theme means the default theme.
	Theme *design.Theme `json:"theme,omitempty"`

	// Compose options
	Texts compose.Texts `json:"texts,omitempty"`
	Motif compose.Motif `json:"motif,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this pipeline execution.
	RunID string `json:"run_id"`

	// Definition is the loaded layout template.
	Definition *layout.LayoutDefinition `json:"definition,omitempty"`

	// TemplateHash is the content hash of the loaded template.
	TemplateHash string `json:"template_hash"`

	// Layout is the computed and themed layout.
	Layout *layout.Result `json:"layout"`

	// Prompt is the composed image-generation prompt. Empty when the
	// layout failed validation in lenient mode.
	Prompt string `json:"prompt,omitempty"`

	// Stats contains timing and size information.
	Stats Stats `json:"stats"`

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo `json:"cache_info"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ZoneCount   int           `json:"zone_count"`
	LoadTime    time.Duration `json:"load_time"`
	ComputeTime time.Duration `json:"compute_time"`
	ComposeTime time.Duration `json:"compose_time"`
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ComputeHit bool `json:"compute_hit"` // Whether the compute result came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Template == "" && o.Definition == nil {
		return errors.New(errors.ErrCodeInvalidInput, "template name or definition is required")
	}

	if o.Ratio == nil {
		o.Ratio = Int(DefaultRatio)
	}
	if err := errors.ValidateRatio(*o.Ratio); err != nil {
		return err
	}

	if o.Transparency == nil {
		o.Transparency = Int(DefaultTransparency)
	}
	if err := errors.ValidateTransparency(*o.Transparency); err != nil {
		return err
	}

	if o.Theme == nil {
		theme := design.DefaultTheme()
		o.Theme = &theme
	}
	if err := o.Theme.Validate(); err != nil {
		return err
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// Int returns a pointer to v, for setting optional Options fields inline.
func Int(v int) *int {
	return &v
}

// Params returns the engine parameters for these options.
func (o *Options) Params() layout.Params {
	ratio, transparency := DefaultRatio, DefaultTransparency
	if o.Ratio != nil {
		ratio = *o.Ratio
	}
	if o.Transparency != nil {
		transparency = *o.Transparency
	}
	return layout.Params{
		Ratio:        ratio,
		Transparency: transparency,
		Seed:         o.Seed,
		Strict:       o.Strict,
	}
}
