package layout

import "slices"

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Content type tags for zones.
const (
	ContentText  = "text_elements"
	ContentImage = "image_motiv"
	ContentLogo  = "logo_elements"
)

// Reference canvas dimensions. Templates that omit a canvas get these, and
// archetype constants tuned for the reference canvas are rescaled from them.
const (
	DefaultCanvasWidth  = 1080.0
	DefaultCanvasHeight = 1080.0
)

// Band width limits in reference-canvas pixels. The text band is kept readable
// and the image band perceptible regardless of the requested ratio.
const (
	MinTextWidth  = 250.0
	MaxTextWidth  = 800.0
	MinImageWidth = 150.0
	MaxImageWidth = 900.0

	// bandGutter separates the text band from the image band.
	bandGutter = 60.0
)

// =============================================================================
// Authored Input - ZoneSpec and LayoutDefinition
// =============================================================================

// ZoneSpec is the author-supplied geometry and semantics for one named zone.
// Coordinates are template-authored, resolution-independent units. Style is
// never authored; it is resolved at compute time.
type ZoneSpec struct {
	X           float64 `json:"x" yaml:"x" bson:"x"`
	Y           float64 `json:"y" yaml:"y" bson:"y"`
	Width       float64 `json:"width" yaml:"width" bson:"width"`
	Height      float64 `json:"height" yaml:"height" bson:"height"`
	Z           int     `json:"z,omitempty" yaml:"z,omitempty" bson:"z,omitempty"`
	ContentType string  `json:"content_type,omitempty" yaml:"content_type,omitempty" bson:"content_type,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty" bson:"description,omitempty"`
}

// Canvas holds the target frame dimensions.
type Canvas struct {
	Width  float64 `json:"width" yaml:"width" bson:"width"`
	Height float64 `json:"height" yaml:"height" bson:"height"`
}

// LayoutDefinition is a loaded layout template: an identifier selecting the
// requirement set and geometry algorithm, plus the authored zone map.
type LayoutDefinition struct {
	LayoutID   string              `json:"layout_id" yaml:"layout_id" bson:"layout_id"`
	Name       string              `json:"name,omitempty" yaml:"name,omitempty" bson:"name,omitempty"`
	LayoutType string              `json:"layout_type" yaml:"layout_type" bson:"layout_type"`
	Canvas     Canvas              `json:"canvas" yaml:"canvas" bson:"canvas"`
	Zones      map[string]ZoneSpec `json:"zones" yaml:"zones" bson:"zones"`
}

// =============================================================================
// Runtime Parameters
// =============================================================================

// Params are the caller-supplied dials for one compute invocation.
type Params struct {
	// Ratio is the image-width share of the usable width in percent.
	// Values outside [30,70] are clamped, not rejected.
	Ratio int `json:"ratio"`

	// Transparency is the container transparency in percent (0..100).
	Transparency int `json:"transparency"`

	// Seed is reserved for future stochastic variant selection. It is
	// recorded in results and cache keys but no calculator consumes it.
	Seed int64 `json:"seed,omitempty"`

	// Strict makes missing-required-zone validation errors fatal.
	Strict bool `json:"strict,omitempty"`
}

// =============================================================================
// Resolved Output - ZoneRuntime and Result
// =============================================================================

// ContainerStyle is the fixed-shape visual styling record attached to every
// visible container zone. The shape is identical across archetypes; only
// which zones receive one varies.
type ContainerStyle struct {
	BackgroundColor   string  `json:"background_color" bson:"background_color"`
	BackgroundOpacity float64 `json:"background_opacity" bson:"background_opacity"`
	BorderRadius      int     `json:"border_radius" bson:"border_radius"`
	Shadow            string  `json:"shadow" bson:"shadow"`
	Border            string  `json:"border" bson:"border"`
	Outline           string  `json:"outline" bson:"outline"`
}

// ZoneRuntime is one resolved zone: pixel coordinates plus, for visible
// containers, the resolved style. Opacity and Alpha mirror
// ContainerStyle.BackgroundOpacity for consumers predating the
// container_style convention; they are derived, never set independently.
type ZoneRuntime struct {
	X           float64 `json:"x" bson:"x"`
	Y           float64 `json:"y" bson:"y"`
	Width       float64 `json:"width" bson:"width"`
	Height      float64 `json:"height" bson:"height"`
	Z           int     `json:"z,omitempty" bson:"z,omitempty"`
	ContentType string  `json:"content_type,omitempty" bson:"content_type,omitempty"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`

	ContainerStyle *ContainerStyle `json:"container_style,omitempty" bson:"container_style,omitempty"`
	Opacity        float64         `json:"opacity,omitempty" bson:"opacity,omitempty"`
	Alpha          float64         `json:"alpha,omitempty" bson:"alpha,omitempty"`
}

// CalculatedValues carries the shared numeric outcomes of a compute run plus
// archetype-specific extras (e.g. the hero motif split height).
type CalculatedValues struct {
	TextWidth  float64 `json:"text_width" bson:"text_width"`
	ImageWidth float64 `json:"image_width" bson:"image_width"`
	Ratio      int     `json:"image_text_ratio" bson:"image_text_ratio"`
	Opacity    float64 `json:"container_transparency" bson:"container_transparency"`
	Seed       int64   `json:"seed,omitempty" bson:"seed,omitempty"`

	Extras map[string]float64 `json:"extras,omitempty" bson:"extras,omitempty"`
}

// ValidationResult separates hard errors (missing required zones) from soft
// warnings (unexpected zones). Warnings never block processing.
type ValidationResult struct {
	Errors   []string `json:"errors" bson:"errors"`
	Warnings []string `json:"warnings" bson:"warnings"`
}

// OK reports whether no hard errors were found.
func (v ValidationResult) OK() bool { return len(v.Errors) == 0 }

// Result is the fully resolved layout returned by the engine. It is owned by
// the caller; the engine keeps no state across calls.
type Result struct {
	LayoutID   string                 `json:"layout_id" bson:"layout_id"`
	LayoutType string                 `json:"layout_type" bson:"layout_type"`
	Canvas     Canvas                 `json:"canvas" bson:"canvas"`
	Zones      map[string]ZoneRuntime `json:"zones" bson:"zones"`
	Values     CalculatedValues       `json:"calculated_values" bson:"calculated_values"`
	Validation ValidationResult       `json:"validation" bson:"validation"`

	// FallbackUsed records that the layout type had no registered
	// calculator and the vertical-split geometry was used instead.
	FallbackUsed bool `json:"fallback_used,omitempty" bson:"fallback_used,omitempty"`

	// Validated is set once the result passed validation, gating
	// downstream prompt composition.
	Validated bool `json:"validated" bson:"validated"`
}

// ZoneNames returns the zone names of a definition in sorted order. All
// placement and diagnostics iterate in this order so identical inputs yield
// byte-identical output.
func (d *LayoutDefinition) ZoneNames() []string {
	names := make([]string, 0, len(d.Zones))
	for name := range d.Zones {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
