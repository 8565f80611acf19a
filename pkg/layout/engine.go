package layout

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Geometry is the shared numeric input handed to every calculator: the
// canvas, the resolved band widths, and the clamped dials.
type Geometry struct {
	Canvas     Canvas
	TextWidth  float64
	ImageWidth float64
	Ratio      int     // clamped to [30,70]
	Opacity    float64 // clamped to [0.1,1.0]
}

// scaleX and scaleY convert reference-canvas constants to the actual canvas.
func (g Geometry) scaleX(v float64) float64 { return v * g.Canvas.Width / DefaultCanvasWidth }
func (g Geometry) scaleY(v float64) float64 { return v * g.Canvas.Height / DefaultCanvasHeight }

// Calculator derives resolved zone geometry for one layout family. It must
// return a runtime zone for every input zone - never fewer, never more - and
// may report archetype-specific values in the extras map.
type Calculator func(def *LayoutDefinition, geo Geometry) (map[string]ZoneRuntime, map[string]float64, error)

// Engine orchestrates validation, dispatch, and geometry calculation. It is
// stateless across calls and safe for concurrent use.
type Engine struct {
	registry *Registry
	calcs    map[string]Calculator
	logger   *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry replaces the default requirement registry.
func WithRegistry(r *Registry) Option {
	return func(e *Engine) { e.registry = r }
}

// WithLogger attaches a logger for fallback and clamp diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine creates an engine with all built-in archetype calculators
// registered.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		registry: DefaultRegistry(),
		calcs:    make(map[string]Calculator),
		logger:   log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.RegisterCalculator(TypeVerticalSplit, calcVerticalSplit)
	e.RegisterCalculator(TypeVerticalSplitLeft, calcVerticalSplitLeft)
	e.RegisterCalculator(TypeHorizontalSplit, calcHorizontalSplit)
	e.RegisterCalculator(TypeModernSplit, calcModernSplit)
	e.RegisterCalculator(TypeMinimalist, calcMinimalist)
	e.RegisterCalculator(TypeHero, calcHero)
	e.RegisterCalculator(TypeCentered, calcCentered)
	e.RegisterCalculator(TypeDiagonal, calcDiagonal)
	e.RegisterCalculator(TypeAsymmetric, calcAsymmetric)
	e.RegisterCalculator(TypeGrid, calcGrid)
	e.RegisterCalculator(TypeSplit, calcSplit)
	e.RegisterCalculator(TypeStorytelling, calcStorytelling)
	e.RegisterCalculator(TypeInfographic, calcInfographic)
	e.RegisterCalculator(TypeMagazine, calcMagazine)
	e.RegisterCalculator(TypePortfolio, calcPortfolio)
	return e
}

// RegisterCalculator adds or replaces the calculator for a layout type.
// New archetypes plug in here instead of extending a central branch chain.
func (e *Engine) RegisterCalculator(layoutType string, c Calculator) {
	e.calcs[layoutType] = c
}

// Registry exposes the engine's requirement registry.
func (e *Engine) Registry() *Registry { return e.registry }

// Compute validates the definition, dispatches to the archetype calculator,
// and returns the fully resolved layout.
//
// In strict mode a non-empty error list aborts with a ValidationError and no
// partial result. Warnings never block in either mode. A layout type with no
// registered calculator falls back to vertical-split geometry; the fallback
// is recorded on the result so diagnostics can surface it.
func (e *Engine) Compute(def *LayoutDefinition, p Params) (*Result, error) {
	validation := Validate(e.registry, def)
	if p.Strict && !validation.OK() {
		return nil, &ValidationError{LayoutID: def.LayoutID, Errors: validation.Errors}
	}

	ratio := ClampRatio(p.Ratio)
	if ratio != p.Ratio {
		e.logger.Warn("ratio out of range, clamped", "requested", p.Ratio, "used", ratio)
	}
	opacity := ResolveOpacity(p.Transparency)

	canvas := def.Canvas
	if canvas.Width <= 0 {
		canvas.Width = DefaultCanvasWidth
	}
	if canvas.Height <= 0 {
		canvas.Height = DefaultCanvasHeight
	}

	textWidth, imageWidth, err := SplitWidths(ratio, canvas.Width)
	if err != nil {
		return nil, err
	}

	geo := Geometry{
		Canvas:     canvas,
		TextWidth:  textWidth,
		ImageWidth: imageWidth,
		Ratio:      ratio,
		Opacity:    opacity,
	}

	calc, ok := e.calcs[def.LayoutType]
	fallback := false
	if !ok {
		e.logger.Warn("no calculator for layout type, falling back to vertical split", "layout_type", def.LayoutType)
		calc = e.calcs[TypeVerticalSplit]
		fallback = true
	}

	zones, extras, err := calc(def, geo)
	if err != nil {
		return nil, err
	}

	res := &Result{
		LayoutID:     def.LayoutID,
		LayoutType:   def.LayoutType,
		Canvas:       canvas,
		Zones:        zones,
		Validation:   validation,
		FallbackUsed: fallback,
		Validated:    validation.OK(),
		Values: CalculatedValues{
			TextWidth:  textWidth,
			ImageWidth: imageWidth,
			Ratio:      ratio,
			Opacity:    opacity,
			Seed:       p.Seed,
			Extras:     extras,
		},
	}
	return res, nil
}

// SplitWidths derives the text and image band widths from the clamped ratio.
// The image band takes ratio percent of the canvas width; the text band takes
// the rest minus the gutter, clamped to its readable range, with the image
// band absorbing the correction.
func SplitWidths(ratio int, canvasWidth float64) (textWidth, imageWidth float64, err error) {
	imageWidth = float64(ratio) / 100 * canvasWidth
	textWidth = canvasWidth - imageWidth - bandGutter

	textWidth = min(max(textWidth, MinTextWidth), MaxTextWidth)
	imageWidth = canvasWidth - textWidth - bandGutter

	if textWidth+imageWidth <= 0 {
		return 0, 0, &GeometryError{
			Reason: fmt.Sprintf("degenerate total width: canvas width %.0f leaves no usable space", canvasWidth),
		}
	}
	return textWidth, imageWidth, nil
}
