package layout

import (
	"fmt"
	"math"
	"strings"
)

// splitTextZones are the text containers the band-split family knows how to
// place, in stacking order.
var splitTextZones = []string{
	"standort_block",
	"headline_block",
	"subline_block",
	"benefits_block",
	"company_block",
	"cta_block",
	"stellentitel_block",
}

// fracRect is a rectangle in canvas fractions, used by the archetype
// position tables.
type fracRect struct{ X, Y, W, H float64 }

// newRuntimeZones copies the authored geometry of every zone. Calculators
// start from this passthrough map and adjust the zones they know, which
// guarantees the output key set always equals the input key set.
func newRuntimeZones(def *LayoutDefinition) map[string]ZoneRuntime {
	zones := make(map[string]ZoneRuntime, len(def.Zones))
	for name, spec := range def.Zones {
		zones[name] = ZoneRuntime{
			X:           spec.X,
			Y:           spec.Y,
			Width:       spec.Width,
			Height:      spec.Height,
			Z:           spec.Z,
			ContentType: spec.ContentType,
			Description: spec.Description,
		}
	}
	return zones
}

// requireZones re-checks the structural anchors of an archetype. Validation
// normally catches these, but in lenient mode errors do not block, so a
// calculator must not be reachable with geometry it cannot produce.
func requireZones(def *LayoutDefinition, names ...string) error {
	for _, name := range names {
		if _, ok := def.Zones[name]; !ok {
			return &GeometryError{
				LayoutType: def.LayoutType,
				Reason:     fmt.Sprintf("zone %q is structurally required and absent", name),
			}
		}
	}
	return nil
}

// isMotivZone reports whether a zone carries the image motif. Motif zones
// receive geometry only, never a container style.
func isMotivZone(name string, spec ZoneSpec) bool {
	if spec.ContentType == ContentImage {
		return true
	}
	return name == "image_motiv" || name == "motiv_area" || strings.HasSuffix(name, "_motiv")
}

// placeFrac positions a zone from a fractional rectangle.
func placeFrac(z *ZoneRuntime, geo Geometry, r fracRect) {
	z.X = r.X * geo.Canvas.Width
	z.Y = r.Y * geo.Canvas.Height
	z.Width = r.W * geo.Canvas.Width
	z.Height = r.H * geo.Canvas.Height
}

// clampIntoCanvas keeps a zone inside the canvas with a padding margin.
func clampIntoCanvas(z *ZoneRuntime, geo Geometry, pad float64) {
	z.X = min(max(z.X, pad), geo.Canvas.Width-z.Width-pad)
	z.Y = min(max(z.Y, pad), geo.Canvas.Height-z.Height-pad)
}

// placeTable applies a fractional position table to whichever of its zones
// are present, styling each as a visible container.
func placeTable(def *LayoutDefinition, geo Geometry, zones map[string]ZoneRuntime, table map[string]fracRect) {
	for _, name := range def.ZoneNames() {
		r, ok := table[name]
		if !ok {
			continue
		}
		z := zones[name]
		placeFrac(&z, geo, r)
		styleZone(&z, geo.Opacity)
		zones[name] = z
	}
}

// =============================================================================
// Band Split Family
// =============================================================================

// resizeTextZones narrows the known text zones to fit the text band, keeping
// their authored positions, and styles them as visible containers.
func resizeTextZones(def *LayoutDefinition, geo Geometry, zones map[string]ZoneRuntime, margin, offsetX float64) {
	for _, name := range splitTextZones {
		z, ok := zones[name]
		if !ok {
			continue
		}
		z.Width = min(geo.TextWidth-margin, z.Width)
		if offsetX >= 0 {
			z.X = offsetX
		}
		styleZone(&z, geo.Opacity)
		zones[name] = z
	}
}

// calcVerticalSplit places the text band left and the image band right. It
// also serves as the documented fallback geometry for unknown layout types.
func calcVerticalSplit(def *LayoutDefinition, geo Geometry) (map[string]ZoneRuntime, map[string]float64, error) {
	if err := requireZones(def, "headline_block"); err != nil {
		return nil, nil, err
	}
	zones := newRuntimeZones(def)

	resizeTextZones(def, geo, zones, 80, -1)

	if z, ok := zones["image_motiv"]; ok {
		z.X = geo.TextWidth + bandGutter
		z.Width = geo.ImageWidth
		zones["image_motiv"] = z
	}
	return zones, nil, nil
}

// calcVerticalSplitLeft mirrors the vertical split: image band left, text
// band right.
func calcVerticalSplitLeft(def *LayoutDefinition, geo Geometry) (map[string]ZoneRuntime, map[string]float64, error) {
	if err := requireZones(def, "headline_block"); err != nil {
		return nil, nil, err
	}
	zones := newRuntimeZones(def)

	resizeTextZones(def, geo, zones, 80, geo.ImageWidth+bandGutter)

	if z, ok := zones["image_motiv"]; ok {
		z.X = 0
		z.Width = geo.ImageWidth
		zones["image_motiv"] = z
	}
	return zones, nil, nil
}

// calcHorizontalSplit stacks an image band on top of the text zones. The
// image band height follows the ratio directly.
func calcHorizontalSplit(def *LayoutDefinition, geo Geometry) (map[string]ZoneRuntime, map[string]float64, error) {
	if err := requireZones(def, "headline_block"); err != nil {
		return nil, nil, err
	}
	zones := newRuntimeZones(def)

	imageHeight := float64(geo.Ratio) / 100 * geo.Canvas.Height
	if z, ok := zones["image_motiv"]; ok {
		z.X = 0
		z.Y = 0
		z.Width = geo.Canvas.Width
		z.Height = imageHeight
		zones["image_motiv"] = z
	}

	resizeTextZones(def, geo, zones, 40, -1)

	extras := map[string]float64{"image_band_height": imageHeight}
	return zones, extras, nil
}

// calcModernSplit is the vertical split with wider container margins.
func calcModernSplit(def *LayoutDefinition, geo Geometry) (map[string]ZoneRuntime, map[string]float64, error) {
	if err := requireZones(def, "headline_block"); err != nil {
		return nil, nil, err
	}
	zones := newRuntimeZones(def)

	resizeTextZones(def, geo, zones, 160, -1)

	if z, ok := zones["image_motiv"]; ok {
		z.X = geo.TextWidth + bandGutter
		z.Width = geo.ImageWidth
		zones["image_motiv"] = z
	}
	return zones, nil, nil
}

// calcMinimalist keeps authored positions and only narrows the text
// containers. There is no dedicated image band.
func calcMinimalist(def *LayoutDefinition, geo Geometry) (map[string]ZoneRuntime, map[string]float64, error) {
	if err := requireZones(def, "headline_block"); err != nil {
		return nil, nil, err
	}
	zones := newRuntimeZones(def)
	resizeTextZones(def, geo, zones, 40, -1)
	return zones, nil, nil
}

// calcSplit puts all containers in the upper half and a motif band below. A
// higher ratio raises the band edge, giving the motif more room.
func calcSplit(def *LayoutDefinition, geo Geometry) (map[string]ZoneRuntime, map[string]float64, error) {
	if err := requireZones(def, "headline_block"); err != nil {
		return nil, nil, err
	}
	zones := newRuntimeZones(def)

	placeTable(def, geo, zones, map[string]fracRect{
		"standort_block":     {0.05, 0.05, 0.40, 0.06},
		"headline_block":     {0.05, 0.15, 0.60, 0.08},
		"benefits_block":     {0.05, 0.25, 0.60, 0.20},
		"stellentitel_block": {0.05, 0.60, 0.40, 0.08},
		"cta_block":          {0.05, 0.85, 0.40, 0.08},
	})

	// Band edge slides between 340 and 740 reference pixels.
	motivY := geo.scaleY(clampFloat(540+2*float64(100-geo.Ratio), 340, 740))
	if z, ok := zones["motiv_area"]; ok {
		z.X = 0
		z.Y = motivY
		z.Width = geo.Canvas.Width
		z.Height = geo.Canvas.Height - motivY
		zones["motiv_area"] = z
	}

	extras := map[string]float64{
		"motiv_y":       motivY,
		"motiv_height":  geo.Canvas.Height - motivY,
		"motiv_percent": math.Round(motivY/geo.Canvas.Height*1000) / 10,
	}
	return zones, extras, nil
}

func clampFloat(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
