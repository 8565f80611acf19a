package layout

// Numeric policy shared by all calculators. Centralizing the clamps and the
// container style shape keeps the archetypes from drifting apart.
const (
	MinRatio = 30
	MaxRatio = 70

	// MinOpacity is the floor for resolved container opacity. Containers
	// are never allowed to become fully invisible.
	MinOpacity = 0.1
	MaxOpacity = 1.0
)

// Fixed container style fields. Only the opacity varies per run.
const (
	containerBackground = "#FFFFFF"
	containerRadius     = 16
	containerShadow     = "0 4px 8px rgba(0,0,0,0.1)"
	styleNone           = "none"
)

// ClampRatio corrects an out-of-range image/text ratio to the nearest bound.
// Ratio is a continuous dial with a documented safe range, so bad input is
// corrected rather than rejected.
func ClampRatio(ratio int) int {
	if ratio < MinRatio {
		return MinRatio
	}
	if ratio > MaxRatio {
		return MaxRatio
	}
	return ratio
}

// ClampTransparency corrects a transparency percentage into [0,100].
func ClampTransparency(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// ResolveOpacity converts a transparency percentage into the canonical
// container opacity: clamp(pct/100, 0.1, 1.0).
func ResolveOpacity(pct int) float64 {
	op := float64(ClampTransparency(pct)) / 100
	if op < MinOpacity {
		return MinOpacity
	}
	if op > MaxOpacity {
		return MaxOpacity
	}
	return op
}

// NewContainerStyle builds the fixed-shape style record for a visible
// container: solid white background, the resolved opacity, constant radius
// and drop shadow, no border, no outline.
func NewContainerStyle(opacity float64) *ContainerStyle {
	return &ContainerStyle{
		BackgroundColor:   containerBackground,
		BackgroundOpacity: opacity,
		BorderRadius:      containerRadius,
		Shadow:            containerShadow,
		Border:            styleNone,
		Outline:           styleNone,
	}
}

// styleZone marks a zone as a visible container. The zone-level Opacity and
// Alpha mirrors exist for consumers predating container_style and must stay
// numerically identical to BackgroundOpacity.
func styleZone(z *ZoneRuntime, opacity float64) {
	z.ContainerStyle = NewContainerStyle(opacity)
	z.Opacity = opacity
	z.Alpha = opacity
}
