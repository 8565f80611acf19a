// Package design applies corporate-identity theming to computed layouts.
//
// The engine resolves a neutral white container style; this package restyles
// those containers from a palette and preset choices without touching
// geometry or the opacity the engine resolved. Motif zones are never styled.
package design

import (
	"strings"

	"github.com/promptcanvas/promptcanvas/pkg/errors"
	"github.com/promptcanvas/promptcanvas/pkg/layout"
)

// Palette holds the corporate-identity colors.
type Palette struct {
	Background string `json:"background" toml:"background"`
	Primary    string `json:"primary" toml:"primary"`
	Accent     string `json:"accent" toml:"accent"`
}

// DefaultPalette returns the neutral palette used when no CI is configured.
func DefaultPalette() Palette {
	return Palette{
		Background: "#FFFFFF",
		Primary:    "#111111",
		Accent:     "#FFC107",
	}
}

// Validate checks every palette color.
func (p Palette) Validate() error {
	for _, c := range []string{p.Background, p.Primary, p.Accent} {
		if err := errors.ValidateHexColor(c); err != nil {
			return err
		}
	}
	return nil
}

// Corner radius presets, smallest to largest.
const (
	RadiusSmall  = "small"
	RadiusMedium = "medium"
	RadiusLarge  = "large"
	RadiusXL     = "xl"
)

var radiusPresets = map[string]int{
	RadiusSmall:  8,
	RadiusMedium: 16,
	RadiusLarge:  24,
	RadiusXL:     32,
}

// Shadow presets.
const (
	ShadowNone = "none"
	ShadowSoft = "soft"
	ShadowHard = "hard"
)

var shadowPresets = map[string]string{
	ShadowNone: "none",
	ShadowSoft: "0 4px 8px rgba(0,0,0,0.1)",
	ShadowHard: "0 2px 6px rgba(0,0,0,0.2)",
}

// Theme selects the palette and the container presets for one run.
type Theme struct {
	Palette      Palette `json:"palette" toml:"palette"`
	CornerRadius string  `json:"corner_radius" toml:"corner_radius"`
	Shadow       string  `json:"shadow" toml:"shadow"`
}

// DefaultTheme matches the engine's neutral resolution, so applying it is a
// no-op apart from the CTA accent.
func DefaultTheme() Theme {
	return Theme{
		Palette:      DefaultPalette(),
		CornerRadius: RadiusMedium,
		Shadow:       ShadowSoft,
	}
}

// Validate checks the theme's palette and preset names.
func (t Theme) Validate() error {
	if err := t.Palette.Validate(); err != nil {
		return err
	}
	if _, ok := radiusPresets[t.CornerRadius]; !ok {
		return errors.New(errors.ErrCodeInvalidInput, "unknown corner radius preset %q", t.CornerRadius)
	}
	if _, ok := shadowPresets[t.Shadow]; !ok {
		return errors.New(errors.ErrCodeInvalidInput, "unknown shadow preset %q", t.Shadow)
	}
	return nil
}

// Zone roles drive per-role styling. The CTA role is the only one that
// currently differs: it gets an accent border.
const (
	RoleHeadline = "headline"
	RoleSubline  = "subline"
	RoleBenefits = "benefits"
	RoleCTA      = "cta"
	RoleTitle    = "title"
	RoleMeta     = "meta"
	RoleLogo     = "logo"
	RoleData     = "data"
	RoleContent  = "content"
	RoleShowcase = "showcase"
	RoleGeneric  = "generic"
)

var zoneRoles = map[string]string{
	"headline_block":     RoleHeadline,
	"hero_headline":      RoleHeadline,
	"story_headline":     RoleHeadline,
	"info_headline":      RoleHeadline,
	"magazine_headline":  RoleHeadline,
	"portfolio_headline": RoleHeadline,
	"subline_block":      RoleSubline,
	"hero_subline":       RoleSubline,
	"magazine_subline":   RoleSubline,
	"portfolio_subline":  RoleSubline,
	"benefits_block":     RoleBenefits,
	"cta_block":          RoleCTA,
	"stellentitel_block": RoleTitle,
	"logo_area":          RoleLogo,
	"standort_block":     RoleMeta,
	"company_block":      RoleMeta,
	"magazine_content":   RoleContent,
	"story_opening":      RoleContent,
	"story_development":  RoleContent,
	"story_conclusion":   RoleContent,
}

// ZoneRole classifies a zone name. Unmapped zones are generic.
func ZoneRole(name string) string {
	if role, ok := zoneRoles[name]; ok {
		return role
	}
	if strings.HasPrefix(name, "data_block_") {
		return RoleData
	}
	if strings.HasPrefix(name, "showcase_") {
		return RoleShowcase
	}
	return RoleGeneric
}

// Apply restyles the visible containers of a computed layout in place.
// Geometry, the zone key set, and the engine-resolved opacity stay untouched;
// zones without a container style (the motif zones) are skipped.
func Apply(res *layout.Result, theme Theme) error {
	if err := theme.Validate(); err != nil {
		return err
	}

	radius := radiusPresets[theme.CornerRadius]
	shadow := shadowPresets[theme.Shadow]

	for name, zone := range res.Zones {
		if zone.ContainerStyle == nil {
			continue
		}
		style := *zone.ContainerStyle
		style.BackgroundColor = theme.Palette.Background
		style.BorderRadius = radius
		style.Shadow = shadow

		if ZoneRole(name) == RoleCTA {
			style.Border = "2px solid " + theme.Palette.Accent
		}

		zone.ContainerStyle = &style
		res.Zones[name] = zone
	}
	return nil
}
