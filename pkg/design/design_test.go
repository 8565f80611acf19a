package design

import (
	"testing"

	"github.com/promptcanvas/promptcanvas/pkg/layout"
)

func computedResult(t *testing.T) *layout.Result {
	t.Helper()
	def := &layout.LayoutDefinition{
		LayoutID:   "theme_test",
		LayoutType: layout.TypeVerticalSplit,
		Zones: map[string]layout.ZoneSpec{
			"headline_block": {X: 54, Y: 140, Width: 440, Height: 120, ContentType: layout.ContentText},
			"subline_block":  {X: 54, Y: 290, Width: 420, Height: 80, ContentType: layout.ContentText},
			"benefits_block": {X: 54, Y: 410, Width: 420, Height: 260, ContentType: layout.ContentText},
			"cta_block":      {X: 54, Y: 720, Width: 320, Height: 90, ContentType: layout.ContentText},
			"image_motiv":    {X: 540, Y: 0, Width: 540, Height: 1080, ContentType: layout.ContentImage},
		},
	}
	res, err := layout.NewEngine().Compute(def, layout.Params{Ratio: 50, Transparency: 60})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	return res
}

func TestApplyTheme(t *testing.T) {
	res := computedResult(t)

	theme := Theme{
		Palette:      Palette{Background: "#F4F1EA", Primary: "#202020", Accent: "#E94E1B"},
		CornerRadius: RadiusLarge,
		Shadow:       ShadowHard,
	}
	if err := Apply(res, theme); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	headline := res.Zones["headline_block"]
	if headline.ContainerStyle.BackgroundColor != "#F4F1EA" {
		t.Errorf("background = %s, want the palette background", headline.ContainerStyle.BackgroundColor)
	}
	if headline.ContainerStyle.BorderRadius != 24 {
		t.Errorf("radius = %d, want 24", headline.ContainerStyle.BorderRadius)
	}
	if headline.ContainerStyle.BackgroundOpacity != 0.6 {
		t.Errorf("opacity = %v, theming must not change the resolved opacity", headline.ContainerStyle.BackgroundOpacity)
	}

	cta := res.Zones["cta_block"]
	if cta.ContainerStyle.Border != "2px solid #E94E1B" {
		t.Errorf("cta border = %q, want the accent border", cta.ContainerStyle.Border)
	}
	if headline.ContainerStyle.Border != "none" {
		t.Errorf("headline border = %q, only the CTA gets an accent", headline.ContainerStyle.Border)
	}

	if res.Zones["image_motiv"].ContainerStyle != nil {
		t.Error("motif zone must stay unstyled after theming")
	}
}

func TestApplyRejectsBadTheme(t *testing.T) {
	res := computedResult(t)

	bad := []Theme{
		{Palette: Palette{Background: "white", Primary: "#111111", Accent: "#FFC107"}, CornerRadius: RadiusMedium, Shadow: ShadowSoft},
		{Palette: DefaultPalette(), CornerRadius: "round", Shadow: ShadowSoft},
		{Palette: DefaultPalette(), CornerRadius: RadiusMedium, Shadow: "fancy"},
	}
	for _, theme := range bad {
		if err := Apply(res, theme); err == nil {
			t.Errorf("Apply accepted invalid theme %+v", theme)
		}
	}
}

func TestDefaultThemeMatchesEngineResolution(t *testing.T) {
	res := computedResult(t)
	before := *res.Zones["headline_block"].ContainerStyle

	if err := Apply(res, DefaultTheme()); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	after := *res.Zones["headline_block"].ContainerStyle
	if before != after {
		t.Errorf("default theme changed a non-CTA container: %+v vs %+v", before, after)
	}
}

func TestZoneRole(t *testing.T) {
	tests := []struct {
		zone string
		want string
	}{
		{"headline_block", RoleHeadline},
		{"hero_headline", RoleHeadline},
		{"cta_block", RoleCTA},
		{"data_block_3", RoleData},
		{"showcase_2", RoleShowcase},
		{"story_development", RoleContent},
		{"unmapped_zone", RoleGeneric},
	}
	for _, tt := range tests {
		if got := ZoneRole(tt.zone); got != tt.want {
			t.Errorf("ZoneRole(%s) = %s, want %s", tt.zone, got, tt.want)
		}
	}
}
