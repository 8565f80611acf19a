// Package compose renders a computed layout, a theme, and the campaign
// content into the final image-generation prompt.
//
// Composition is ordered: layout, then palette, then text content, then the
// motif specification. Every part is a "Key: value" segment and the segments
// are joined with " | ".
package compose

import (
	"fmt"
	"strings"

	"github.com/promptcanvas/promptcanvas/pkg/design"
	"github.com/promptcanvas/promptcanvas/pkg/errors"
	"github.com/promptcanvas/promptcanvas/pkg/layout"
)

// Texts is the campaign copy placed into the layout's text containers.
type Texts struct {
	Headline string   `json:"headline,omitempty" toml:"headline"`
	Subline  string   `json:"subline,omitempty" toml:"subline"`
	CTA      string   `json:"cta,omitempty" toml:"cta"`
	Benefits []string `json:"benefits,omitempty" toml:"benefits"`
}

// Motif describes the background image to generate.
type Motif struct {
	Prompt      string `json:"prompt,omitempty" toml:"prompt"`
	VisualStyle string `json:"visual_style,omitempty" toml:"visual_style"`
	Lighting    string `json:"lighting,omitempty" toml:"lighting"`
	Framing     string `json:"framing,omitempty" toml:"framing"`
	Persona     string `json:"persona,omitempty" toml:"persona"`
	Environment string `json:"environment,omitempty" toml:"environment"`
}

// Motif defaults used when a field is left empty.
const (
	defaultMotifPrompt = "Professional person in a modern environment"
	defaultVisualStyle = "Professional"
	defaultLighting    = "Natural"
	defaultFraming     = "Medium Shot"
)

// maxBenefits caps the benefit list in the prompt.
const maxBenefits = 3

// FallbackPrompt is returned when no composable content is available at all.
func FallbackPrompt() string {
	return strings.Join([]string{
		defaultMotifPrompt,
		"Layout: standard",
		"Style: " + defaultVisualStyle,
		"Lighting: " + defaultLighting,
		"Framing: " + defaultFraming,
	}, " | ")
}

// Compose builds the final prompt from a validated compute result.
//
// The result must carry Validated=true; composing an unvalidated layout is
// rejected so broken templates never reach image generation.
func Compose(res *layout.Result, theme design.Theme, texts Texts, motif Motif) (string, error) {
	if res == nil || !res.Validated {
		return "", errors.New(errors.ErrCodeValidationFailed, "layout must be validated before composition")
	}

	var parts []string

	// 1. Layout
	if n := countContainers(res); n > 0 {
		parts = append(parts, fmt.Sprintf("Layout: %s with %d text containers", res.LayoutID, n))
	} else {
		parts = append(parts, "Layout: "+res.LayoutID)
	}

	// 2. Palette
	if theme.Palette.Primary != "" {
		parts = append(parts, "Primary color: "+theme.Palette.Primary)
	}
	if theme.Palette.Accent != "" {
		parts = append(parts, "Accent color: "+theme.Palette.Accent)
	}

	// 3. Text content
	if texts.Headline != "" {
		parts = append(parts, "Headline: "+texts.Headline)
	}
	if texts.Subline != "" {
		parts = append(parts, "Subline: "+texts.Subline)
	}
	if texts.CTA != "" {
		parts = append(parts, "CTA: "+texts.CTA)
	}
	if len(texts.Benefits) > 0 {
		benefits := texts.Benefits
		if len(benefits) > maxBenefits {
			benefits = benefits[:maxBenefits]
		}
		parts = append(parts, "Benefits: "+strings.Join(benefits, ", "))
	}

	// 4. Motif
	parts = append(parts, orDefault(motif.Prompt, defaultMotifPrompt))
	parts = append(parts, "Style: "+orDefault(motif.VisualStyle, defaultVisualStyle))
	parts = append(parts, "Lighting: "+orDefault(motif.Lighting, defaultLighting))
	parts = append(parts, "Framing: "+orDefault(motif.Framing, defaultFraming))
	if motif.Persona != "" {
		parts = append(parts, "Persona: "+motif.Persona)
	}
	if motif.Environment != "" {
		parts = append(parts, "Environment: "+motif.Environment)
	}

	return strings.Join(parts, " | "), nil
}

func countContainers(res *layout.Result) int {
	n := 0
	for _, zone := range res.Zones {
		if zone.ContainerStyle != nil {
			n++
		}
	}
	return n
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
