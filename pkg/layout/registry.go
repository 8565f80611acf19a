package layout

import "slices"

// Layout type identifiers. Each selects both a requirement set and a
// geometry calculator.
const (
	TypeVerticalSplit     = "dynamic_vertical_split_layout"
	TypeVerticalSplitLeft = "dynamic_vertical_split_left_layout"
	TypeHorizontalSplit   = "dynamic_horizontal_split_layout"
	TypeModernSplit       = "dynamic_modern_split_layout"
	TypeMinimalist        = "dynamic_minimalist_layout"
	TypeHero              = "dynamic_hero_layout"
	TypeCentered          = "dynamic_centered_layout"
	TypeDiagonal          = "dynamic_diagonal_layout"
	TypeAsymmetric        = "dynamic_asymmetric_layout"
	TypeGrid              = "dynamic_grid_layout"
	TypeSplit             = "dynamic_split_layout"
	TypeStorytelling      = "dynamic_storytelling_layout"
	TypeInfographic       = "dynamic_infographic_layout"
	TypeMagazine          = "dynamic_magazine_layout"
	TypePortfolio         = "dynamic_portfolio_layout"
)

// Requirements is the zone contract of one layout type.
// Invariant: Required and Optional are disjoint.
type Requirements struct {
	Required []string `json:"required"`
	Optional []string `json:"optional"`
}

// IsExpected reports whether a zone name is either required or optional.
func (r Requirements) IsExpected(name string) bool {
	return slices.Contains(r.Required, name) || slices.Contains(r.Optional, name)
}

// Registry maps layout types to zone requirements. It is an explicit value
// rather than package state so tests can supply isolated registries.
type Registry struct {
	entries map[string]Requirements
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Requirements)}
}

// Register adds or replaces the requirements for a layout type.
func (r *Registry) Register(layoutType string, req Requirements) {
	r.entries[layoutType] = req
}

// Lookup returns the requirements for a layout type, or an
// UnknownLayoutTypeError when no entry exists. Falling back to the
// vertical-split set is a caller policy, never done here.
func (r *Registry) Lookup(layoutType string) (Requirements, error) {
	req, ok := r.entries[layoutType]
	if !ok {
		return Requirements{}, &UnknownLayoutTypeError{LayoutType: layoutType}
	}
	return req, nil
}

// Types returns all registered layout types in sorted order.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.entries))
	for t := range r.entries {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// DefaultRegistry returns the built-in requirement table.
func DefaultRegistry() *Registry {
	splitZones := Requirements{
		Required: []string{"headline_block", "subline_block", "benefits_block"},
		Optional: []string{"logo_area", "cta_block", "company_block", "standort_block", "stellentitel_block", "image_motiv"},
	}
	overlayZones := Requirements{
		Required: []string{"headline_block", "subline_block", "benefits_block"},
		Optional: []string{"logo_area", "cta_block", "company_block", "standort_block", "motiv_area"},
	}

	r := NewRegistry()
	r.Register(TypeVerticalSplit, splitZones)
	r.Register(TypeVerticalSplitLeft, splitZones)
	r.Register(TypeHorizontalSplit, splitZones)
	r.Register(TypeModernSplit, Requirements{
		Required: []string{"headline_block", "benefits_block"},
		Optional: []string{"logo_area", "cta_block", "standort_block", "stellentitel_block", "image_motiv"},
	})
	r.Register(TypeMinimalist, Requirements{
		Required: []string{"headline_block", "subline_block"},
		Optional: []string{"logo_area", "cta_block", "image_motiv"},
	})
	r.Register(TypeHero, Requirements{
		Required: []string{"hero_headline", "hero_subline"},
		Optional: []string{"logo_area", "cta_block", "hero_motiv"},
	})
	r.Register(TypeCentered, overlayZones)
	r.Register(TypeDiagonal, overlayZones)
	r.Register(TypeAsymmetric, Requirements{
		Required: []string{"headline_block", "subline_block", "benefits_block"},
		Optional: []string{"logo_area", "cta_block", "company_block", "standort_block", "stellentitel_block", "motiv_area"},
	})
	r.Register(TypeGrid, overlayZones)
	r.Register(TypeSplit, Requirements{
		Required: []string{"headline_block", "benefits_block"},
		Optional: []string{"logo_area", "cta_block", "standort_block", "stellentitel_block", "motiv_area"},
	})
	r.Register(TypeStorytelling, Requirements{
		Required: []string{"story_headline", "story_opening", "story_development"},
		Optional: []string{"logo_area", "cta_block", "story_motiv", "story_conclusion"},
	})
	r.Register(TypeInfographic, Requirements{
		Required: []string{"info_headline", "data_block_1"},
		Optional: []string{"logo_area", "cta_block", "info_motiv", "data_block_2", "data_block_3", "data_block_4"},
	})
	r.Register(TypeMagazine, Requirements{
		Required: []string{"magazine_headline", "magazine_content"},
		Optional: []string{"logo_area", "cta_block", "magazine_motiv", "magazine_subline"},
	})
	r.Register(TypePortfolio, Requirements{
		Required: []string{"portfolio_headline", "portfolio_subline", "showcase_1"},
		Optional: []string{"logo_area", "cta_block", "portfolio_motiv", "showcase_2", "showcase_3"},
	})
	return r
}
