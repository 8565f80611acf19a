package layout

import "fmt"

// The editorial family maps zones into named slots: story beats, showcase
// filmstrips, data columns, and magazine columns.

// calcStorytelling stacks the story beats down the left half, each in its
// own container, over a full-background motif.
func calcStorytelling(def *LayoutDefinition, geo Geometry) (map[string]ZoneRuntime, map[string]float64, error) {
	if err := requireZones(def, "story_headline"); err != nil {
		return nil, nil, err
	}
	zones := newRuntimeZones(def)

	placeTable(def, geo, zones, map[string]fracRect{
		"story_headline":    {0.05, 0.10, 0.45, 0.08},
		"story_opening":     {0.05, 0.22, 0.45, 0.10},
		"story_development": {0.05, 0.36, 0.45, 0.14},
		"story_conclusion":  {0.05, 0.54, 0.45, 0.10},
		"cta_block":         {0.05, 0.68, 0.30, 0.08},
		"logo_area":         {0.80, 0.05, 0.15, 0.06},
	})

	fillMotiv(zones, geo, "story_motiv")
	return zones, nil, nil
}

// calcPortfolio allocates the showcase_N zones into a bottom filmstrip. The
// slot count is ratio-independent; only the block width inside each slot
// scales with the ratio.
func calcPortfolio(def *LayoutDefinition, geo Geometry) (map[string]ZoneRuntime, map[string]float64, error) {
	if err := requireZones(def, "portfolio_headline", "showcase_1"); err != nil {
		return nil, nil, err
	}
	zones := newRuntimeZones(def)

	placeTable(def, geo, zones, map[string]fracRect{
		"portfolio_headline": {0.05, 0.06, 0.55, 0.10},
		"portfolio_subline":  {0.05, 0.18, 0.50, 0.07},
		"cta_block":          {0.70, 0.06, 0.25, 0.08},
		"logo_area":          {0.70, 0.16, 0.25, 0.06},
	})

	var strip []string
	for _, name := range def.ZoneNames() {
		if name == "showcase_1" || name == "showcase_2" || name == "showcase_3" {
			strip = append(strip, name)
		}
	}

	stripX := 0.05 * geo.Canvas.Width
	stripW := 0.90 * geo.Canvas.Width
	slotW := stripW / float64(len(strip))
	blockW := slotW * float64(geo.Ratio) / float64(MaxRatio)

	for i, name := range strip {
		z := zones[name]
		z.X = stripX + float64(i)*slotW + (slotW-blockW)/2
		z.Y = 0.62 * geo.Canvas.Height
		z.Width = blockW
		z.Height = 0.28 * geo.Canvas.Height
		styleZone(&z, geo.Opacity)
		zones[name] = z
	}

	extras := map[string]float64{
		"showcase_count": float64(len(strip)),
		"showcase_width": blockW,
	}
	return zones, extras, nil
}

// calcInfographic spreads the data_block_N zones into equal columns across
// the middle band, headline above and CTA below.
func calcInfographic(def *LayoutDefinition, geo Geometry) (map[string]ZoneRuntime, map[string]float64, error) {
	if err := requireZones(def, "info_headline", "data_block_1"); err != nil {
		return nil, nil, err
	}
	zones := newRuntimeZones(def)

	placeTable(def, geo, zones, map[string]fracRect{
		"info_headline": {0.05, 0.05, 0.90, 0.10},
		"cta_block":     {0.05, 0.85, 0.30, 0.08},
		"logo_area":     {0.80, 0.88, 0.15, 0.06},
	})

	var blocks []string
	for i := 1; i <= 4; i++ {
		name := fmt.Sprintf("data_block_%d", i)
		if _, ok := def.Zones[name]; ok {
			blocks = append(blocks, name)
		}
	}

	gap := geo.scaleX(20)
	usable := 0.90*geo.Canvas.Width - float64(len(blocks)-1)*gap
	colW := usable / float64(len(blocks))

	for i, name := range blocks {
		z := zones[name]
		z.X = 0.05*geo.Canvas.Width + float64(i)*(colW+gap)
		z.Y = 0.25 * geo.Canvas.Height
		z.Width = colW
		z.Height = 0.45 * geo.Canvas.Height
		styleZone(&z, geo.Opacity)
		zones[name] = z
	}

	fillMotiv(zones, geo, "info_motiv")

	extras := map[string]float64{"data_columns": float64(len(blocks))}
	return zones, extras, nil
}

// calcMagazine splits the page into a text column and a motif column below a
// full-width headline, the column widths following the resolved bands.
func calcMagazine(def *LayoutDefinition, geo Geometry) (map[string]ZoneRuntime, map[string]float64, error) {
	if err := requireZones(def, "magazine_headline", "magazine_content"); err != nil {
		return nil, nil, err
	}
	zones := newRuntimeZones(def)

	placeTable(def, geo, zones, map[string]fracRect{
		"magazine_headline": {0.05, 0.06, 0.90, 0.12},
		"magazine_subline":  {0.05, 0.20, 0.55, 0.07},
		"cta_block":         {0.05, 0.90, 0.30, 0.07},
		"logo_area":         {0.80, 0.90, 0.15, 0.06},
	})

	if z, ok := zones["magazine_content"]; ok {
		z.X = 0.05 * geo.Canvas.Width
		z.Y = 0.30 * geo.Canvas.Height
		z.Width = geo.TextWidth - 0.05*geo.Canvas.Width
		z.Height = 0.55 * geo.Canvas.Height
		styleZone(&z, geo.Opacity)
		zones["magazine_content"] = z
	}

	if z, ok := zones["magazine_motiv"]; ok {
		z.X = geo.TextWidth + bandGutter
		z.Y = 0.30 * geo.Canvas.Height
		z.Width = geo.ImageWidth
		z.Height = 0.55 * geo.Canvas.Height
		zones["magazine_motiv"] = z
	}
	return zones, nil, nil
}
