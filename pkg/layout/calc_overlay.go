package layout

import "math"

// The overlay family places containers over a full-background motif. The
// ratio steers how much of the motif stays visible.

// overlayGroup derives the centered container-group box from the ratio: a
// higher ratio grows the group, covering more of the background motif.
// Constants are in reference-canvas pixels.
func overlayGroup(geo Geometry) (x, y, w, h float64) {
	rf := float64(geo.Ratio) / 100

	w = geo.scaleX(clampFloat(500*(0.7+rf*0.6), 350, 700))
	h = geo.scaleY(clampFloat(800*(0.75+rf*0.5), 600, 1000))
	x = (geo.Canvas.Width - w) / 2
	y = (geo.Canvas.Height - h) / 2
	return x, y, w, h
}

// fillMotiv stretches the motif zone across the whole canvas.
func fillMotiv(zones map[string]ZoneRuntime, geo Geometry, name string) {
	if z, ok := zones[name]; ok {
		z.X = 0
		z.Y = 0
		z.Width = geo.Canvas.Width
		z.Height = geo.Canvas.Height
		zones[name] = z
	}
}

// calcHero puts the motif full-bleed behind two large centered text zones.
// The ratio affects the text-zone width only.
func calcHero(def *LayoutDefinition, geo Geometry) (map[string]ZoneRuntime, map[string]float64, error) {
	if err := requireZones(def, "hero_headline", "hero_subline"); err != nil {
		return nil, nil, err
	}
	zones := newRuntimeZones(def)

	widthFrac := float64(geo.Ratio) / 100
	centerX := (1 - widthFrac) / 2

	placeTable(def, geo, zones, map[string]fracRect{
		"hero_headline": {centerX, 0.58, widthFrac, 0.10},
		"hero_subline":  {centerX + 0.05, 0.70, widthFrac - 0.10, 0.07},
		"logo_area":     {0.05, 0.90, 0.25, 0.06},
		"cta_block":     {0.70, 0.90, 0.25, 0.08},
	})

	fillMotiv(zones, geo, "hero_motiv")

	extras := map[string]float64{"text_width_fraction": widthFrac}
	return zones, extras, nil
}

// calcCentered groups all containers around the canvas midpoint; the group
// box scales with the ratio while the motif fills the background.
func calcCentered(def *LayoutDefinition, geo Geometry) (map[string]ZoneRuntime, map[string]float64, error) {
	if err := requireZones(def, "headline_block"); err != nil {
		return nil, nil, err
	}
	zones := newRuntimeZones(def)

	gx, gy, gw, gh := overlayGroup(geo)

	relative := map[string]fracRect{
		"standort_block": {0.10, 0.05, 0.80, 0.08},
		"headline_block": {0.10, 0.15, 0.80, 0.15},
		"subline_block":  {0.15, 0.35, 0.70, 0.10},
		"benefits_block": {0.15, 0.50, 0.70, 0.25},
		"cta_block":      {0.25, 0.80, 0.50, 0.12},
		"company_block":  {0.25, 0.93, 0.50, 0.06},
	}
	for _, name := range def.ZoneNames() {
		r, ok := relative[name]
		if !ok {
			continue
		}
		z := zones[name]
		z.X = gx + r.X*gw
		z.Y = gy + r.Y*gh
		z.Width = r.W * gw
		z.Height = r.H * gh
		styleZone(&z, geo.Opacity)
		zones[name] = z
	}

	fillMotiv(zones, geo, "motiv_area")

	extras := map[string]float64{
		"group_x": gx, "group_y": gy,
		"group_width": gw, "group_height": gh,
	}
	return zones, extras, nil
}

// calcDiagonal strings the containers along a top-right to bottom-left axis.
// Partial overlap between neighbors is intentional here, not a defect.
func calcDiagonal(def *LayoutDefinition, geo Geometry) (map[string]ZoneRuntime, map[string]float64, error) {
	if err := requireZones(def, "headline_block"); err != nil {
		return nil, nil, err
	}
	zones := newRuntimeZones(def)

	table := map[string]fracRect{
		"standort_block": {0.65, 0.05, 0.30, 0.08},
		"headline_block": {0.45, 0.70, 0.40, 0.12},
		"subline_block":  {0.50, 0.80, 0.35, 0.10},
		"benefits_block": {0.55, 0.90, 0.30, 0.08},
		"company_block":  {0.35, 0.60, 0.30, 0.07},
		"cta_block":      {0.05, 0.85, 0.25, 0.12},
	}
	for _, name := range def.ZoneNames() {
		r, ok := table[name]
		if !ok {
			continue
		}
		z := zones[name]
		placeFrac(&z, geo, r)
		clampIntoCanvas(&z, geo, geo.scaleX(20))
		styleZone(&z, geo.Opacity)
		zones[name] = z
	}

	fillMotiv(zones, geo, "motiv_area")
	return zones, nil, nil
}

// calcAsymmetric sizes one dominant headline zone by the ratio and scales the
// remaining containers inversely: more motif means smaller containers.
func calcAsymmetric(def *LayoutDefinition, geo Geometry) (map[string]ZoneRuntime, map[string]float64, error) {
	if err := requireZones(def, "headline_block"); err != nil {
		return nil, nil, err
	}
	zones := newRuntimeZones(def)

	rf := float64(geo.Ratio) / 100
	// 30% ratio -> 1.4x containers, 70% -> 0.6x.
	scale := clampFloat(1.4-(rf-0.3)*2, 0.6, 1.4)

	table := map[string]fracRect{
		"standort_block":     {0.70, 0.05, 0.25, 0.06},
		"headline_block":     {0.30, 0.10, 0.56, 0.11},
		"subline_block":      {0.35, 0.22, 0.46, 0.07},
		"benefits_block":     {0.35, 0.32, 0.46, 0.14},
		"stellentitel_block": {0.50, 0.50, 0.28, 0.09},
		"company_block":      {0.50, 0.62, 0.28, 0.06},
		"cta_block":          {0.70, 0.85, 0.28, 0.09},
	}
	for _, name := range def.ZoneNames() {
		r, ok := table[name]
		if !ok {
			continue
		}
		z := zones[name]
		baseX := r.X * geo.Canvas.Width
		baseY := r.Y * geo.Canvas.Height
		baseW := r.W * geo.Canvas.Width
		baseH := r.H * geo.Canvas.Height

		z.Width = baseW * scale
		z.Height = baseH * scale
		z.X = baseX + (baseW-z.Width)/2
		z.Y = baseY + (baseH-z.Height)/2
		clampIntoCanvas(&z, geo, geo.scaleX(20))
		styleZone(&z, geo.Opacity)
		zones[name] = z
	}

	fillMotiv(zones, geo, "motiv_area")

	extras := map[string]float64{"container_scale": scale}
	return zones, extras, nil
}

// calcGrid arranges all container zones on an N x M grid inside the
// ratio-scaled group box, in sorted zone-name order.
func calcGrid(def *LayoutDefinition, geo Geometry) (map[string]ZoneRuntime, map[string]float64, error) {
	zones := newRuntimeZones(def)

	var cells []string
	for _, name := range def.ZoneNames() {
		if !isMotivZone(name, def.Zones[name]) {
			cells = append(cells, name)
		}
	}
	if len(cells) == 0 {
		return nil, nil, &GeometryError{LayoutType: def.LayoutType, Reason: "no container zones to place on grid"}
	}

	cols := int(math.Ceil(math.Sqrt(float64(len(cells)))))
	rows := (len(cells) + cols - 1) / cols

	gx, gy, gw, gh := overlayGroup(geo)
	gap := geo.scaleX(20)
	cellW := (gw - float64(cols-1)*gap) / float64(cols)
	cellH := (gh - float64(rows-1)*gap) / float64(rows)

	for i, name := range cells {
		col := i % cols
		row := i / cols
		z := zones[name]
		z.X = gx + float64(col)*(cellW+gap)
		z.Y = gy + float64(row)*(cellH+gap)
		z.Width = cellW
		z.Height = cellH
		styleZone(&z, geo.Opacity)
		zones[name] = z
	}

	fillMotiv(zones, geo, "motiv_area")

	extras := map[string]float64{
		"grid_columns": float64(cols),
		"grid_rows":    float64(rows),
	}
	return zones, extras, nil
}
