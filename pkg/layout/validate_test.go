package layout

import (
	"strings"
	"testing"
)

func textZone(x, y, w, h float64) ZoneSpec {
	return ZoneSpec{X: x, Y: y, Width: w, Height: h, ContentType: ContentText}
}

func minimalistDef(zones map[string]ZoneSpec) *LayoutDefinition {
	return &LayoutDefinition{
		LayoutID:   "test_minimalist",
		LayoutType: TypeMinimalist,
		Canvas:     Canvas{Width: 1080, Height: 1080},
		Zones:      zones,
	}
}

func TestValidateMissingRequired(t *testing.T) {
	def := minimalistDef(map[string]ZoneSpec{
		"headline_block": textZone(40, 40, 400, 80),
		// subline_block missing
	})

	res := Validate(DefaultRegistry(), def)

	if len(res.Errors) != 1 {
		t.Fatalf("errors = %v, want exactly one missing-required error", res.Errors)
	}
	if !strings.Contains(res.Errors[0], "subline_block") {
		t.Errorf("error should name the offending zone: %q", res.Errors[0])
	}
	if len(res.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", res.Warnings)
	}

	// Strict mode reports the same errors; it never escalates warnings.
	if errs := ValidateStrict(DefaultRegistry(), def); len(errs) != 1 {
		t.Errorf("ValidateStrict errors = %v, want the same single error", errs)
	}
}

func TestValidateAbsentOptionalIsSilent(t *testing.T) {
	// A minimalist layout without benefits_block. The zone is
	// neither required nor present, so neither list gains an entry.
	def := minimalistDef(map[string]ZoneSpec{
		"headline_block": textZone(40, 40, 400, 80),
		"subline_block":  textZone(40, 140, 400, 80),
	})

	res := Validate(DefaultRegistry(), def)

	if len(res.Errors) != 0 || len(res.Warnings) != 0 {
		t.Errorf("errors = %v, warnings = %v; want both empty", res.Errors, res.Warnings)
	}
	if !res.OK() {
		t.Error("result should be OK")
	}
}

func TestValidateUnexpectedZoneIsWarning(t *testing.T) {
	// An extra zone is a warning, never an error, in both modes.
	def := minimalistDef(map[string]ZoneSpec{
		"headline_block":   textZone(40, 40, 400, 80),
		"subline_block":    textZone(40, 140, 400, 80),
		"unexpected_panel": textZone(40, 240, 400, 80),
	})

	res := Validate(DefaultRegistry(), def)

	if len(res.Errors) != 0 {
		t.Errorf("errors = %v, want none", res.Errors)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "unexpected_panel") {
		t.Errorf("warnings = %v, want exactly one naming unexpected_panel", res.Warnings)
	}
	if errs := ValidateStrict(DefaultRegistry(), def); len(errs) != 0 {
		t.Errorf("strict mode escalated a warning: %v", errs)
	}
}

func TestValidateDeterministicOrdering(t *testing.T) {
	def := minimalistDef(map[string]ZoneSpec{
		"zz_panel":       textZone(0, 0, 10, 10),
		"aa_panel":       textZone(0, 0, 10, 10),
		"headline_block": textZone(40, 40, 400, 80),
		"subline_block":  textZone(40, 140, 400, 80),
	})

	first := Validate(DefaultRegistry(), def)
	for i := 0; i < 10; i++ {
		again := Validate(DefaultRegistry(), def)
		for j := range first.Warnings {
			if again.Warnings[j] != first.Warnings[j] {
				t.Fatalf("warning order changed between runs: %v vs %v", first.Warnings, again.Warnings)
			}
		}
	}
	if !strings.Contains(first.Warnings[0], "aa_panel") {
		t.Errorf("warnings should be sorted by zone name, got %v", first.Warnings)
	}
}
