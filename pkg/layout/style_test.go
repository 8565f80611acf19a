package layout

import "testing"

func TestClampRatio(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{10, 30},
		{29, 30},
		{30, 30},
		{50, 50},
		{70, 70},
		{71, 70},
		{95, 70},
		{-5, 30},
	}

	for _, tt := range tests {
		if got := ClampRatio(tt.in); got != tt.want {
			t.Errorf("ClampRatio(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestResolveOpacity(t *testing.T) {
	tests := []struct {
		pct  int
		want float64
	}{
		{0, 0.1},
		{5, 0.1},
		{10, 0.1},
		{60, 0.6},
		{100, 1.0},
		{150, 1.0}, // out-of-range input is corrected
		{-20, 0.1},
	}

	for _, tt := range tests {
		if got := ResolveOpacity(tt.pct); got != tt.want {
			t.Errorf("ResolveOpacity(%d) = %v, want %v", tt.pct, got, tt.want)
		}
	}
}

func TestNewContainerStyleShape(t *testing.T) {
	s := NewContainerStyle(0.6)

	if s.BackgroundColor != "#FFFFFF" {
		t.Errorf("BackgroundColor = %q, want solid white", s.BackgroundColor)
	}
	if s.BackgroundOpacity != 0.6 {
		t.Errorf("BackgroundOpacity = %v, want 0.6", s.BackgroundOpacity)
	}
	if s.BorderRadius != 16 {
		t.Errorf("BorderRadius = %d, want 16", s.BorderRadius)
	}
	if s.Shadow == "" {
		t.Error("Shadow should be the constant drop shadow")
	}
	if s.Border != "none" || s.Outline != "none" {
		t.Errorf("Border/Outline = %q/%q, want none/none", s.Border, s.Outline)
	}
}

func TestStyleZoneMirrors(t *testing.T) {
	z := ZoneRuntime{}
	styleZone(&z, 0.42)

	if z.ContainerStyle == nil {
		t.Fatal("styled zone should carry a container style")
	}
	if z.Opacity != z.ContainerStyle.BackgroundOpacity || z.Alpha != z.ContainerStyle.BackgroundOpacity {
		t.Errorf("opacity mirrors diverged: opacity=%v alpha=%v background_opacity=%v",
			z.Opacity, z.Alpha, z.ContainerStyle.BackgroundOpacity)
	}
}
