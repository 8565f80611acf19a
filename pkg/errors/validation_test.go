package errors

import (
	"testing"
)

func TestValidateLayoutID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "recruiting_classic", false},
		{"valid with dash", "summer-campaign", false},
		{"valid with dot", "campaign.v2", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 300)), true},
		{"path traversal ..", "foo/../bar", true},
		{"path traversal //", "foo//bar", true},
		{"null byte", "foo\x00bar", true},
		{"backslash", "foo\\bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLayoutID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLayoutID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLayoutType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"known type", "dynamic_vertical_split_layout", false},
		{"unknown but well formed", "dynamic_future_layout", false},
		{"empty", "", true},
		{"uppercase", "DynamicSplit", true},
		{"leading digit", "1layout", true},
		{"spaces", "vertical split", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLayoutType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLayoutType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTemplateFilename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid yaml", "vertical_split.yaml", false},
		{"valid yml", "hero.yml", false},
		{"empty", "", true},
		{"path separator", "dir/file.yaml", true},
		{"backslash", "dir\\file.yaml", true},
		{"hidden file", ".hidden.yaml", true},
		{"wrong extension", "layout.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTemplateFilename(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTemplateFilename(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid relative", "templates/hero.yaml", false},
		{"valid nested", "a/b/c.yml", false},
		{"empty", "", true},
		{"absolute", "/etc/passwd", true},
		{"traversal", "templates/../../etc", true},
		{"backslash", "templates\\hero.yaml", true},
		{"null byte", "foo\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRatio(t *testing.T) {
	tests := []struct {
		ratio   int
		wantErr bool
	}{
		{30, false},
		{50, false},
		{70, false},
		{29, true},
		{71, true},
		{0, true},
		{-10, true},
	}

	for _, tt := range tests {
		err := ValidateRatio(tt.ratio)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateRatio(%d) error = %v, wantErr %v", tt.ratio, err, tt.wantErr)
		}
	}
}

func TestValidateTransparency(t *testing.T) {
	tests := []struct {
		pct     int
		wantErr bool
	}{
		{0, false},
		{60, false},
		{100, false},
		{-1, true},
		{101, true},
	}

	for _, tt := range tests {
		err := ValidateTransparency(tt.pct)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateTransparency(%d) error = %v, wantErr %v", tt.pct, err, tt.wantErr)
		}
	}
}

func TestValidateHexColor(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"#FFFFFF", false},
		{"#1a2b3c", false},
		{"#abc", false},
		{"", true},
		{"FFFFFF", true},
		{"#GGGGGG", true},
		{"#12345", true},
	}

	for _, tt := range tests {
		err := ValidateHexColor(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}
