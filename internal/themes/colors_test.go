// SPDX-License-Identifier: MIT
package themes

import (
	"strings"
	"testing"
)

func TestPaletteExists(t *testing.T) {
	palette := GetPalette("frutificando")
	if palette == nil {
		t.Fatal("frutificando palette not found")
	}
	if palette.Primary() != "#3B82F6" {
		t.Errorf("expected frutificando to lead with #3B82F6, got %s", palette.Primary())
	}
}

func TestGetPaletteReturnsCopy(t *testing.T) {
	p := GetPalette("slate")
	p.Colors[0] = "#000000"
	if GetPalette("slate").Primary() == "#000000" {
		t.Error("mutating a returned palette changed the preset")
	}
}

func TestPresetSizes(t *testing.T) {
	for _, p := range ListPalettes() {
		if len(p.Colors) < 1 || len(p.Colors) > 5 {
			t.Errorf("%s has %d colors, want 1..5", p.Name, len(p.Colors))
		}
	}
}

func TestGenerateLightModeColors(t *testing.T) {
	palette := GetPalette("slate")
	colors := GenerateColors(palette, false) // false = light mode

	if colors.Primary == "" {
		t.Fatal("Primary color not generated")
	}
	if colors.Background == "" {
		t.Fatal("Background color not generated")
	}
	if colors.Text == "" {
		t.Fatal("Text color not generated")
	}
}

func TestGenerateDarkModeColors(t *testing.T) {
	palette := GetPalette("slate")
	colors := GenerateColors(palette, true) // true = dark mode

	if colors.Primary == "" {
		t.Fatal("Primary color not generated")
	}
	if colors.Background == "" {
		t.Fatal("Background color not generated")
	}
}

func TestListPalettes(t *testing.T) {
	palettes := ListPalettes()
	if len(palettes) != len(presetOrder) {
		t.Errorf("expected %d palettes, got %d", len(presetOrder), len(palettes))
	}
}

func TestPaletteNamesUnique(t *testing.T) {
	palettes := ListPalettes()
	names := make(map[string]bool)
	for _, p := range palettes {
		if names[p.Name] {
			t.Errorf("duplicate palette name: %s", p.Name)
		}
		names[p.Name] = true
	}
}

func TestPresetColorsAreHex(t *testing.T) {
	for _, p := range ListPalettes() {
		for _, color := range p.Colors {
			if !strings.HasPrefix(color, "#") || len(color) != 7 {
				t.Errorf("%s: invalid hex color %s", p.Name, color)
			}
		}
	}
}

func TestContrastText(t *testing.T) {
	tests := []struct {
		bg   string
		want string
	}{
		{"#3B82F6", "#ffffff"},
		{"#000080", "#ffffff"},
		{"#FBBF24", "#000000"},
		{"#FFFFFF", "#000000"},
		{"garbage", "#000000"},
	}

	for _, tt := range tests {
		if got := ContrastText(tt.bg); got != tt.want {
			t.Errorf("ContrastText(%s) = %s, want %s", tt.bg, got, tt.want)
		}
	}
}
