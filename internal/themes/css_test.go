// SPDX-License-Identifier: MIT
package themes

import (
	"strings"
	"testing"
)

func TestGenerateCSSForEveryPreset(t *testing.T) {
	vars := []string{
		"--color-primary",
		"--color-primary-contrast",
		"--color-secondary",
		"--color-bg",
		"--color-surface",
		"--color-text",
		"--color-text-muted",
		"--color-border",
	}

	for _, name := range ListPalettes() {
		for _, dark := range []bool{false, true} {
			colors := GenerateColors(GetPalette(name.Name), dark)
			css := GenerateCSS(colors)

			if !strings.HasPrefix(css, ":root {") {
				t.Errorf("%s (dark=%v): CSS should open with :root", name.Name, dark)
			}
			for _, v := range vars {
				if !strings.Contains(css, v+": ") {
					t.Errorf("%s (dark=%v): CSS missing %s", name.Name, dark, v)
				}
			}
			if !strings.Contains(css, "--color-primary: "+colors.Primary+";") {
				t.Errorf("%s (dark=%v): primary %s not used", name.Name, dark, colors.Primary)
			}
			if strings.Contains(css, "%!") {
				t.Errorf("%s (dark=%v): CSS contains a formatting error", name.Name, dark)
			}
		}
	}
}

func TestCSSGenerationLightVsDark(t *testing.T) {
	palette := GetPalette("frutificando")

	light := GenerateCSS(GenerateColors(palette, false))
	dark := GenerateCSS(GenerateColors(palette, true))

	if light == dark {
		t.Fatal("Light and dark CSS should be different")
	}
}

func TestGeneratedCSSStylesSwatches(t *testing.T) {
	css := GenerateCSS(GenerateColors(GetPalette("blue-mono"), false))

	for _, class := range []string{".swatch", ".preview", ".color-row", ".btn-share"} {
		if !strings.Contains(css, class) {
			t.Errorf("CSS missing %s rule", class)
		}
	}
	if !strings.Contains(css, "border-radius: 50%;") {
		t.Error("swatch should be rendered as a circle")
	}
}

func TestGenerateSchemeCSSAddsDarkOverride(t *testing.T) {
	palette := GetPalette("blue-mono")
	light := GenerateColors(palette, false)
	dark := GenerateColors(palette, true)

	css := GenerateSchemeCSS(light, dark)

	if !strings.HasPrefix(css, GenerateCSS(light)) {
		t.Error("scheme CSS should start with the light stylesheet")
	}
	i := strings.Index(css, "@media (prefers-color-scheme: dark) {")
	if i < 0 {
		t.Fatal("missing prefers-color-scheme block")
	}
	if !strings.Contains(css[i:], "--color-bg: "+dark.Background+";") {
		t.Errorf("dark block should set background %s", dark.Background)
	}
	if strings.Count(css, "{") != strings.Count(css, "}") {
		t.Error("unbalanced braces")
	}
}
