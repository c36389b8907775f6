// SPDX-License-Identifier: MIT
package themes

import "github.com/lucasb-eyer/go-colorful"

// Colors represents all generated colors for the page theme
type Colors struct {
	Primary         string // Main brand color
	PrimaryContrast string // Text drawn on top of Primary
	Secondary       string // Accent/highlight color
	Background      string // Page background
	Surface         string // Card/container background
	Text            string // Main text color
	TextMuted       string // Secondary/muted text
	Border          string // Border/divider color
	Success         string // Share button color
	Error           string // Error state color
	Warning         string // Warning state color
}

// GenerateColors generates full color set from palette for light or dark mode
func GenerateColors(palette *Palette, darkMode bool) *Colors {
	if darkMode {
		return generateDarkColors(palette)
	}
	return generateLightColors(palette)
}

// generateLightColors creates colors for light mode
func generateLightColors(palette *Palette) *Colors {
	return &Colors{
		Primary:         palette.Primary(),
		PrimaryContrast: ContrastText(palette.Primary()),
		Secondary:       palette.Secondary(),
		Background:      "#f9fafb",
		Surface:         "#ffffff",
		Text:            "#111827",
		TextMuted:       "#6b7280",
		Border:          "#e5e7eb",
		Success:         "#16a34a",
		Error:           "#ef4444",
		Warning:         "#f59e0b",
	}
}

// generateDarkColors creates colors for dark mode
func generateDarkColors(palette *Palette) *Colors {
	return &Colors{
		Primary:         "#f1f5f9", // Light version of primary
		PrimaryContrast: "#0f172a",
		Secondary:       "#e2e8f0", // Light version of secondary
		Background:      "#0f172a",
		Surface:         "#1e293b",
		Text:            "#f1f5f9",
		TextMuted:       "#94a3b8",
		Border:          "#334155",
		Success:         "#22c55e",
		Error:           "#ef4444",
		Warning:         "#f59e0b",
	}
}

// ContrastText picks black or white text for a background color.
// Unparseable colors get black.
func ContrastText(background string) string {
	c, err := colorful.Hex(background)
	if err != nil {
		return "#000000"
	}
	// Lightness in CIE L*a*b*, 0..1
	l, _, _ := c.Lab()
	if l < 0.6 {
		return "#ffffff"
	}
	return "#000000"
}
