// SPDX-License-Identifier: MIT
package themes

// Palette is a named starter palette a user can load instead of picking
// colors one by one
type Palette struct {
	Name   string   // "frutificando", "indigo", etc.
	Colors []string // 1 to 5 hex colors #RRGGBB, first is the primary
}

// Primary returns the palette's lead color
func (p *Palette) Primary() string {
	return p.Colors[0]
}

// Secondary returns the second color, or the primary for one-color palettes
func (p *Palette) Secondary() string {
	if len(p.Colors) > 1 {
		return p.Colors[1]
	}
	return p.Colors[0]
}

var presets = map[string]*Palette{
	"frutificando": {
		Name:   "frutificando",
		Colors: []string{"#3B82F6", "#1E40AF", "#F59E0B", "#16A34A", "#FFFFFF"},
	},
	"slate": {
		Name:   "slate",
		Colors: []string{"#64748B", "#0F172A", "#CBD5E1"},
	},
	"indigo": {
		Name:   "indigo",
		Colors: []string{"#4F46E5", "#F97316", "#EEF2FF"},
	},
	"rose": {
		Name:   "rose",
		Colors: []string{"#E11D48", "#64748B", "#FFE4E6"},
	},
	"emerald": {
		Name:   "emerald",
		Colors: []string{"#059669", "#F59E0B", "#D1FAE5"},
	},
	"navy": {
		Name:   "navy",
		Colors: []string{"#000080", "#FBBF24"},
	},
	"purple": {
		Name:   "purple",
		Colors: []string{"#A855F7", "#EC4899", "#FDF4FF"},
	},
	"teal": {
		Name:   "teal",
		Colors: []string{"#14B8A6", "#F87171"},
	},
	"amber": {
		Name:   "amber",
		Colors: []string{"#F59E0B", "#6366F1"},
	},
	"blue-mono": {
		Name:   "blue-mono",
		Colors: []string{"#3B82F6", "#1E40AF", "#93C5FD", "#DBEAFE", "#172554"},
	},
	"green-mono": {
		Name:   "green-mono",
		Colors: []string{"#22C55E", "#16A34A", "#86EFAC", "#DCFCE7", "#052E16"},
	},
	"neutral": {
		Name:   "neutral",
		Colors: []string{"#6B7280", "#4B5563", "#D1D5DB", "#F9FAFB", "#111827"},
	},
}

var presetOrder = []string{
	"frutificando", "slate", "indigo", "rose", "emerald", "navy",
	"purple", "teal", "amber", "blue-mono", "green-mono", "neutral",
}

// GetPalette returns a copy of the preset called name, or nil
func GetPalette(name string) *Palette {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	colors := make([]string, len(p.Colors))
	copy(colors, p.Colors)
	return &Palette{Name: p.Name, Colors: colors}
}

// ListPalettes returns all presets in display order
func ListPalettes() []*Palette {
	var palettes []*Palette
	for _, name := range presetOrder {
		if p := GetPalette(name); p != nil {
			palettes = append(palettes, p)
		}
	}
	return palettes
}
