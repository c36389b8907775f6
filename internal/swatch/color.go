// SPDX-License-Identifier: MIT
package swatch

import (
	"errors"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var ErrInvalidColor = errors.New("invalid color")

// cssExtraNames are CSS Color 4 keywords missing from the SVG 1.1 list in
// colornames
var cssExtraNames = map[string]color.NRGBA{
	"rebeccapurple": {R: 0x66, G: 0x33, B: 0x99, A: 0xff},
}

// ParseColor understands the color strings a canvas fill style accepts in
// practice: #RGB, #RGBA, #RRGGBB, #RRGGBBAA, rgb()/rgba(), CSS color names
// and "transparent".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.NRGBA{}, ErrInvalidColor
	}

	lower := strings.ToLower(s)
	switch {
	case lower[0] == '#':
		return parseHex(lower)
	case strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba("):
		return parseFunctional(lower)
	case lower == "transparent":
		return color.NRGBA{}, nil
	}

	if extra, ok := cssExtraNames[lower]; ok {
		return extra, nil
	}
	named, ok := colornames.Map[lower]
	if !ok {
		return color.NRGBA{}, ErrInvalidColor
	}
	return color.NRGBA{R: named.R, G: named.G, B: named.B, A: 0xff}, nil
}

func parseHex(s string) (color.NRGBA, error) {
	switch len(s) {
	case 4, 7: // #rgb, #rrggbb
		c, err := colorful.Hex(s)
		if err != nil {
			return color.NRGBA{}, ErrInvalidColor
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
	case 5: // #rgba, each nibble doubled
		v, err := strconv.ParseUint(s[1:], 16, 16)
		if err != nil {
			return color.NRGBA{}, ErrInvalidColor
		}
		nib := func(shift uint) uint8 { return uint8((v>>shift)&0xf) * 17 }
		return color.NRGBA{R: nib(12), G: nib(8), B: nib(4), A: nib(0)}, nil
	case 9: // #rrggbbaa
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return color.NRGBA{}, ErrInvalidColor
		}
		return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
	}
	return color.NRGBA{}, ErrInvalidColor
}

// parseFunctional handles rgb(r, g, b) and rgba(r, g, b, a) with integer
// channels and a 0..1 alpha.
func parseFunctional(s string) (color.NRGBA, error) {
	open := strings.IndexByte(s, '(')
	if !strings.HasSuffix(s, ")") {
		return color.NRGBA{}, ErrInvalidColor
	}
	parts := strings.Split(s[open+1:len(s)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.NRGBA{}, ErrInvalidColor
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return color.NRGBA{}, ErrInvalidColor
		}
		ch[i] = uint8(n)
	}

	alpha := uint8(0xff)
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return color.NRGBA{}, ErrInvalidColor
		}
		alpha = uint8(a*255 + 0.5)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: alpha}, nil
}
