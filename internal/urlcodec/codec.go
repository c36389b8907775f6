// SPDX-License-Identifier: MIT
package urlcodec

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/thatcatcamp/paleta/internal/palette"
)

// ParamPrefix is the query key prefix; keys are color1..color5
const ParamPrefix = "color"

// Param returns the query key for a zero-based palette index
func Param(index int) string {
	return fmt.Sprintf("%s%d", ParamPrefix, index+1)
}

// Encode serializes colors as color1=..&color2=.. in palette order.
// Values are percent-encoded, so "#FF0000" becomes "%23FF0000".
func Encode(colors []string) string {
	var b strings.Builder
	for i, color := range colors {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(Param(i))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(color))
	}
	return b.String()
}

// Decode collects color1..color5 in index order.
// Missing or empty indexes are skipped rather than rejected, so a link with
// only color1 and color3 restores a two-color palette.
// ok is false when no color parameter was present.
func Decode(query url.Values) (colors []string, ok bool) {
	for i := 0; i < palette.MaxColors; i++ {
		if color := query.Get(Param(i)); color != "" {
			colors = append(colors, color)
		}
	}
	return colors, len(colors) > 0
}

// ParseQuery parses a raw query string, keeping every well-formed pair even
// when others fail to decode.
func ParseQuery(raw string) url.Values {
	raw = strings.TrimPrefix(raw, "?")
	values, _ := url.ParseQuery(raw)
	if values == nil {
		values = url.Values{}
	}
	return values
}

// Restore replaces p with the colors found in query.
// When the query carries no colors p is left as it was.
func Restore(p *palette.Palette, query url.Values) bool {
	colors, ok := Decode(query)
	if !ok {
		return false
	}
	return p.Replace(colors)
}

// Link joins base (origin and path) with the encoded palette.
// Any query or fragment already on base is dropped.
func Link(base string, colors []string) string {
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}
	return base + "?" + Encode(colors)
}
