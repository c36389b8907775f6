// SPDX-License-Identifier: MIT
package swatch

import "io"

// Surface is a 2D drawing target in the style of an HTML canvas.
//
// SetFill and SetStroke take color strings; a surface that cannot parse one
// keeps its previous style, the same way a canvas ignores a bad fillStyle.
// Circle starts a new path, so Fill and Stroke that follow apply to it and
// do not clear it.
type Surface interface {
	SetFill(color string)
	SetStroke(color string, width float64)

	FillRect(x, y, w, h float64) error
	Circle(x, y, r float64)
	Fill() error
	Stroke() error

	// FillText draws s horizontally centered on x with its baseline at y
	FillText(s string, x, y, size float64) error

	// Encode writes the surface as a PNG image
	Encode(w io.Writer) error
}
