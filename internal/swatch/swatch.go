// SPDX-License-Identifier: MIT
package swatch

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Options fixes the geometry and decoration of a swatch image
type Options struct {
	Width   int
	Height  int
	Radius  float64
	Spacing float64

	Background  string
	StrokeColor string
	StrokeWidth float64

	LabelColor  string
	LabelSize   float64
	LabelOffset float64 // baseline distance below the circle edge

	Watermark       string
	WatermarkColor  string
	WatermarkSize   float64
	WatermarkOffset float64 // baseline distance from the bottom edge
}

// DefaultOptions returns the 800x400 layout used for downloads and shares
func DefaultOptions() Options {
	return Options{
		Width:   800,
		Height:  400,
		Radius:  60,
		Spacing: 120,

		Background:  "#ffffff",
		StrokeColor: "#e5e7eb",
		StrokeWidth: 3,

		LabelColor:  "#374151",
		LabelSize:   14,
		LabelOffset: 25,

		Watermark:       "Assembleia de Deus - Frutificando Vidas",
		WatermarkColor:  "rgba(0, 0, 0, 0.1)",
		WatermarkSize:   16,
		WatermarkOffset: 30,
	}
}

// Point is a circle center in canvas pixels
type Point struct {
	X, Y float64
}

// Layout centers n circles horizontally as a group on the middle row
func Layout(n int, o Options) []Point {
	if n <= 0 {
		return nil
	}
	startX := (float64(o.Width) - float64(n-1)*o.Spacing) / 2
	y := float64(o.Height) / 2

	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: startX + float64(i)*o.Spacing, Y: y}
	}
	return points
}

// Label is the caption drawn under a swatch
func Label(color string) string {
	return cases.Upper(language.Und).String(color)
}

// Render paints colors onto s: background, then one stroked circle and
// label per color, then the watermark. Unparseable colors are handed to the
// surface as-is; what they look like is up to the surface.
func Render(s Surface, colors []string, o Options) error {
	w, h := float64(o.Width), float64(o.Height)

	s.SetFill(o.Background)
	if err := s.FillRect(0, 0, w, h); err != nil {
		return fmt.Errorf("failed to paint background: %w", err)
	}

	for i, p := range Layout(len(colors), o) {
		s.Circle(p.X, p.Y, o.Radius)

		s.SetFill(colors[i])
		if err := s.Fill(); err != nil {
			return fmt.Errorf("failed to fill swatch %d: %w", i+1, err)
		}

		s.SetStroke(o.StrokeColor, o.StrokeWidth)
		if err := s.Stroke(); err != nil {
			return fmt.Errorf("failed to stroke swatch %d: %w", i+1, err)
		}

		s.SetFill(o.LabelColor)
		if err := s.FillText(Label(colors[i]), p.X, p.Y+o.Radius+o.LabelOffset, o.LabelSize); err != nil {
			return fmt.Errorf("failed to draw label %d: %w", i+1, err)
		}
	}

	if o.Watermark != "" {
		s.SetFill(o.WatermarkColor)
		if err := s.FillText(o.Watermark, w/2, h-o.WatermarkOffset, o.WatermarkSize); err != nil {
			return fmt.Errorf("failed to draw watermark: %w", err)
		}
	}

	return nil
}
