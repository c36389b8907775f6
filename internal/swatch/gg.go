// SPDX-License-Identifier: MIT
package swatch

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

// labelFont returns the shared Go Regular font source
func labelFont() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
	})
	return fontSource, fontErr
}

// GGSurface draws with the gg software rasterizer
type GGSurface struct {
	dc          *gg.Context
	font        *text.FontSource
	faces       map[float64]text.Face
	fill        color.NRGBA
	stroke      color.NRGBA
	strokeWidth float64
}

// NewGGSurface creates a width x height surface.
// Styles start as opaque black with a 1px stroke.
func NewGGSurface(width, height int) (*GGSurface, error) {
	font, err := labelFont()
	if err != nil {
		return nil, fmt.Errorf("failed to load label font: %w", err)
	}
	black := color.NRGBA{A: 0xff}
	return &GGSurface{
		dc:          gg.NewContext(width, height),
		font:        font,
		faces:       make(map[float64]text.Face),
		fill:        black,
		stroke:      black,
		strokeWidth: 1,
	}, nil
}

// Close releases the drawing context
func (s *GGSurface) Close() error {
	return s.dc.Close()
}

func (s *GGSurface) SetFill(c string) {
	if col, err := ParseColor(c); err == nil {
		s.fill = col
	}
}

func (s *GGSurface) SetStroke(c string, width float64) {
	if col, err := ParseColor(c); err == nil {
		s.stroke = col
	}
	if width > 0 {
		s.strokeWidth = width
	}
}

func (s *GGSurface) FillRect(x, y, w, h float64) error {
	s.dc.ClearPath()
	s.dc.DrawRectangle(x, y, w, h)
	s.use(s.fill)
	return s.dc.Fill()
}

func (s *GGSurface) Circle(x, y, r float64) {
	s.dc.ClearPath()
	s.dc.DrawCircle(x, y, r)
}

func (s *GGSurface) Fill() error {
	s.use(s.fill)
	return s.dc.FillPreserve()
}

func (s *GGSurface) Stroke() error {
	s.use(s.stroke)
	s.dc.SetLineWidth(s.strokeWidth)
	return s.dc.StrokePreserve()
}

func (s *GGSurface) FillText(str string, x, y, size float64) error {
	face, ok := s.faces[size]
	if !ok {
		face = s.font.Face(size)
		s.faces[size] = face
	}
	s.dc.SetFont(face)
	s.use(s.fill)

	w, _ := s.dc.MeasureString(str)
	s.dc.DrawString(str, x-w/2, y)
	return nil
}

func (s *GGSurface) Encode(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// use sets the context brush from a non-premultiplied color
func (s *GGSurface) use(c color.NRGBA) {
	s.dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
}

// PNGRenderer renders palettes to PNG bytes with fixed options
type PNGRenderer struct {
	Options Options
}

// NewPNGRenderer returns a renderer using o
func NewPNGRenderer(o Options) *PNGRenderer {
	return &PNGRenderer{Options: o}
}

// Render draws colors on a fresh surface and returns the encoded PNG.
// Identical input yields identical bytes.
func (r *PNGRenderer) Render(colors []string) ([]byte, error) {
	surface, err := NewGGSurface(r.Options.Width, r.Options.Height)
	if err != nil {
		return nil, err
	}
	defer surface.Close()

	if err := Render(surface, colors, r.Options); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := surface.Encode(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}
	return buf.Bytes(), nil
}
