// SPDX-License-Identifier: MIT
package view

import (
	"errors"
	"fmt"
	"io"

	"github.com/thatcatcamp/paleta/internal/export"
	"github.com/thatcatcamp/paleta/internal/palette"
	"github.com/thatcatcamp/paleta/internal/urlcodec"
)

// ErrNotRendered is returned by Download before a swatch was generated
var ErrNotRendered = errors.New("no rendered swatch")

// State is where the view is in the edit/generate cycle
type State int

const (
	// Editing means the shown image, if any, no longer matches the palette
	Editing State = iota
	// Rendered means a swatch for the current palette is available
	Rendered
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Rendered:
		return "rendered"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Renderer turns a palette into an encoded image
type Renderer interface {
	Render(colors []string) ([]byte, error)
}

// View binds user actions to a palette, keeps the address in sync and
// tracks the generated swatch.
type View struct {
	palette  *palette.Palette
	address  urlcodec.AddressStore
	renderer Renderer

	state State
	image *export.Image
}

// New creates a view over the default palette.
// Call Load to restore colors from the address.
func New(address urlcodec.AddressStore, renderer Renderer) *View {
	v := &View{
		palette:  palette.New(),
		address:  address,
		renderer: renderer,
	}
	v.palette.Subscribe(v.onChange)
	return v
}

// Load restores the palette from the address, once, at startup.
// Without color parameters the default palette is kept.
func (v *View) Load() bool {
	return urlcodec.Restore(v.palette, v.address.Query())
}

// onChange runs after every palette mutation
func (v *View) onChange(colors []string) {
	v.address.Replace(urlcodec.Encode(colors))
	v.state = Editing
}

// Sync writes the current palette to the address without changing state
func (v *View) Sync() {
	v.address.Replace(urlcodec.Encode(v.palette.Colors()))
}

func (v *View) Colors() []string   { return v.palette.Colors() }
func (v *View) Color(i int) string { return v.palette.At(i) }
func (v *View) State() State       { return v.state }
func (v *View) CanAdd() bool       { return v.palette.CanAdd() }
func (v *View) CanRemove() bool    { return v.palette.CanRemove() }

// CanDownload reports whether a swatch is ready
func (v *View) CanDownload() bool {
	return v.state == Rendered && v.image != nil
}

// Image returns the last generated swatch, possibly stale while Editing
func (v *View) Image() *export.Image {
	return v.image
}

// Add appends a new black color when the palette has room
func (v *View) Add() bool {
	return v.palette.Add(palette.NewColor)
}

// Remove drops the color at index when more than one is left
func (v *View) Remove(index int) bool {
	return v.palette.Remove(index)
}

// Set changes the color at index
func (v *View) Set(index int, color string) bool {
	return v.palette.Set(index, color)
}

// Replace loads a whole palette at once, as when picking a preset
func (v *View) Replace(colors []string) bool {
	return v.palette.Replace(colors)
}

// Generate renders the current palette and moves to Rendered.
// On failure the previous image is discarded and the view stays Editing.
func (v *View) Generate() (*export.Image, error) {
	data, err := v.renderer.Render(v.palette.Colors())
	if err != nil {
		v.image = nil
		v.state = Editing
		return nil, fmt.Errorf("failed to render swatch: %w", err)
	}
	v.image = &export.Image{PNG: data}
	v.state = Rendered
	return v.image, nil
}

// Download writes the generated swatch to w
func (v *View) Download(w io.Writer) error {
	if !v.CanDownload() {
		return ErrNotRendered
	}
	return export.Download(w, v.image)
}

// ShareLink builds the messaging link for the live palette.
// It does not depend on a generated image.
func (v *View) ShareLink(base string, cfg export.ShareConfig) string {
	return export.ShareLink(base, v.palette.Colors(), cfg)
}
