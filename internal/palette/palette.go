// SPDX-License-Identifier: MIT
package palette

const (
	// MinColors is the smallest palette the tool will hold
	MinColors = 1
	// MaxColors is the largest palette the tool will hold
	MaxColors = 5

	// DefaultColor seeds a fresh palette
	DefaultColor = "#3B82F6"
	// NewColor is appended by Add when the caller has no color in mind
	NewColor = "#000000"
)

// Palette is an ordered list of 1 to 5 colors.
// Colors are opaque strings and are never validated here.
type Palette struct {
	colors      []string
	subscribers map[int]func([]string)
	nextID      int
}

// New returns the single-color default palette
func New() *Palette {
	return &Palette{colors: []string{DefaultColor}}
}

// FromColors builds a palette from restored colors.
// Entries beyond MaxColors are dropped; an empty list yields the default palette.
func FromColors(colors []string) *Palette {
	if len(colors) == 0 {
		return New()
	}
	if len(colors) > MaxColors {
		colors = colors[:MaxColors]
	}
	cp := make([]string, len(colors))
	copy(cp, colors)
	return &Palette{colors: cp}
}

// Len returns the number of colors
func (p *Palette) Len() int {
	return len(p.colors)
}

// At returns the color at index, or "" when out of range
func (p *Palette) At(index int) string {
	if index < 0 || index >= len(p.colors) {
		return ""
	}
	return p.colors[index]
}

// Colors returns a copy of the current colors
func (p *Palette) Colors() []string {
	cp := make([]string, len(p.colors))
	copy(cp, p.colors)
	return cp
}

// CanAdd reports whether Add would change the palette
func (p *Palette) CanAdd() bool {
	return len(p.colors) < MaxColors
}

// CanRemove reports whether Remove would change the palette
func (p *Palette) CanRemove() bool {
	return len(p.colors) > MinColors
}

// Add appends a color. It is a no-op when the palette is full.
func (p *Palette) Add(color string) bool {
	if !p.CanAdd() {
		return false
	}
	p.colors = append(p.colors, color)
	p.notify()
	return true
}

// Remove deletes the color at index, keeping the order of the others.
// It is a no-op on a single-color palette or an out of range index.
func (p *Palette) Remove(index int) bool {
	if !p.CanRemove() || index < 0 || index >= len(p.colors) {
		return false
	}
	next := make([]string, 0, len(p.colors)-1)
	next = append(next, p.colors[:index]...)
	next = append(next, p.colors[index+1:]...)
	p.colors = next
	p.notify()
	return true
}

// Set replaces the color at index. Out of range indexes are ignored.
func (p *Palette) Set(index int, color string) bool {
	if index < 0 || index >= len(p.colors) {
		return false
	}
	p.colors[index] = color
	p.notify()
	return true
}

// Replace swaps in a whole new set of colors, as when state is restored
// from a shared link. Empty input is ignored.
func (p *Palette) Replace(colors []string) bool {
	if len(colors) == 0 {
		return false
	}
	p.colors = FromColors(colors).colors
	p.notify()
	return true
}

// Subscribe registers fn to run after every successful mutation.
// The returned func removes the subscription.
func (p *Palette) Subscribe(fn func(colors []string)) (cancel func()) {
	if p.subscribers == nil {
		p.subscribers = make(map[int]func([]string))
	}
	id := p.nextID
	p.nextID++
	p.subscribers[id] = fn
	return func() {
		delete(p.subscribers, id)
	}
}

func (p *Palette) notify() {
	if len(p.subscribers) == 0 {
		return
	}
	// Subscribers fire in registration order
	for id := 0; id < p.nextID; id++ {
		if fn, ok := p.subscribers[id]; ok {
			fn(p.Colors())
		}
	}
}
