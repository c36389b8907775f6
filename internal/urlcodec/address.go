// SPDX-License-Identifier: MIT
package urlcodec

import "net/url"

// AddressStore is the page address seen as a key-value store.
// Writes replace the current address; they never push a history entry.
type AddressStore interface {
	Query() url.Values
	Replace(rawQuery string)
}

// MemoryAddress is an AddressStore held in memory.
// It backs the CLI and tests.
type MemoryAddress struct {
	raw      string
	replaces int
}

// NewMemoryAddress starts with the given raw query
func NewMemoryAddress(rawQuery string) *MemoryAddress {
	return &MemoryAddress{raw: rawQuery}
}

// Query returns the parsed current query
func (m *MemoryAddress) Query() url.Values {
	return ParseQuery(m.raw)
}

// Replace overwrites the current query
func (m *MemoryAddress) Replace(rawQuery string) {
	m.raw = rawQuery
	m.replaces++
}

// RawQuery returns the current query string
func (m *MemoryAddress) RawQuery() string {
	return m.raw
}

// Replaces counts writes since creation
func (m *MemoryAddress) Replaces() int {
	return m.replaces
}
