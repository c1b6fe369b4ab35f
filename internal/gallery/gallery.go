// Package gallery holds the per-card detail dialog state: whether the dialog
// is open and which gallery image is shown.
package gallery

import (
	"strconv"
	"strings"

	"horadevestirse.ar/storefront/internal/catalog"
)

// State belongs to one rendered card. Index is always in [0, Count) when
// Count > 0, and 0 otherwise.
type State struct {
	ProductID string
	Count     int
	Index     int
	// Open mirrors the page's product parameter: the dialog of ProductID is
	// open when the URL names it.
	Open bool
}

// New returns the closed state for p at the cover image.
func New(p catalog.Product) State {
	return State{ProductID: p.ID, Count: len(p.Gallery())}
}

// OpenDialog is the closed -> open transition (cover or "Ver detalles").
func (s *State) OpenDialog() { s.Open = true }

// CloseDialog is the open -> closed transition (backdrop or close control).
func (s *State) CloseDialog() { s.Open = false }

// Prev moves one image back, wrapping to the last one.
func (s *State) Prev() {
	if s.Count == 0 {
		return
	}
	s.Index = (s.Index - 1 + s.Count) % s.Count
}

// Next moves one image forward, wrapping to the first one.
func (s *State) Next() {
	if s.Count == 0 {
		return
	}
	s.Index = (s.Index + 1) % s.Count
}

// Select jumps to a thumbnail position. Out-of-range positions are ignored.
func (s *State) Select(i int) {
	if i < 0 || i >= s.Count {
		return
	}
	s.Index = i
}

// Reset rebinds the state to p. A different product restarts at index 0;
// the same product keeps its position.
func (s *State) Reset(p catalog.Product) {
	if s.ProductID == p.ID {
		return
	}
	s.ProductID = p.ID
	s.Count = len(p.Gallery())
	s.Index = 0
}

// ShowControls reports whether prev/next, dots and thumbnails are rendered.
func (s State) ShowControls() bool { return s.Count > 1 }

// ShowPlaceholder reports whether generated art replaces the gallery.
func (s State) ShowPlaceholder() bool { return s.Count == 0 }

// PrevIndex is the index Prev would move to.
func (s State) PrevIndex() int {
	s.Prev()
	return s.Index
}

// NextIndex is the index Next would move to.
func (s State) NextIndex() int {
	s.Next()
	return s.Index
}

// FromQuery rebuilds a card state from URL parameters. Any integer index is
// folded into range; garbage means the cover image.
func FromQuery(p catalog.Product, open bool, rawIndex string) State {
	s := New(p)
	s.Open = open
	if s.Count == 0 {
		return s
	}
	i, err := strconv.Atoi(strings.TrimSpace(rawIndex))
	if err != nil {
		return s
	}
	s.Index = ((i % s.Count) + s.Count) % s.Count
	return s
}
