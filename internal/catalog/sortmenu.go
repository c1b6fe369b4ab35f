package catalog

// SortMenu is the disclosure state of the "Ordenar" control.
type SortMenu struct {
	Open   bool
	Active SortMode
}

// SortOption is one rendered entry of the menu.
type SortOption struct {
	Value  SortMode
	Label  string
	Active bool
}

var sortLabels = map[SortMode]string{
	SortFeatured:  "Destacados",
	SortPriceAsc:  "Precio: menor a mayor",
	SortPriceDesc: "Precio: mayor a menor",
}

// Toggle opens or closes the menu without changing the active mode.
func (m *SortMenu) Toggle() { m.Open = !m.Open }

// Choose selects a mode and closes the menu.
func (m *SortMenu) Choose(mode SortMode) {
	m.Active = ParseSortMode(string(mode))
	m.Open = false
}

// Options returns the three choices with exactly one marked active.
func (m SortMenu) Options() []SortOption {
	active := ParseSortMode(string(m.Active))
	out := make([]SortOption, 0, len(SortModes))
	for _, mode := range SortModes {
		out = append(out, SortOption{Value: mode, Label: sortLabels[mode], Active: mode == active})
	}
	return out
}

// Label returns the display label of a sort mode.
func (s SortMode) Label() string { return sortLabels[ParseSortMode(string(s))] }
