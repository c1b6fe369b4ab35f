package gallery

import (
	"fmt"

	"horadevestirse.ar/storefront/internal/catalog"
)

// Slide is one dot indicator / thumbnail entry.
type Slide struct {
	Index   int
	Src     string
	Alt     string
	Label   string
	Current bool
}

// View is the template model for the dialog's gallery block.
type View struct {
	ProductID       string
	Name            string
	Count           int
	Index           int
	Src             string
	Alt             string
	ShowControls    bool
	ShowPlaceholder bool
	PrevIndex       int
	NextIndex       int
	Slides          []Slide
}

// BuildView renders s for p. Slides are only populated when more than one
// image exists.
func BuildView(p catalog.Product, s State) View {
	s.Reset(p)
	imgs := p.Gallery()
	v := View{
		ProductID:       p.ID,
		Name:            p.Name,
		Count:           s.Count,
		Index:           s.Index,
		ShowControls:    s.ShowControls(),
		ShowPlaceholder: s.ShowPlaceholder(),
		PrevIndex:       s.PrevIndex(),
		NextIndex:       s.NextIndex(),
	}
	if s.Count > 0 {
		v.Src = imgs[s.Index]
		v.Alt = fmt.Sprintf("%s — %d de %d", p.Name, s.Index+1, s.Count)
	}
	if !v.ShowControls {
		return v
	}
	v.Slides = make([]Slide, 0, len(imgs))
	for i, src := range imgs {
		v.Slides = append(v.Slides, Slide{
			Index:   i,
			Src:     src,
			Alt:     fmt.Sprintf("%s miniatura %d", p.Name, i+1),
			Label:   fmt.Sprintf("Miniatura %d", i+1),
			Current: i == s.Index,
		})
	}
	return v
}
