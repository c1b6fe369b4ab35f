package placeholder

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
)

// Card face geometry in a 320x320 box. The dot overhangs the bottom-right
// corner and is clipped by the frame.
const (
	box       = 320
	gridCells = 6
	dotR      = 80
	dotCX     = box + 40 - dotR
	dotCY     = box + 24 - dotR
)

type bar struct {
	x, y, w, h int
	opacity    float64
}

var bars = []bar{
	{x: 24, y: 24, w: 96, h: 16, opacity: 1},
	{x: 24, y: 48, w: 48, h: 12, opacity: 0.8},
	{x: 24, y: box - 32, w: 64, h: 8, opacity: 0.6},
}

// SVG renders the card face as a standalone SVG document.
func (a Art) SVG() []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" role="img" aria-hidden="true" data-hue="%d">`, box, box, a.Hue)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="%s"/>`, box, box, a.Background.CSS())
	b.WriteString(`<g stroke="#e2e8f0" stroke-width="1" opacity="0.5">`)
	step := box / gridCells
	for i := 1; i < gridCells; i++ {
		fmt.Fprintf(&b, `<line x1="%d" y1="0" x2="%d" y2="%d"/>`, i*step, i*step, box)
		fmt.Fprintf(&b, `<line x1="0" y1="%d" x2="%d" y2="%d"/>`, i*step, box, i*step)
	}
	b.WriteString(`</g>`)
	fmt.Fprintf(&b, `<circle cx="%d" cy="%d" r="%d" fill="%s"/>`, dotCX, dotCY, dotR, a.Dot.CSS())
	for _, br := range bars {
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" rx="%d" fill="%s" opacity="%.1f"/>`,
			br.x, br.y, br.w, br.h, br.h/2, a.Bar.CSS(), br.opacity)
	}
	b.WriteString(`</svg>`)
	return b.Bytes()
}

// Image rasterizes the card face at size x size pixels.
func (a Art) Image(size int) *image.NRGBA {
	if size <= 0 {
		size = box
	}
	scale := func(v int) int { return v * size / box }

	img := imaging.New(size, size, a.Background.NRGBA())
	img = imaging.Overlay(img, disc(scale(dotR), a.Dot.NRGBA()), image.Pt(scale(dotCX-dotR), scale(dotCY-dotR)), 1)
	for _, br := range bars {
		w, h := max(scale(br.w), 1), max(scale(br.h), 1)
		img = imaging.Overlay(img, imaging.New(w, h, a.Bar.NRGBA()), image.Pt(scale(br.x), scale(br.y)), br.opacity)
	}
	return img
}

// PNG encodes Image(size) to w.
func (a Art) PNG(w io.Writer, size int) error {
	return imaging.Encode(w, a.Image(size), imaging.PNG)
}

func disc(r int, c color.NRGBA) *image.NRGBA {
	if r < 1 {
		r = 1
	}
	d := 2 * r
	img := image.NewNRGBA(image.Rect(0, 0, d, d))
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			dx, dy := x-r, y-r
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	return img
}
