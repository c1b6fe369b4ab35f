// Package placeholder derives deterministic cover art for products that have
// no photograph. The same seed always yields the same colors.
package placeholder

import (
	"fmt"
	"image/color"
	"math"
	"unicode/utf16"
)

// Hash is the classic 31-multiplier string hash with 32-bit wraparound,
// iterated over UTF-16 code units.
func Hash(seed string) int32 {
	var h int32
	for _, cu := range utf16.Encode([]rune(seed)) {
		h = 31*h + int32(cu)
	}
	return h
}

// HSL is a color in hue/saturation/lightness, percentages in 0..100.
type HSL struct {
	H, S, L int
}

// CSS renders the color in CSS Color 4 space-separated syntax.
func (c HSL) CSS() string { return fmt.Sprintf("hsl(%d %d%% %d%%)", c.H, c.S, c.L) }

// NRGBA converts the color to sRGB.
func (c HSL) NRGBA() color.NRGBA {
	h := float64(c.H) / 360
	s := float64(c.S) / 100
	l := float64(c.L) / 100
	if s == 0 {
		v := uint8(math.Round(l * 255))
		return color.NRGBA{R: v, G: v, B: v, A: 0xff}
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return color.NRGBA{
		R: channel(p, q, h+1.0/3),
		G: channel(p, q, h),
		B: channel(p, q, h-1.0/3),
		A: 0xff,
	}
}

func channel(p, q, t float64) uint8 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	var v float64
	switch {
	case t < 1.0/6:
		v = p + (q-p)*6*t
	case t < 0.5:
		v = q
	case t < 2.0/3:
		v = p + (q-p)*(2.0/3-t)*6
	default:
		v = p
	}
	return uint8(math.Round(v * 255))
}

// Art is the palette of one placeholder card face.
type Art struct {
	Seed       string
	Hue        int
	Background HSL
	Dot        HSL
	Bar        HSL
}

// New derives the palette for seed.
func New(seed string) Art {
	h := int64(Hash(seed))
	if h < 0 {
		h = -h
	}
	hue := int(h % 360)
	return Art{
		Seed:       seed,
		Hue:        hue,
		Background: HSL{H: hue, S: 70, L: 96},
		Dot:        HSL{H: (hue + 40) % 360, S: 70, L: 45},
		Bar:        HSL{H: (hue + 320) % 360, S: 70, L: 55},
	}
}
