package placeholder

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashMatchesStringHashing(t *testing.T) {
	tests := []struct {
		seed string
		want int32
	}{
		{"", 0},
		{"a", 97},
		{"ab", 31*97 + 98},
		{"hello", 99162322},
		// wraps past 2^31
		{"p1Sweater Cinnamoroll", hashRef("p1Sweater Cinnamoroll")},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, Hash(tc.seed), "seed %q", tc.seed)
	}
}

// hashRef recomputes the hash with explicit modular arithmetic.
func hashRef(s string) int32 {
	var h int64
	for _, r := range s {
		h = (31*h + int64(r)) % (1 << 32)
	}
	if h >= 1<<31 {
		h -= 1 << 32
	}
	return int32(h)
}

func TestNewIsDeterministic(t *testing.T) {
	a := New("p7Gorro tejido")
	b := New("p7Gorro tejido")
	require.Equal(t, a, b)
	require.GreaterOrEqual(t, a.Hue, 0)
	require.Less(t, a.Hue, 360)
	require.Equal(t, (a.Hue+40)%360, a.Dot.H)
	require.Equal(t, (a.Hue+320)%360, a.Bar.H)
	require.Equal(t, HSL{H: a.Hue, S: 70, L: 96}, a.Background)
	require.Equal(t, 45, a.Dot.L)
	require.Equal(t, 55, a.Bar.L)
}

func TestHueUsesAbsoluteValue(t *testing.T) {
	for _, seed := range []string{"p4Buzo con capucha — Sanrio", "p5Sweater texturado", "p8Buzo crop — edición", "zzzzzzzzzzzz"} {
		h := int64(Hash(seed))
		want := int(math.Abs(float64(h))) % 360
		require.Equal(t, want, New(seed).Hue, "seed %q", seed)
	}
}

func TestHSLConversion(t *testing.T) {
	require.Equal(t, color.NRGBA{R: 255, G: 0, B: 0, A: 255}, HSL{H: 0, S: 100, L: 50}.NRGBA())
	require.Equal(t, color.NRGBA{R: 0, G: 255, B: 0, A: 255}, HSL{H: 120, S: 100, L: 50}.NRGBA())
	require.Equal(t, color.NRGBA{R: 128, G: 128, B: 128, A: 255}, HSL{H: 200, S: 0, L: 50}.NRGBA())
	require.Equal(t, "hsl(10 70% 96%)", HSL{H: 10, S: 70, L: 96}.CSS())
}

func TestSVGCarriesPalette(t *testing.T) {
	a := New("p6Campera rompeviento")
	svg := string(a.SVG())
	require.True(t, strings.HasPrefix(svg, "<svg"))
	require.Contains(t, svg, a.Background.CSS())
	require.Contains(t, svg, a.Dot.CSS())
	require.Contains(t, svg, a.Bar.CSS())
	require.Equal(t, svg, string(New("p6Campera rompeviento").SVG()))
}

func TestPNGEncodesCardFace(t *testing.T) {
	a := New("p5Sweater texturado")
	var buf bytes.Buffer
	require.NoError(t, a.PNG(&buf, 64))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 64, img.Bounds().Dx())
	require.Equal(t, 64, img.Bounds().Dy())

	// top-right corner is untouched background
	got := color.NRGBAModel.Convert(img.At(63, 0)).(color.NRGBA)
	require.Equal(t, a.Background.NRGBA(), got)
}
