package gallery

import (
	"testing"

	"github.com/stretchr/testify/require"

	"horadevestirse.ar/storefront/internal/catalog"
)

func product(id string, images int) catalog.Product {
	p := catalog.Product{ID: id, Name: "Producto " + id, Sizes: []string{"S"}}
	for i := 0; i < images; i++ {
		p.Images = append(p.Images, "/products/"+id+"-"+string(rune('a'+i))+".png")
	}
	return p
}

func TestDialogTransitions(t *testing.T) {
	s := New(product("p1", 2))
	require.False(t, s.Open)
	s.OpenDialog()
	require.True(t, s.Open)
	s.CloseDialog()
	require.False(t, s.Open)
}

func TestNavigationWraps(t *testing.T) {
	s := New(product("p3", 3))
	require.Equal(t, 0, s.Index)
	s.Prev()
	require.Equal(t, 2, s.Index)
	s.Next()
	require.Equal(t, 0, s.Index)
	s.Next()
	s.Next()
	require.Equal(t, 2, s.Index)
	s.Next()
	require.Equal(t, 0, s.Index)
}

func TestNavigationNoopWithoutImages(t *testing.T) {
	s := New(product("p4", 0))
	s.Prev()
	s.Next()
	s.Select(0)
	require.Equal(t, 0, s.Index)
	require.True(t, s.ShowPlaceholder())
	require.False(t, s.ShowControls())
}

func TestSelect(t *testing.T) {
	s := New(product("p3", 3))
	s.Select(2)
	require.Equal(t, 2, s.Index)
	s.Select(3)
	require.Equal(t, 2, s.Index)
	s.Select(-1)
	require.Equal(t, 2, s.Index)
}

func TestResetOnProductChange(t *testing.T) {
	s := New(product("p3", 3))
	s.Select(2)
	s.Reset(product("p3", 3))
	require.Equal(t, 2, s.Index)

	s.Reset(product("p1", 2))
	require.Equal(t, 0, s.Index)
	require.Equal(t, 2, s.Count)
	require.Equal(t, "p1", s.ProductID)
}

func TestLegacySingleImage(t *testing.T) {
	p := catalog.Product{ID: "x", Name: "X", Image: "/products/x.png", Sizes: []string{"S"}}
	s := New(p)
	require.Equal(t, 1, s.Count)
	require.False(t, s.ShowControls())
	require.False(t, s.ShowPlaceholder())
	s.Next()
	require.Equal(t, 0, s.Index)
}

func TestFromQueryFoldsIndex(t *testing.T) {
	p := product("p3", 3)
	tests := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"abc", 0},
		{"1", 1},
		{"3", 0},
		{"7", 1},
		{"-1", 2},
	}
	for _, tc := range tests {
		s := FromQuery(p, true, tc.raw)
		require.True(t, s.Open)
		require.Equal(t, tc.want, s.Index, "raw %q", tc.raw)
	}
	require.Equal(t, 0, FromQuery(product("p5", 0), false, "4").Index)
}

func TestBuildViewControls(t *testing.T) {
	tests := []struct {
		images      int
		slides      int
		controls    bool
		placeholder bool
	}{
		{images: 0, slides: 0, controls: false, placeholder: true},
		{images: 1, slides: 0, controls: false, placeholder: false},
		{images: 3, slides: 3, controls: true, placeholder: false},
	}
	for _, tc := range tests {
		p := product("p", tc.images)
		v := BuildView(p, New(p))
		require.Equal(t, tc.controls, v.ShowControls)
		require.Equal(t, tc.placeholder, v.ShowPlaceholder)
		require.Len(t, v.Slides, tc.slides)
	}
}

func TestBuildViewCurrentSlide(t *testing.T) {
	p := product("p3", 3)
	s := New(p)
	s.Prev()
	v := BuildView(p, s)
	require.Equal(t, 2, v.Index)
	require.Equal(t, p.Images[2], v.Src)
	require.Equal(t, "Producto p3 — 3 de 3", v.Alt)
	require.Equal(t, 1, v.PrevIndex)
	require.Equal(t, 0, v.NextIndex)
	require.True(t, v.Slides[2].Current)
	require.False(t, v.Slides[0].Current)
}

func TestBuildViewResetsForeignState(t *testing.T) {
	p1 := product("p1", 2)
	p3 := product("p3", 3)
	s := New(p3)
	s.Select(2)
	v := BuildView(p1, s)
	require.Equal(t, 0, v.Index)
	require.Equal(t, p1.Images[0], v.Src)
}
