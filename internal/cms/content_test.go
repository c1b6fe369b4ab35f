package cms

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestDefaultLibrary(t *testing.T) {
	lib, err := Default()
	require.NoError(t, err)
	require.Equal(t, []string{"carrito", "detalle", "hero", "licencias"}, lib.Slugs())

	hero, err := lib.Page("hero")
	require.NoError(t, err)
	require.Equal(t, "Llega Hora de vestirse", hero.Title)
	require.Equal(t, "Hora de vestirse", hero.Highlight)
	require.Equal(t, []string{"Licencia Sanrio", "Hecho en Argentina"}, hero.Badges)
	require.NotNil(t, hero.Notice)
	require.Equal(t, "Sin fotos por ahora", hero.Notice.Title)
	require.Contains(t, string(hero.Body), "<strong>licencia oficial</strong>")

	require.Contains(t, string(lib.HTML("carrito")), "Aún no activamos el carrito")
}

func TestPageNotFound(t *testing.T) {
	lib, err := Default()
	require.NoError(t, err)
	_, err = lib.Page("checkout")
	require.True(t, errors.Is(err, ErrNotFound))
	_, err = lib.Page("../hero")
	require.True(t, errors.Is(err, ErrNotFound))
	require.Empty(t, lib.HTML("nope"))
}

func TestLoadSanitizesMarkup(t *testing.T) {
	fsys := fstest.MapFS{
		"promo.md": {Data: []byte("# Promo\n\n<script>alert(1)</script>\n\n[Instagram](https://www.instagram.com/horadevestirse.ar)\n")},
	}
	lib, err := Load(fsys)
	require.NoError(t, err)
	page, err := lib.Page("PROMO")
	require.NoError(t, err)
	require.Equal(t, "Promo", page.Title)
	body := string(page.Body)
	require.False(t, strings.Contains(body, "<script>"))
	require.Contains(t, body, `href="https://www.instagram.com/horadevestirse.ar"`)
	require.Contains(t, body, "noreferrer")
}

func TestLoadRejectsBrokenFrontMatter(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.md": {Data: []byte("---\ntitle: [unterminated\n---\nbody\n")},
	}
	_, err := Load(fsys)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad")
}

func TestPageReturnsCopies(t *testing.T) {
	lib, err := Default()
	require.NoError(t, err)
	hero, _ := lib.Page("hero")
	hero.Badges[0] = "mutated"
	again, _ := lib.Page("hero")
	require.Equal(t, "Licencia Sanrio", again.Badges[0])
}
