package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadStorefrontLocale(t *testing.T) {
	b, err := Load("../../locales", "es", []string{"es"})
	require.NoError(t, err)
	require.Equal(t, []string{"es"}, b.Supported())
	require.Equal(t, "No encontramos resultados con esos filtros.", b.T("es", "catalog.empty"))
	require.Equal(t, "missing.key", b.T("es", "missing.key"))
}

func TestResolveFallsBackToSpanish(t *testing.T) {
	b, err := Load("../../locales", "es", []string{"es"})
	require.NoError(t, err)
	require.Equal(t, "es", b.Resolve("es-AR,es;q=0.9"))
	require.Equal(t, "es", b.Resolve("ja;q=0.8, en;q=0.9"))
	require.Equal(t, "es", b.Resolve(""))
}

func TestResolveHonorsQValues(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "es.json"), []byte(`{"hello":"hola"}`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.json"), []byte(`{"hello":"hello"}`), 0o600))
	b, err := Load(dir, "es", []string{"es", "en"})
	require.NoError(t, err)
	require.Equal(t, "en", b.Resolve("es;q=0.8, en;q=0.9"))
	require.Equal(t, "hola", b.T("fr", "hello"))
}

func TestTfGroupsNumbers(t *testing.T) {
	b, err := Load("../../locales", "es", []string{"es"})
	require.NoError(t, err)
	require.Equal(t, "8 productos", b.Tf("es", "catalog.count", 8))
}

func TestLoadRequiresFallback(t *testing.T) {
	_, err := Load(t.TempDir(), "es", nil)
	require.Error(t, err)
}
