package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Bundle holds one flat key/value dictionary per language.
type Bundle struct {
	dict     map[string]map[string]string
	fallback string
	tags     []language.Tag
	matcher  language.Matcher
}

// Load reads <dir>/<lang>.json for every supported language. The fallback
// language must exist; others are optional.
func Load(dir string, fallback string, supported []string) (*Bundle, error) {
	if len(supported) == 0 {
		supported = []string{fallback}
	}
	b := &Bundle{
		dict:     map[string]map[string]string{},
		fallback: fallback,
	}
	// the fallback goes first so the matcher defaults to it
	ordered := append([]string{fallback}, supported...)
	seen := map[string]bool{}
	for _, l := range ordered {
		if seen[l] {
			continue
		}
		seen[l] = true
		raw, err := os.ReadFile(filepath.Join(dir, l+".json"))
		if err != nil {
			if l == fallback {
				return nil, fmt.Errorf("load locale %s: %w", l, err)
			}
			continue
		}
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", l, err)
		}
		tag, err := language.Parse(l)
		if err != nil {
			return nil, fmt.Errorf("locale %s: %w", l, err)
		}
		b.dict[l] = m
		b.tags = append(b.tags, tag)
	}
	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

// Supported lists the loaded languages.
func (b *Bundle) Supported() []string {
	out := make([]string, 0, len(b.dict))
	for k := range b.dict {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Fallback returns the configured fallback language.
func (b *Bundle) Fallback() string { return b.fallback }

// T returns translation for key in lang, falling back to default and finally key.
func (b *Bundle) T(lang, key string) string {
	if lang != "" {
		if m, ok := b.dict[lang]; ok {
			if v, ok := m[key]; ok {
				return v
			}
		}
	}
	if m, ok := b.dict[b.fallback]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}

// Tf formats the translation for key with args using lang's number
// conventions.
func (b *Bundle) Tf(lang, key string, args ...any) string {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Make(b.fallback)
	}
	return message.NewPrinter(tag).Sprintf(b.T(lang, key), args...)
}

// Resolve chooses the best loaded language for an Accept-Language header.
func (b *Bundle) Resolve(acceptLang string) string {
	prefs, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(prefs) == 0 {
		return b.fallback
	}
	_, idx, conf := b.matcher.Match(prefs...)
	if conf == language.No || idx < 0 || idx >= len(b.tags) {
		return b.fallback
	}
	base, _ := b.tags[idx].Base()
	if _, ok := b.dict[base.String()]; ok {
		return base.String()
	}
	return b.tags[idx].String()
}
