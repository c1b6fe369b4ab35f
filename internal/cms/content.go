// Package cms loads the storefront copy: markdown documents with YAML front
// matter, rendered to sanitized HTML once at startup.
package cms

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when no page exists for a slug.
var ErrNotFound = errors.New("cms: page not found")

//go:embed pages/*.md
var embedded embed.FS

// Page is one rendered copy block.
type Page struct {
	Slug      string
	Title     string
	Highlight string
	Summary   string
	Badges    []string
	Notice    *Notice
	Body      template.HTML
}

// Notice is an optional aside rendered next to the page body.
type Notice struct {
	Title    string
	Message  string
	Footnote string
}

type frontMatter struct {
	Title     string   `yaml:"title"`
	Highlight string   `yaml:"highlight"`
	Summary   string   `yaml:"summary"`
	Badges    []string `yaml:"badges"`
	Notice    *struct {
		Title    string `yaml:"title"`
		Message  string `yaml:"message"`
		Footnote string `yaml:"footnote"`
	} `yaml:"notice"`
}

// Library holds every page keyed by slug. It is read-only after Load.
type Library struct {
	pages map[string]Page
}

var (
	defaultOnce sync.Once
	defaultLib  *Library
	defaultErr  error
)

// Default returns the library built from the embedded pages.
func Default() (*Library, error) {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(embedded, "pages")
		if err != nil {
			defaultErr = err
			return
		}
		defaultLib, defaultErr = Load(sub)
	})
	return defaultLib, defaultErr
}

// Load parses every *.md file at the root of fsys.
func Load(fsys fs.FS) (*Library, error) {
	names, err := fs.Glob(fsys, "*.md")
	if err != nil {
		return nil, fmt.Errorf("cms: list pages: %w", err)
	}
	md := goldmark.New()
	policy := newCopyPolicy()
	lib := &Library{pages: make(map[string]Page, len(names))}
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("cms: read %s: %w", name, err)
		}
		slug := strings.TrimSuffix(path.Base(name), ".md")
		page, err := parsePage(md, policy, slug, data)
		if err != nil {
			return nil, err
		}
		lib.pages[slug] = page
	}
	return lib, nil
}

// Page returns the page for slug.
func (l *Library) Page(slug string) (Page, error) {
	if l == nil {
		return Page{}, ErrNotFound
	}
	p, ok := l.pages[sanitizeSlug(slug)]
	if !ok {
		return Page{}, ErrNotFound
	}
	return clonePage(p), nil
}

// HTML returns the rendered body for slug, or "" when it does not exist.
func (l *Library) HTML(slug string) template.HTML {
	p, err := l.Page(slug)
	if err != nil {
		return ""
	}
	return p.Body
}

// Slugs lists the loaded slugs in lexical order.
func (l *Library) Slugs() []string {
	out := make([]string, 0, len(l.pages))
	for slug := range l.pages {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}

func parsePage(md goldmark.Markdown, policy *bluemonday.Policy, slug string, data []byte) (Page, error) {
	fm, body := splitFrontMatter(string(data))
	var front frontMatter
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Page{}, fmt.Errorf("cms: parse front matter %s: %w", slug, err)
		}
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(body), &buf); err != nil {
		return Page{}, fmt.Errorf("cms: render %s: %w", slug, err)
	}
	page := Page{
		Slug:      slug,
		Title:     strings.TrimSpace(front.Title),
		Highlight: strings.TrimSpace(front.Highlight),
		Summary:   strings.TrimSpace(front.Summary),
		Badges:    front.Badges,
		Body:      template.HTML(policy.SanitizeBytes(buf.Bytes())),
	}
	if front.Notice != nil {
		page.Notice = &Notice{
			Title:    strings.TrimSpace(front.Notice.Title),
			Message:  strings.TrimSpace(front.Notice.Message),
			Footnote: strings.TrimSpace(front.Notice.Footnote),
		}
	}
	if page.Title == "" {
		page.Title = prettifySlug(slug)
	}
	return page, nil
}

func newCopyPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("p", "span", "strong")
	policy.RequireNoReferrerOnLinks(true)
	return policy
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func sanitizeSlug(slug string) string {
	slug = strings.Trim(strings.TrimSpace(strings.ToLower(slug)), "/")
	if strings.Contains(slug, "..") || strings.ContainsRune(slug, '/') {
		return ""
	}
	return slug
}

func prettifySlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

func clonePage(src Page) Page {
	cp := src
	if src.Badges != nil {
		cp.Badges = append([]string(nil), src.Badges...)
	}
	if src.Notice != nil {
		n := *src.Notice
		cp.Notice = &n
	}
	return cp
}
