// Package render turns a built deck into HTML pages using Jinja-style
// templates, one per slide template kind plus an index page.
package render

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/dgallion1/orgdeck/internal/deck"
)

//go:embed templates
var embedded embed.FS

// Renderer renders slides and the index page.
type Renderer struct {
	set *pongo2.TemplateSet

	mu    sync.Mutex
	cache map[string]*pongo2.Template
}

// New returns a renderer over the templates in dir, or over the built-in
// templates when dir is empty.
func New(dir string) (*Renderer, error) {
	var loader pongo2.TemplateLoader
	if dir == "" {
		sub, err := fs.Sub(embedded, "templates")
		if err != nil {
			return nil, err
		}
		loader = &fsLoader{fsys: sub}
	} else {
		l, err := pongo2.NewLocalFileSystemLoader(dir)
		if err != nil {
			return nil, fmt.Errorf("template dir: %w", err)
		}
		loader = l
	}
	return &Renderer{
		set:   pongo2.NewSet("orgdeck", loader),
		cache: map[string]*pongo2.Template{},
	}, nil
}

func (r *Renderer) template(name string) (*pongo2.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tpl, ok := r.cache[name]; ok {
		return tpl, nil
	}
	tpl, err := r.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("load template %s: %w", name, err)
	}
	r.cache[name] = tpl
	return tpl, nil
}

// Check loads every slide template and the index template, so a broken
// template directory is reported before anything is built.
func (r *Renderer) Check() error {
	for _, t := range deck.Templates {
		if _, err := r.template(string(t) + ".html"); err != nil {
			return err
		}
	}
	_, err := r.template(deck.IndexFilename)
	return err
}

// Slide renders one slide with the template named after its kind.
func (r *Renderer) Slide(s deck.Slide) (string, error) {
	tpl, err := r.template(string(s.Template()) + ".html")
	if err != nil {
		return "", err
	}
	out, err := tpl.Execute(SlideContext(s))
	if err != nil {
		return "", fmt.Errorf("render %s: %w", s.Head().Filename, err)
	}
	return out, nil
}

// Index renders the deck overview page.
func (r *Renderer) Index(d *deck.Deck) (string, error) {
	tpl, err := r.template(deck.IndexFilename)
	if err != nil {
		return "", err
	}
	out, err := tpl.Execute(IndexContext(d))
	if err != nil {
		return "", fmt.Errorf("render index: %w", err)
	}
	return out, nil
}

// DefaultStylesheet returns the built-in stylesheet.
func DefaultStylesheet() ([]byte, error) {
	return embedded.ReadFile("templates/styles.css")
}

// fsLoader lets pongo2 read templates from an fs.FS.
type fsLoader struct {
	fsys fs.FS
}

func (l *fsLoader) Abs(base, name string) string {
	if path.IsAbs(name) || base == "" {
		return path.Clean(name)
	}
	return path.Join(path.Dir(base), name)
}

func (l *fsLoader) Get(name string) (io.Reader, error) {
	return l.fsys.Open(path.Clean(name))
}
