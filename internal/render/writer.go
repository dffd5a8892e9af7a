package render

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/dgallion1/orgdeck/internal/deck"
)

// Page is one rendered output file.
type Page struct {
	Filename string
	HTML     string
}

// Writer renders a deck and writes it to an output directory.
type Writer struct {
	Fs         afero.Fs
	Renderer   *Renderer
	StylesPath string // copied as styles.css when it exists
	Log        *slog.Logger
}

// NewWriter returns a writer on the OS filesystem.
func NewWriter(r *Renderer, stylesPath string, log *slog.Logger) *Writer {
	return &Writer{Fs: afero.NewOsFs(), Renderer: r, StylesPath: stylesPath, Log: log}
}

// RenderAll renders every slide and the index page without touching the
// filesystem.
func (w *Writer) RenderAll(d *deck.Deck) ([]Page, error) {
	pages := make([]Page, 0, len(d.Slides)+1)
	for _, s := range d.Slides {
		html, err := w.Renderer.Slide(s)
		if err != nil {
			return nil, err
		}
		pages = append(pages, Page{Filename: s.Head().Filename, HTML: html})
	}
	index, err := w.Renderer.Index(d)
	if err != nil {
		return nil, err
	}
	return append(pages, Page{Filename: deck.IndexFilename, HTML: index}), nil
}

// Write renders the whole deck first and only then writes files, so a
// template error leaves the output directory untouched. It returns the
// written slide filenames in order.
func (w *Writer) Write(outDir string, d *deck.Deck) ([]string, error) {
	log := w.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	pages, err := w.RenderAll(d)
	if err != nil {
		return nil, err
	}

	if err := w.Fs.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	for _, p := range pages {
		path := filepath.Join(outDir, p.Filename)
		if err := afero.WriteFile(w.Fs, path, []byte(p.HTML), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", p.Filename, err)
		}
		log.Debug("wrote page", "path", path, "bytes", len(p.HTML))
	}

	if err := w.copyStyles(outDir, log); err != nil {
		return nil, err
	}

	log.Info("deck written", "dir", outDir, "slides", len(d.Slides))
	return d.Filenames(), nil
}

func (w *Writer) copyStyles(outDir string, log *slog.Logger) error {
	dst := filepath.Join(outDir, "styles.css")

	if w.StylesPath != "" {
		if ok, _ := afero.Exists(w.Fs, w.StylesPath); ok {
			data, err := afero.ReadFile(w.Fs, w.StylesPath)
			if err != nil {
				return fmt.Errorf("read stylesheet: %w", err)
			}
			log.Debug("copied stylesheet", "from", w.StylesPath)
			return afero.WriteFile(w.Fs, dst, data, 0o644)
		}
	}

	data, err := DefaultStylesheet()
	if err != nil {
		return fmt.Errorf("read default stylesheet: %w", err)
	}
	return afero.WriteFile(w.Fs, dst, data, 0o644)
}
