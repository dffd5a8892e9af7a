// Package pipeline turns a source document into a written deck and keeps the
// most recent result for the preview server.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/dgallion1/orgdeck/internal/config"
	"github.com/dgallion1/orgdeck/internal/deck"
	"github.com/dgallion1/orgdeck/internal/loader"
	"github.com/dgallion1/orgdeck/internal/render"
)

const buildHistory = 20

// Pipeline loads, assembles and writes a deck. Builds are serialized.
type Pipeline struct {
	cfg    config.Config
	log    *slog.Logger
	writer *render.Writer
	builds *BuildLog

	mu       sync.Mutex
	current  *deck.Deck
	lastHash string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a pipeline for cfg. The template set is loaded once.
func New(cfg config.Config, log *slog.Logger) (*Pipeline, error) {
	r, err := render.New(cfg.Templates)
	if err != nil {
		return nil, err
	}
	if err := r.Check(); err != nil {
		return nil, err
	}
	return &Pipeline{
		cfg:    cfg,
		log:    log,
		writer: render.NewWriter(r, cfg.Styles, log),
		builds: NewBuildLog(buildHistory),
	}, nil
}

// Build runs one cycle. Unless force is set, a source whose content matches
// the last successful build is not rebuilt. The returned error wraps any
// *deck.StructureError or *deck.AssemblyError.
func (p *Pipeline) Build(ctx context.Context, trigger string, force bool) (BuildSnapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	b := newBuild(p.cfg.Source, trigger)
	p.builds.Put(b)
	log := p.log.With("build_id", b.ID, "source", p.cfg.Source, "trigger", trigger)

	d, err := p.run(ctx, b, force, log)
	if err != nil {
		log.Error("build failed", "error", err)
		b.fail(err)
		return b.Snapshot(), err
	}
	if d == nil {
		log.Info("source unchanged, skipping build")
		b.complete(StatusUnchanged, len(p.current.Slides))
		return b.Snapshot(), nil
	}

	p.current = d
	b.complete(StatusCompleted, len(d.Slides))
	snap := b.Snapshot()
	log.Info("build complete", "slides", snap.Slides, "duration_ms", snap.DurationMS)
	return snap, nil
}

// run returns a nil deck when the source is unchanged.
func (p *Pipeline) run(ctx context.Context, b *Build, force bool, log *slog.Logger) (*deck.Deck, error) {
	data, err := readWithRetry(ctx, p.cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	hash := ContentHashHex(data)
	b.setHash(hash)
	if !force && p.current != nil && hash == p.lastHash {
		return nil, nil
	}

	l, err := loader.ForFile(p.cfg.Source, loader.Options{PDFFallbackPdftotext: p.cfg.PDFFallbackPdftotext})
	if err != nil {
		return nil, err
	}
	doc, err := l.Load(bytes.NewReader(data), filepath.Base(p.cfg.Source))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", p.cfg.Source, err)
	}
	log.Debug("source loaded", "top_level", len(doc.Children))

	d, err := deck.Assemble(doc, p.cfg.DeckOptions(log))
	if err != nil {
		return nil, err
	}
	if _, err := p.writer.Write(p.cfg.Output, d); err != nil {
		return nil, err
	}
	p.lastHash = hash
	return d, nil
}

// Current returns the last successfully built deck, or nil.
func (p *Pipeline) Current() *deck.Deck {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Builds returns recent builds, newest first.
func (p *Pipeline) Builds() []BuildSnapshot {
	return p.builds.Snapshots()
}

// Config returns the configuration the pipeline was created with.
func (p *Pipeline) Config() config.Config {
	return p.cfg
}
