package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 150 * time.Millisecond

// Watch rebuilds whenever the source or stylesheet changes, until Stop is
// called or ctx ends. Directories are watched rather than files so that
// editors which save by rename keep triggering events.
func (p *Pipeline) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	source := filepath.Clean(p.cfg.Source)
	styles := ""
	if p.cfg.Styles != "" {
		styles = filepath.Clean(p.cfg.Styles)
	}

	dirs := map[string]bool{filepath.Dir(source): true}
	if styles != "" {
		dirs[filepath.Dir(styles)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			w.Close()
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	watchCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer w.Close()
		p.loop(watchCtx, w, source, styles)
	}()

	p.log.Info("watching for changes", "source", source, "styles", styles)
	return nil
}

func (p *Pipeline) loop(ctx context.Context, w *fsnotify.Watcher, source, styles string) {
	timer := time.NewTimer(debounce)
	timer.Stop()
	pending := false
	force := false

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return

		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			name := filepath.Clean(ev.Name)
			switch name {
			case source:
			case styles:
				// Stylesheet edits don't change the source hash.
				force = true
			default:
				continue
			}
			p.log.Debug("change detected", "path", name, "op", ev.Op.String())
			pending = true
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			p.log.Warn("watcher error", "error", err)

		case <-timer.C:
			if !pending {
				continue
			}
			pending = false
			// Failures are recorded in the build log.
			p.Build(ctx, "watch", force)
			force = false
		}
	}
}

// Stop ends watching and waits for an in-flight build.
func (p *Pipeline) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
}
