package yamlfile

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"pet-crate-compliance/internal/platform/logger"

	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 250 * time.Millisecond

// Watcher llama a OnChange cuando el archivo del catálogo cambia.
// Observa el directorio y no el archivo: los editores y los ConfigMap de k8s
// reemplazan el archivo por rename y el watch directo se pierde.
type Watcher struct {
	Path     string
	OnChange func(ctx context.Context) error
	Debounce time.Duration
	Logger   logger.Logger
}

// Run bloquea hasta que ctx se cancela.
func (w *Watcher) Run(ctx context.Context) error {
	log := w.Logger
	if log == nil {
		log = logger.NewNop()
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	target, err := filepath.Abs(w.Path)
	if err != nil {
		return fmt.Errorf("yamlfile: resolve %s: %w", w.Path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("yamlfile: new watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("yamlfile: watch %s: %w", filepath.Dir(target), err)
	}

	name := filepath.Base(target)
	log.Info("watching crate catalog", map[string]any{"path": target})

	// detenido hasta el primer evento
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != name {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn("catalog watcher error", map[string]any{"error": err})

		case <-timer.C:
			if w.OnChange == nil {
				continue
			}
			if err := w.OnChange(ctx); err != nil {
				// el catálogo anterior sigue vigente
				log.Warn("catalog change rejected", map[string]any{"path": target, "error": err})
			}
		}
	}
}
