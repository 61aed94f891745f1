package reload

import (
	"context"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/knadh/koanf/providers/file"
)

// DefaultDebounce is the default duration file changes are debounced.
const DefaultDebounce = 100 * time.Millisecond

// Watcher runs a callback when a file changes.
// Bursts of changes within Debounce run the callback once.
type Watcher struct {
	Path     string
	Debounce time.Duration // Defaults to DefaultDebounce
	// OnChange is called with the watcher's context.
	OnChange func(ctx context.Context) error

	mu    sync.Mutex // guards timer and running the callback
	timer *time.Timer
}

// Watch starts watching the file until ctx is canceled.
// It returns immediately, errors of OnChange are logged.
func (w *Watcher) Watch(ctx context.Context) error {
	if ctx.Err() != nil {
		return nil
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	log := logr.FromContextOrDiscard(ctx).WithValues("path", w.Path)
	return file.Provider(w.Path).Watch(func(_ any, err error) {
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			log.Info("failed watching config", "error", err)
			return
		}

		w.mu.Lock()
		defer w.mu.Unlock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.timer = time.AfterFunc(debounce, func() { w.run(ctx, log) })
	})
}

func (w *Watcher) run(ctx context.Context, log logr.Logger) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if ctx.Err() != nil {
		return
	}

	log.Info("auto-reloading config")
	start := time.Now()
	if err := w.OnChange(ctx); err != nil {
		log.Info("failed to reload config", "error", err)
		return
	}
	log.Info("reloaded config successfully", "duration", time.Since(start).Round(time.Millisecond).String())
}
