package reload

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/robinbraemer/event"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

type testConfig struct{ Name string }

func TestConfigUpdateEvent(t *testing.T) {
	mgr := event.New(event.WithLogger(logr.Discard()))
	var got *testConfig
	unsubscribe := Subscribe(mgr, func(e *ConfigUpdateEvent[testConfig]) {
		got = e.Config
	})

	FireConfigUpdate(mgr, &testConfig{Name: "a"})
	require.Equal(t, "a", got.Name)

	unsubscribe()
	FireConfigUpdate(mgr, &testConfig{Name: "b"})
	require.Equal(t, "a", got.Name)
}

func TestWatcher(t *testing.T) {
	file := filepath.Join(t.TempDir(), "presets.yml")
	require.NoError(t, os.WriteFile(file, []byte("a"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	w := &Watcher{
		Path:     file,
		Debounce: 10 * time.Millisecond,
		OnChange: func(context.Context) error {
			calls.Inc()
			return nil
		},
	}
	require.NoError(t, w.Watch(ctx))

	require.NoError(t, os.WriteFile(file, []byte("b"), 0644))
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 5*time.Second, 10*time.Millisecond)
}

func TestWatcher_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w := &Watcher{Path: "does-not-exist.yml"}
	require.NoError(t, w.Watch(ctx))
}
