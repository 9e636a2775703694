package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func startWatcher(t *testing.T, path string, regen func(context.Context) error) (cancel func()) {
	t.Helper()
	ctx, stop := context.WithCancel(context.Background())
	w := New(path, 20*time.Millisecond, zaptest.NewLogger(t), regen)
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	// Give the watch a moment to register before the test touches files.
	time.Sleep(100 * time.Millisecond)
	return func() {
		stop()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("Run: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("watcher did not stop")
		}
	}
}

func TestRegeneratesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "systems.csv")
	if err := os.WriteFile(path, []byte("Sol,1,2,G2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	calls := make(chan struct{}, 8)
	stop := startWatcher(t, path, func(context.Context) error {
		select {
		case calls <- struct{}{}:
		default:
		}
		return nil
	})
	defer stop()

	if err := os.WriteFile(path, []byte("Sol,1,2,G2\nAlpha,3,4,K1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatalf("no regeneration after write")
	}
}

func TestIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "systems.csv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	var n atomic.Int32
	stop := startWatcher(t, path, func(context.Context) error {
		n.Add(1)
		return nil
	})

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)
	stop()

	if got := n.Load(); got != 0 {
		t.Fatalf("regenerated %d times for an unrelated file", got)
	}
}

func TestRegenerationErrorKeepsWatching(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "systems.csv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	calls := make(chan struct{}, 8)
	stop := startWatcher(t, path, func(context.Context) error {
		select {
		case calls <- struct{}{}:
		default:
		}
		return errors.New("boom")
	})
	defer stop()

	for i := 0; i < 2; i++ {
		if err := os.WriteFile(path, []byte{byte('a' + i)}, 0o644); err != nil {
			t.Fatal(err)
		}
		select {
		case <-calls:
		case <-time.After(5 * time.Second):
			t.Fatalf("no regeneration on write %d", i)
		}
	}
}

func TestEditDuringReadyIsSeen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "systems.csv")
	if err := os.WriteFile(path, []byte("Sol,1,2,G2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	calls := make(chan struct{}, 8)
	ctx, cancel := context.WithCancel(context.Background())
	w := New(path, 20*time.Millisecond, zaptest.NewLogger(t), func(context.Context) error {
		select {
		case calls <- struct{}{}:
		default:
		}
		return nil
	})
	var readyRuns atomic.Int32
	w.OnReady(func(context.Context) {
		readyRuns.Add(1)
		// An edit landing while the first generation is still running.
		if err := os.WriteFile(path, []byte("Sol,1,2,G2\nAlpha,3,4,K1\n"), 0o644); err != nil {
			t.Error(err)
		}
	})
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatalf("edit made during the ready hook was missed")
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := readyRuns.Load(); got != 1 {
		t.Fatalf("ready hook ran %d times, want 1", got)
	}
}

func TestRunMissingDir(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "gone", "systems.csv"), 0, zap.NewNop(), func(context.Context) error { return nil })
	if err := w.Run(context.Background()); err == nil {
		t.Fatalf("expected error watching a missing directory")
	}
}
