package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, path, listen string) {
	t.Helper()
	data := "proxy:\n  listen_address: \"" + listen + "\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

// TestWatcherReload tests the watcher picks up file changes
func TestWatcherReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfigFile(t, path, "127.0.0.1:8080")

	var reloaded atomic.Pointer[Config]
	w, err := NewWatcher(path, slog.New(slog.DiscardHandler), func(cfg *Config) {
		reloaded.Store(cfg)
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	writeConfigFile(t, path, "127.0.0.1:9999")

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cfg := reloaded.Load(); cfg != nil {
			if cfg.Proxy.ListenAddress != "127.0.0.1:9999" {
				t.Errorf("reloaded listen_address = %q", cfg.Proxy.ListenAddress)
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("watcher did not reload within deadline")
}

// TestWatcherBadReload tests invalid updates keep the previous config
func TestWatcherBadReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfigFile(t, path, "127.0.0.1:8080")

	var calls atomic.Int64
	w, err := NewWatcher(path, slog.New(slog.DiscardHandler), func(*Config) {
		calls.Add(1)
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("proxy: ["), 0o644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(500 * time.Millisecond)
	if calls.Load() != 0 {
		t.Errorf("onReload called %d times for invalid config", calls.Load())
	}
}

// TestWatcherRequiresCallback tests the callback is mandatory
func TestWatcherRequiresCallback(t *testing.T) {
	if _, err := NewWatcher("config.yaml", nil, nil); err == nil {
		t.Error("NewWatcher accepted nil callback")
	}
}

// TestStore tests atomic snapshot swapping
func TestStore(t *testing.T) {
	first := DefaultConfig()
	store := NewStore(first)

	if store.Load() != first {
		t.Error("Load() did not return the initial config")
	}

	second := DefaultConfig()
	second.Proxy.ListenAddress = "0.0.0.0:9000"
	store.Replace(second)

	if got := store.Load(); got != second {
		t.Error("Load() did not return the replaced config")
	}
}
