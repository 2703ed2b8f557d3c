package wgpu

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
)

// TestLoggerDefaultSilent verifies the default logger discards output
// and reports itself as disabled at every level.
func TestLoggerDefaultSilent(t *testing.T) {
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("Logger() = nil, want non-nil silent logger")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger enabled at error level, want disabled")
	}
}

// TestSetLogger verifies configured loggers receive records.
func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	Logger().Info("probe complete", "adapter", "test")

	if buf.Len() == 0 {
		t.Error("configured logger received no output")
	}
}

// TestSetLoggerConcurrent verifies SetLogger and Logger are safe to call
// from multiple goroutines.
func TestSetLoggerConcurrent(t *testing.T) {
	defer SetLogger(nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
		}()
		go func() {
			defer wg.Done()
			Logger().Debug("concurrent")
		}()
	}
	wg.Wait()
}
