// Package testsupport bundles the small helpers shared by package tests:
// golden file plumbing, config fixtures and a prebuilt widget.
package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-quotewidget/pkg/config"
	"github.com/goliatone/go-quotewidget/pkg/widget"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// MustConfig loads and validates a YAML config fixture.
func MustConfig(t *testing.T, path string) config.Config {
	t.Helper()

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("load config fixture: %v", err)
	}
	return cfg
}

// MustWidget builds a widget from the default config with the success close
// delay disabled, so tests observe panel transitions synchronously.
func MustWidget(t *testing.T, options ...widget.Option) *widget.Widget {
	t.Helper()

	opts := append([]widget.Option{widget.WithCloseDelay(0)}, options...)
	w, err := widget.New(config.Default(), opts...)
	if err != nil {
		t.Fatalf("new widget: %v", err)
	}
	return w
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}
