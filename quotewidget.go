// Package quotewidget is the embeddable quote request widget engine: a
// trigger button and slide-over panel where visitors pick rental equipment,
// attach files and submit a quote request. The root package re-exports the
// common types and wires sensible defaults so most hosts only import this
// package.
package quotewidget

import (
	"context"
	"fmt"

	"github.com/goliatone/go-quotewidget/pkg/config"
	"github.com/goliatone/go-quotewidget/pkg/form"
	"github.com/goliatone/go-quotewidget/pkg/render"
	"github.com/goliatone/go-quotewidget/pkg/renderers/tui"
	"github.com/goliatone/go-quotewidget/pkg/renderers/vanilla"
	"github.com/goliatone/go-quotewidget/pkg/submit"
	"github.com/goliatone/go-quotewidget/pkg/theming"
	"github.com/goliatone/go-quotewidget/pkg/widget"
)

// Config holds the host-provided widget settings.
type Config = config.Config

// Fields carries the raw form values a host hands to Submit.
type Fields = form.Fields

// Payload is the wire shape delivered to the configured Submitter.
type Payload = widget.Payload

// FileDescriptor describes one attached photo or document.
type FileDescriptor = widget.FileDescriptor

// Snapshot is an immutable copy of the widget state for rendering.
type Snapshot = widget.Snapshot

// RenderOptions carries per-render inputs alongside a snapshot.
type RenderOptions = render.RenderOptions

// Widget is the interaction engine. Construct it with New.
type Widget = widget.Widget

// Option configures the widget at construction time.
type Option = widget.Option

// New builds a widget from cfg with the simulated submitter installed as the
// default transport. Options apply afterwards, so widget.WithSubmitter
// replaces the simulator when a real transport is available.
func New(cfg Config, options ...Option) (*Widget, error) {
	opts := append([]Option{widget.WithSubmitter(submit.NewSimulator())}, options...)
	return widget.New(cfg, opts...)
}

// FromAttrs builds a widget from embed-style data attributes, the same way
// the script tag integration reads them off its own element.
func FromAttrs(attrs map[string]string, options ...Option) (*Widget, error) {
	return New(config.FromAttrs(attrs), options...)
}

// DefaultRegistry returns a registry with the built-in renderers installed.
func DefaultRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()

	html, err := vanilla.New()
	if err != nil {
		return nil, fmt.Errorf("quotewidget: configure vanilla renderer: %w", err)
	}
	if err := registry.Register(html); err != nil {
		return nil, err
	}

	terminal, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("quotewidget: configure tui renderer: %w", err)
	}
	if err := registry.Register(terminal); err != nil {
		return nil, err
	}

	return registry, nil
}

// RenderHTML renders the widget's current state with the vanilla renderer,
// deriving theming from the configured primary color. It is the simplest
// entry point for callers that just want markup.
func RenderHTML(ctx context.Context, w *Widget, options RenderOptions) ([]byte, error) {
	if w == nil {
		return nil, fmt.Errorf("quotewidget: widget is required")
	}

	renderer, err := vanilla.New()
	if err != nil {
		return nil, fmt.Errorf("quotewidget: configure vanilla renderer: %w", err)
	}

	snap := w.Snapshot()
	if options.Theme == nil {
		options.Theme = theming.RendererConfig(snap.PrimaryColor)
	}
	return renderer.Render(ctx, snap, options)
}
