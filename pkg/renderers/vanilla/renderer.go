// Package vanilla renders the quote widget as self-contained HTML driven by
// pongo2 templates. The markup mirrors the framework-free embed target: a
// trigger button plus a slide-over panel holding the quote form.
package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/goliatone/go-quotewidget/pkg/render"
	rendertemplate "github.com/goliatone/go-quotewidget/pkg/render/template"
	"github.com/goliatone/go-quotewidget/pkg/render/template/pongo"
	"github.com/goliatone/go-quotewidget/pkg/theming"
	"github.com/goliatone/go-quotewidget/pkg/widget"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, snap widget.Snapshot, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate("templates/widget.tmpl", viewData(snap, options))
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// viewData sanitizes every host-provided string and flattens theming into a
// deterministic inline style, so templates only interpolate.
func viewData(snap widget.Snapshot, options render.RenderOptions) map[string]any {
	snap.ButtonLabel = sanitizeText(snap.ButtonLabel)
	snap.ClientID = sanitizeText(snap.ClientID)
	snap.Catalog = sanitizeAll(snap.Catalog)
	snap.Equipment = sanitizeAll(snap.Equipment)
	for i := range snap.Photos {
		snap.Photos[i].Name = sanitizeText(snap.Photos[i].Name)
	}
	for i := range snap.Docs {
		snap.Docs[i].Name = sanitizeText(snap.Docs[i].Name)
	}

	themeCfg := options.Theme
	if themeCfg == nil {
		themeCfg = theming.RendererConfig(snap.PrimaryColor)
	}

	return map[string]any{
		"widget":   snap,
		"query":    sanitizeText(options.Query),
		"dropdown": sanitizeAll(options.Dropdown),
		"values":   options.Values,
		"style":    inlineStyle(themeCfg.CSSVars),
	}
}

func inlineStyle(vars map[string]string) string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteString(":")
		b.WriteString(vars[name])
		b.WriteString(";")
	}
	return b.String()
}
