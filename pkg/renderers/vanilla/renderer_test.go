package vanilla_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-quotewidget/pkg/config"
	"github.com/goliatone/go-quotewidget/pkg/render"
	"github.com/goliatone/go-quotewidget/pkg/render/template/pongo"
	"github.com/goliatone/go-quotewidget/pkg/renderers/vanilla"
	"github.com/goliatone/go-quotewidget/pkg/testsupport"
	"github.com/goliatone/go-quotewidget/pkg/widget"
)

func newSnapshot(t *testing.T, mutate func(*widget.Widget)) widget.Snapshot {
	t.Helper()
	w := testsupport.MustWidget(t)
	if mutate != nil {
		mutate(w)
	}
	return w.Snapshot()
}

func renderHTML(t *testing.T, snap widget.Snapshot, options render.RenderOptions) string {
	t.Helper()
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(testsupport.Context(), snap, options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRenderer_Identity(t *testing.T) {
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if renderer.Name() != "vanilla" {
		t.Fatalf("unexpected name: %s", renderer.Name())
	}
	if renderer.ContentType() != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type: %s", renderer.ContentType())
	}
}

func TestRenderer_ClosedWidget(t *testing.T) {
	html := renderHTML(t, newSnapshot(t, nil), render.RenderOptions{})

	for _, want := range []string{
		`data-quote-client="default"`,
		`class="qw-trigger">Get a Quote</button>`,
		"--qw-primary:#1f2937;",
		"--qw-text-on-primary:#ffffff;",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("missing %q in output:\n%s", want, html)
		}
	}
	if strings.Contains(html, "qw-panel--open") {
		t.Fatalf("closed widget must not render an open panel")
	}
}

func TestRenderer_OpenWidgetWithState(t *testing.T) {
	snap := newSnapshot(t, func(w *widget.Widget) {
		w.Open()
		w.SelectEquipment("Crane")
		w.AddPhoto(widget.FileDescriptor{Name: "site.jpg", Size: 2048, MediaType: "image/jpeg"})
	})

	html := renderHTML(t, snap, render.RenderOptions{
		Query:    "exc",
		Dropdown: []string{"Excavator"},
	})

	for _, want := range []string{
		"qw-panel--open",
		`aria-hidden="false"`,
		`class="qw-tag">Crane<`,
		`class="qw-dropdown__item">Excavator</li>`,
		`value="exc"`,
		"site.jpg",
		"2.0 KB",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("missing %q in output:\n%s", want, html)
		}
	}
}

func TestRenderer_EmptyDropdownShowsPlaceholder(t *testing.T) {
	html := renderHTML(t, newSnapshot(t, nil), render.RenderOptions{
		Query:    "zzz",
		Dropdown: nil,
	})

	if !strings.Contains(html, "No matching equipment") {
		t.Fatalf("expected empty dropdown placeholder:\n%s", html)
	}
}

func TestRenderer_PrefillsValuesAfterFailedSubmit(t *testing.T) {
	html := renderHTML(t, newSnapshot(t, nil), render.RenderOptions{
		Values: map[string]string{
			"fullName":    "John Smith",
			"fulfillment": "pickup",
		},
	})

	if !strings.Contains(html, `value="John Smith"`) {
		t.Fatalf("expected prefilled full name:\n%s", html)
	}
	if !strings.Contains(html, `value="pickup" selected`) {
		t.Fatalf("expected pickup to stay selected:\n%s", html)
	}
	if !strings.Contains(html, "qw-field--hidden") {
		t.Fatalf("location field should be hidden for pickup:\n%s", html)
	}
}

func TestRenderer_StripsHostMarkup(t *testing.T) {
	cfg := config.Default()
	cfg.ButtonLabel = `<script>alert(1)</script>Get a Quote`

	w, err := widget.New(cfg, widget.WithCloseDelay(0))
	if err != nil {
		t.Fatalf("new widget: %v", err)
	}

	html := renderHTML(t, w.Snapshot(), render.RenderOptions{})
	if strings.Contains(html, "<script>") {
		t.Fatalf("host markup leaked into output:\n%s", html)
	}
	if !strings.Contains(html, "Get a Quote") {
		t.Fatalf("label text lost during sanitization:\n%s", html)
	}
}

func TestTriggerTemplateGolden(t *testing.T) {
	engine, err := pongo.New(
		pongo.WithFS(vanilla.TemplatesFS()),
		pongo.WithExtension(".tmpl"),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderTemplate("templates/trigger", map[string]any{
		"widget": map[string]any{"buttonLabel": "Get a Quote"},
	})
	if err != nil {
		t.Fatalf("render trigger: %v", err)
	}

	golden := filepath.Join("testdata", "trigger.golden")
	if testsupport.WriteMaybeGolden(t, golden, []byte(out)) {
		return
	}
	want := testsupport.MustReadGoldenString(t, golden)
	if diff := testsupport.CompareGolden(want, out); diff != "" {
		t.Fatalf("trigger markup mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_CancelledContext(t *testing.T) {
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := renderer.Render(ctx, newSnapshot(t, nil), render.RenderOptions{}); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}
