package pongo_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-quotewidget/pkg/render/template/pongo"
)

func TestEngine_RequiresTemplateSource(t *testing.T) {
	if _, err := pongo.New(); err == nil {
		t.Fatalf("expected construction failure without a template source")
	}
}

func TestEngine_RenderTemplateFromFS(t *testing.T) {
	files := fstest.MapFS{
		"greeting.tmpl": &fstest.MapFile{
			Data: []byte("Hello {{ name }}!"),
		},
	}

	engine, err := pongo.New(pongo.WithFS(files))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderTemplate("greeting", map[string]any{"name": "Crane Co"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Hello Crane Co!" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestEngine_RenderStringWithStructData(t *testing.T) {
	engine, err := pongo.New(pongo.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	data := struct {
		Label string `json:"label"`
	}{Label: "Get a Quote"}

	out, err := engine.RenderString("<button>{{ label }}</button>", data)
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if out != "<button>Get a Quote</button>" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestEngine_RenderDispatchesOnContent(t *testing.T) {
	engine, err := pongo.New(pongo.WithFS(fstest.MapFS{
		"inline.tmpl": &fstest.MapFile{Data: []byte("from file")},
	}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	if out, err := engine.Render("{{ value }}", map[string]any{"value": "inline"}); err != nil || out != "inline" {
		t.Fatalf("inline render: %q, %v", out, err)
	}
	if out, err := engine.Render("inline", nil); err != nil || out != "from file" {
		t.Fatalf("file render: %q, %v", out, err)
	}
}

func TestEngine_FilesizeFilter(t *testing.T) {
	engine, err := pongo.New(pongo.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderString("{{ size|filesize }}", map[string]any{"size": 2048})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "2.0 KB" {
		t.Fatalf("unexpected filesize output: %q", out)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine, err := pongo.New(
		pongo.WithFS(fstest.MapFS{}),
		pongo.WithGlobalData(map[string]any{"brand": "Acme Rentals"}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderString("{{ brand }}", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Acme Rentals" {
		t.Fatalf("global data missing: %q", out)
	}
}

func TestEngine_MissingTemplateFails(t *testing.T) {
	engine, err := pongo.New(pongo.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	if _, err := engine.RenderTemplate("missing", nil); err == nil || !strings.Contains(err.Error(), "missing.tmpl") {
		t.Fatalf("expected load error naming the template, got %v", err)
	}
}
