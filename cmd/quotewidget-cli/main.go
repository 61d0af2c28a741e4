package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	quotewidget "github.com/goliatone/go-quotewidget"
	"github.com/goliatone/go-quotewidget/pkg/config"
	"github.com/goliatone/go-quotewidget/pkg/render"
	"github.com/goliatone/go-quotewidget/pkg/widget"
)

func main() {
	var (
		configFlag   = flag.String("config", "", "Path to a YAML widget config (built-in defaults when empty)")
		rendererFlag = flag.String("renderer", "vanilla", "Renderer to use (vanilla, tui)")
		outputFlag   = flag.String("output", "", "Optional file path for the output (stdout when empty)")
		openFlag     = flag.Bool("open", false, "Render the panel in its open state (vanilla only)")
		timeoutFlag  = flag.Duration("timeout", 5*time.Minute, "Session timeout")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.LoadFile(*configFlag)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	w, err := quotewidget.New(cfg, widget.WithCloseDelay(-1))
	if err != nil {
		log.Fatalf("build widget: %v", err)
	}
	if *openFlag {
		w.Open()
	}

	registry, err := quotewidget.DefaultRegistry()
	if err != nil {
		log.Fatalf("build registry: %v", err)
	}
	renderer, err := registry.Get(*rendererFlag)
	if err != nil {
		log.Fatalf("resolve renderer: %v", err)
	}

	out, err := renderer.Render(ctx, w.Snapshot(), render.RenderOptions{
		Dropdown: w.FilterEquipment(""),
	})
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	if *outputFlag != "" {
		if err := os.WriteFile(*outputFlag, out, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Output written to %s\n", *outputFlag)
		return
	}
	fmt.Println(string(out))
}
