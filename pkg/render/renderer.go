package render

import (
	"context"

	"github.com/goliatone/go-quotewidget/pkg/widget"
)

// Renderer converts a widget snapshot into a byte representation (HTML for
// the vanilla renderer, collected form values for the TUI). Renderers draw
// exclusively from the snapshot and options; they never reach back into the
// widget.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, snap widget.Snapshot, options RenderOptions) ([]byte, error)
}
