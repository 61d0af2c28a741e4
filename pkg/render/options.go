package render

import theme "github.com/goliatone/go-theme"

// RenderOptions carries per-render data that varies independently of the
// widget state snapshot.
type RenderOptions struct {
	// Theme holds the resolved theming values (tokens and CSS variables)
	// derived from the configured primary color. Renderers interpolate these
	// as-is and never recompute contrast themselves.
	Theme *theme.RendererConfig
	// Query is the current equipment search text, echoed into the search
	// input.
	Query string
	// Dropdown is the filtered candidate list for the current query, as
	// produced by Widget.FilterEquipment. An empty list renders the
	// "no matches" placeholder.
	Dropdown []string
	// Values pre-populates form inputs keyed by their wire names, for
	// re-rendering after a failed submission.
	Values map[string]string
}
