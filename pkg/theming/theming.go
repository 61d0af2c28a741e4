// Package theming derives the widget's presentation values from the
// configured primary color. Renderers receive the results as resolved theme
// configuration; they never recompute contrast or CSS variables themselves.
package theming

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Text colors chosen against the primary background.
const (
	TextDark  = "#000000"
	TextLight = "#ffffff"
)

// CSS custom property names exposed to renderers.
const (
	VarPrimary       = "--qw-primary"
	VarPrimaryRGB    = "--qw-primary-rgb"
	VarTextOnPrimary = "--qw-text-on-primary"
)

// fallback matches the default primary color #1f2937.
var fallback = RGB{R: 31, G: 41, B: 55}

var hexPattern = regexp.MustCompile(`^#?([a-fA-F\d]{2})([a-fA-F\d]{2})([a-fA-F\d]{2})$`)

// RGB holds an 8-bit color triple.
type RGB struct {
	R, G, B uint8
}

// String renders the triple as "r,g,b" for CSS rgb() interpolation.
func (c RGB) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// ParseHex decodes a six-digit hex color, with or without the leading #.
// Malformed input falls back to the default primary rather than erroring so
// a bad host attribute can never break rendering.
func ParseHex(hex string) RGB {
	m := hexPattern.FindStringSubmatch(strings.TrimSpace(hex))
	if m == nil {
		return fallback
	}
	r, _ := strconv.ParseUint(m[1], 16, 8)
	g, _ := strconv.ParseUint(m[2], 16, 8)
	b, _ := strconv.ParseUint(m[3], 16, 8)
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// Luminance computes the perceived brightness of a color in [0, 1].
func Luminance(c RGB) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// ContrastColor picks the text color for content drawn on the primary color:
// black above the 0.55 luminance threshold, white at or below it.
func ContrastColor(primary string) string {
	if Luminance(ParseHex(primary)) > 0.55 {
		return TextDark
	}
	return TextLight
}

// CSSVars derives the custom properties the widget chrome consumes.
func CSSVars(primary string) map[string]string {
	rgb := ParseHex(primary)
	return map[string]string{
		VarPrimary:       normalizeHex(primary),
		VarPrimaryRGB:    rgb.String(),
		VarTextOnPrimary: ContrastColor(primary),
	}
}

// RendererConfig packages the derived values as a go-theme renderer
// configuration so renderers consume theming through the same seam the rest
// of the toolkit uses.
func RendererConfig(primary string) *theme.RendererConfig {
	return &theme.RendererConfig{
		Theme: "quote-widget",
		Tokens: map[string]string{
			"primary":         normalizeHex(primary),
			"text-on-primary": ContrastColor(primary),
		},
		CSSVars: CSSVars(primary),
	}
}

func normalizeHex(hex string) string {
	trimmed := strings.TrimSpace(hex)
	if hexPattern.MatchString(trimmed) {
		if !strings.HasPrefix(trimmed, "#") {
			trimmed = "#" + trimmed
		}
		return strings.ToLower(trimmed)
	}
	return fmt.Sprintf("#%02x%02x%02x", fallback.R, fallback.G, fallback.B)
}
