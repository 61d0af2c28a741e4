// Package template defines the rendering engine seam used by the HTML
// renderer. Keeping the contract separate from the pongo adapter lets hosts
// swap in their own engine without importing pongo2.
package template

import (
	"io"
)

// TemplateRenderer is the engine contract the vanilla renderer draws on.
// Render picks between named-template and inline-content execution, the
// rest of the methods map directly onto the underlying engine.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
