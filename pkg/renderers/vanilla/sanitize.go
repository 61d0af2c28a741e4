package vanilla

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	sanitizeOnce   sync.Once
	sanitizePolicy *bluemonday.Policy
)

// sanitizeText strips any markup from host-provided strings before they
// reach a template. Button labels, catalog names and file names all come
// from the embedding page, so they are never trusted as HTML.
func sanitizeText(value string) string {
	sanitizeOnce.Do(func() {
		sanitizePolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(sanitizePolicy.Sanitize(value))
}

func sanitizeAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		out = append(out, sanitizeText(value))
	}
	return out
}
