// Package catalog holds the equipment names a visitor can pick from. The
// catalog is fixed at construction time; the dropdown view is derived from it
// with Filter on every keystroke.
package catalog

import "strings"

// DefaultEquipment is the built-in catalog used when the host supplies no
// override.
var DefaultEquipment = []string{
	"Excavator",
	"Bulldozer",
	"Crane",
	"Forklift",
	"Backhoe",
	"Skid Steer",
	"Dump Truck",
	"Roller",
	"Grader",
	"Loader",
}

// Catalog is an ordered, duplicate-free list of equipment names. It is never
// mutated after construction.
type Catalog struct {
	entries []string
}

// New builds a catalog from the provided names, dropping blanks and
// duplicates while preserving first-seen order. With no names, the default
// equipment set is used.
func New(names ...string) *Catalog {
	if len(names) == 0 {
		names = DefaultEquipment
	}

	entries := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		entries = append(entries, trimmed)
	}

	return &Catalog{entries: entries}
}

// Len reports the number of catalog entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Entries returns a copy of the full catalog in order.
func (c *Catalog) Entries() []string {
	if c == nil || len(c.entries) == 0 {
		return nil
	}
	return append([]string(nil), c.entries...)
}

// Contains reports whether name is a catalog entry (exact match).
func (c *Catalog) Contains(name string) bool {
	if c == nil {
		return false
	}
	for _, entry := range c.entries {
		if entry == name {
			return true
		}
	}
	return false
}

// Filter returns the entries matching query as a case-insensitive substring,
// skipping any entry present in excluded. Result order follows catalog order;
// an empty result is a valid outcome, not an error.
func (c *Catalog) Filter(query string, excluded []string) []string {
	if c == nil {
		return nil
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	skip := make(map[string]struct{}, len(excluded))
	for _, name := range excluded {
		skip[name] = struct{}{}
	}

	var out []string
	for _, entry := range c.entries {
		if _, ok := skip[entry]; ok {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(entry), needle) {
			continue
		}
		out = append(out, entry)
	}
	return out
}
