package widget

import "strings"

// SelectionSet is the ordered, duplicate-free list of equipment names the
// visitor has tagged. Order is append order; removal tolerates stale indices
// from delayed UI events by treating out-of-range positions as a no-op.
type SelectionSet struct {
	items []string
}

// NewSelectionSet returns an empty selection.
func NewSelectionSet() *SelectionSet {
	return &SelectionSet{}
}

// Add appends name unless it is blank or already selected. Reports whether
// the selection changed; a duplicate pick from the dropdown must not create a
// second tag.
func (s *SelectionSet) Add(name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || s.Contains(trimmed) {
		return false
	}
	s.items = append(s.items, trimmed)
	return true
}

// Remove deletes name by value. Reports whether anything was removed.
func (s *SelectionSet) Remove(name string) bool {
	for i, item := range s.items {
		if item == name {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAt deletes the element at index. Out-of-range indices are a no-op so
// the UI can race renders against event dispatch without erroring.
func (s *SelectionSet) RemoveAt(index int) bool {
	if index < 0 || index >= len(s.items) {
		return false
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	return true
}

// Clear empties the selection. Called after a successful submission.
func (s *SelectionSet) Clear() {
	s.items = nil
}

// Contains reports whether name is currently selected.
func (s *SelectionSet) Contains(name string) bool {
	for _, item := range s.items {
		if item == name {
			return true
		}
	}
	return false
}

// Len reports the number of selected names.
func (s *SelectionSet) Len() int {
	return len(s.items)
}

// Items returns a copy of the selection in append order.
func (s *SelectionSet) Items() []string {
	if len(s.items) == 0 {
		return nil
	}
	return append([]string(nil), s.items...)
}
