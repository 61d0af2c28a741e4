package widget

// PanelState enumerates the modal panel's two states.
type PanelState string

const (
	// PanelClosed is the initial state.
	PanelClosed PanelState = "closed"
	// PanelOpen means the modal is visible and page scrolling is suppressed.
	PanelOpen PanelState = "open"
)

// ScrollLocker is the renderer-side collaborator that suppresses or restores
// host-page scrolling while the panel is open.
type ScrollLocker interface {
	SetScrollLock(locked bool)
}

// ScrollLockerFunc adapts a function into a ScrollLocker.
type ScrollLockerFunc func(locked bool)

// SetScrollLock calls the underlying function.
func (fn ScrollLockerFunc) SetScrollLock(locked bool) {
	fn(locked)
}

// Open transitions the panel to its open state and engages the scroll lock.
// Opening an already-open panel is a no-op.
func (w *Widget) Open() {
	w.mu.Lock()
	if w.panel == PanelOpen {
		w.mu.Unlock()
		return
	}
	w.panel = PanelOpen
	w.mu.Unlock()

	if w.scroll != nil {
		w.scroll.SetScrollLock(true)
	}
	w.emit(Change{Kind: ChangePanel})
}

// Close transitions the panel to its closed state. The scroll lock is
// released unconditionally so concurrent close triggers (overlay click,
// close button, Escape, post-submit timer) stay idempotent.
func (w *Widget) Close() {
	w.mu.Lock()
	wasOpen := w.panel == PanelOpen
	w.panel = PanelClosed
	w.mu.Unlock()

	if w.scroll != nil {
		w.scroll.SetScrollLock(false)
	}
	if wasOpen {
		w.emit(Change{Kind: ChangePanel})
	}
}

// Panel reports the current panel state.
func (w *Widget) Panel() PanelState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.panel
}
