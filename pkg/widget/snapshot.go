package widget

// Snapshot is the read-only view renderers draw from. Every slice is a copy;
// mutating a snapshot never touches widget state. Renderers request a fresh
// snapshot from their OnChange listener rather than caching one.
type Snapshot struct {
	ClientID     string `json:"clientId"`
	ButtonLabel  string `json:"buttonLabel"`
	PrimaryColor string `json:"primaryColor"`

	Catalog   []string         `json:"catalog"`
	Equipment []string         `json:"equipment"`
	Photos    []FileDescriptor `json:"photos"`
	Docs      []FileDescriptor `json:"docs"`

	Panel      PanelState `json:"panel"`
	Submitting bool       `json:"submitting"`
}

// Snapshot captures the current widget state.
func (w *Widget) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	return Snapshot{
		ClientID:     w.cfg.ClientID,
		ButtonLabel:  w.cfg.ButtonLabel,
		PrimaryColor: w.cfg.PrimaryColor,
		Catalog:      w.catalog.Entries(),
		Equipment:    w.selection.Items(),
		Photos:       w.photos.Items(),
		Docs:         w.docs.Items(),
		Panel:        w.panel,
		Submitting:   w.submitting,
	}
}
