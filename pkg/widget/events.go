package widget

// ChangeKind labels which slice of widget state mutated. Renderers subscribe
// with OnChange and re-draw the affected region from a fresh Snapshot.
type ChangeKind string

const (
	// ChangeSelection fires when the equipment tag list mutates.
	ChangeSelection ChangeKind = "selection"
	// ChangeFiles fires when either file bucket mutates; Bucket names which.
	ChangeFiles ChangeKind = "files"
	// ChangePanel fires on open/close transitions.
	ChangePanel ChangeKind = "panel"
	// ChangeSubmission fires when the pipeline enters or leaves its busy
	// state, and after a successful submission resets the form state.
	ChangeSubmission ChangeKind = "submission"
)

// Bucket identifies one of the two file buckets in a ChangeFiles event.
type Bucket string

const (
	BucketPhotos Bucket = "photos"
	BucketDocs   Bucket = "docs"
)

// Change describes a single state mutation.
type Change struct {
	Kind ChangeKind
	// Bucket is set for ChangeFiles events, empty otherwise.
	Bucket Bucket
}

// Notifier receives the transient, user-visible messages the pipeline emits:
// validation rejections, submission failures, and the success confirmation.
// Implementations typically render an auto-dismissing toast.
type Notifier interface {
	Notify(message string, isError bool)
}

// NotifierFunc adapts a function into a Notifier.
type NotifierFunc func(message string, isError bool)

// Notify calls the underlying function.
func (fn NotifierFunc) Notify(message string, isError bool) {
	fn(message, isError)
}

type noopNotifier struct{}

func (noopNotifier) Notify(string, bool) {}

// OnChange registers a listener for state mutations. Listeners run
// synchronously after the mutation completes and must not block; they may
// read a fresh Snapshot but should not mutate the widget re-entrantly.
func (w *Widget) OnChange(fn func(Change)) {
	if fn == nil {
		return
	}
	w.mu.Lock()
	w.listeners = append(w.listeners, fn)
	w.mu.Unlock()
}

func (w *Widget) emit(change Change) {
	w.mu.Lock()
	listeners := append([]func(Change){}, w.listeners...)
	w.mu.Unlock()

	for _, fn := range listeners {
		fn(change)
	}
}
