// Package widget implements the quote widget's state and interaction engine:
// equipment selection, file bookkeeping, the panel state machine, and the
// validation/submission pipeline. Rendering and transport stay outside; the
// engine exposes mutation methods, read-only snapshots, and change
// notifications for renderers to subscribe to.
package widget

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-quotewidget/pkg/catalog"
	"github.com/goliatone/go-quotewidget/pkg/config"
	"github.com/goliatone/go-quotewidget/pkg/form"
)

// DefaultCloseDelay is how long the success notification stays on screen
// before the panel closes on its own.
const DefaultCloseDelay = 900 * time.Millisecond

// ErrSubmissionInFlight is returned when Submit is called while a previous
// attempt is still awaiting its submitter. The second call is rejected, not
// queued; exactly one collaborator invocation happens per busy window.
var ErrSubmissionInFlight = errors.New("widget: submission already in flight")

// Option customises a Widget at construction time.
type Option func(*Widget)

// WithSubmitter injects the transport collaborator invoked with each
// assembled payload.
func WithSubmitter(submitter Submitter) Option {
	return func(w *Widget) {
		if submitter != nil {
			w.submitter = submitter
		}
	}
}

// WithNotifier injects the toast collaborator that shows user-facing
// messages. Without one, messages are dropped.
func WithNotifier(notifier Notifier) Option {
	return func(w *Widget) {
		if notifier != nil {
			w.notifier = notifier
		}
	}
}

// WithScrollLocker injects the collaborator that suppresses host-page
// scrolling while the panel is open.
func WithScrollLocker(locker ScrollLocker) Option {
	return func(w *Widget) {
		w.scroll = locker
	}
}

// WithCatalog replaces the equipment catalog, overriding both the built-in
// defaults and any config-supplied list.
func WithCatalog(c *catalog.Catalog) Option {
	return func(w *Widget) {
		if c != nil {
			w.catalog = c
		}
	}
}

// WithCloseDelay overrides how long the panel stays open after a successful
// submission. Zero closes synchronously; negative disables the auto-close.
func WithCloseDelay(delay time.Duration) Option {
	return func(w *Widget) {
		w.closeDelay = delay
	}
}

// WithLogger injects a slog logger for pipeline diagnostics. Validation
// rejections are user-correctable and are never logged; submission failures
// record their cause here without exposing it to the visitor.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Widget) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// Widget owns all core state for one embedded widget instance. Construct as
// many instances as needed; nothing is shared between them. All state is
// guarded by one mutex so the engine stays safe if the host integration runs
// callbacks off multiple goroutines, though a single logical owner is the
// expected arrangement.
type Widget struct {
	mu sync.Mutex

	cfg       config.Config
	catalog   *catalog.Catalog
	selection *SelectionSet
	photos    *FileBucket
	docs      *FileBucket
	panel     PanelState

	submitting bool
	submitter  Submitter
	notifier   Notifier
	scroll     ScrollLocker
	listeners  []func(Change)

	closeDelay time.Duration
	logger     *slog.Logger
}

// New constructs a widget from the host configuration. Blank config fields
// pick up the defaults before validation; a config-supplied equipment list
// overrides the built-in catalog.
func New(cfg config.Config, options ...Option) (*Widget, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := &Widget{
		cfg:        cfg,
		catalog:    catalog.New(cfg.Equipment...),
		selection:  NewSelectionSet(),
		photos:     NewFileBucket(),
		docs:       NewFileBucket(),
		panel:      PanelClosed,
		notifier:   noopNotifier{},
		closeDelay: DefaultCloseDelay,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}

	return w, nil
}

// Config returns the immutable host configuration.
func (w *Widget) Config() config.Config {
	return w.cfg
}

// FilterEquipment returns the dropdown view for the current query: catalog
// entries matching the query case-insensitively, minus anything already
// selected, in catalog order.
func (w *Widget) FilterEquipment(query string) []string {
	w.mu.Lock()
	excluded := w.selection.Items()
	w.mu.Unlock()
	return w.catalog.Filter(query, excluded)
}

// SelectEquipment tags a catalog entry. Names outside the catalog and
// duplicate picks are ignored. Reports whether the selection changed.
func (w *Widget) SelectEquipment(name string) bool {
	if !w.catalog.Contains(name) {
		return false
	}
	w.mu.Lock()
	changed := w.selection.Add(name)
	w.mu.Unlock()

	if changed {
		w.emit(Change{Kind: ChangeSelection})
	}
	return changed
}

// DeselectEquipment removes a tag by value, the preferred identity-based
// removal path.
func (w *Widget) DeselectEquipment(name string) bool {
	w.mu.Lock()
	changed := w.selection.Remove(name)
	w.mu.Unlock()

	if changed {
		w.emit(Change{Kind: ChangeSelection})
	}
	return changed
}

// RemoveEquipmentAt removes a tag by position; stale indices are a no-op.
func (w *Widget) RemoveEquipmentAt(index int) bool {
	w.mu.Lock()
	changed := w.selection.RemoveAt(index)
	w.mu.Unlock()

	if changed {
		w.emit(Change{Kind: ChangeSelection})
	}
	return changed
}

// Equipment returns a copy of the current tag list.
func (w *Widget) Equipment() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.selection.Items()
}

// AddPhoto appends a picked file's descriptor to the photo bucket.
func (w *Widget) AddPhoto(desc FileDescriptor) {
	w.mu.Lock()
	w.photos.Append(desc)
	w.mu.Unlock()
	w.emit(Change{Kind: ChangeFiles, Bucket: BucketPhotos})
}

// RemovePhotoAt removes a photo descriptor by position; stale indices no-op.
func (w *Widget) RemovePhotoAt(index int) bool {
	w.mu.Lock()
	changed := w.photos.RemoveAt(index)
	w.mu.Unlock()

	if changed {
		w.emit(Change{Kind: ChangeFiles, Bucket: BucketPhotos})
	}
	return changed
}

// Photos returns a copy of the photo bucket contents.
func (w *Widget) Photos() []FileDescriptor {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.photos.Items()
}

// AddDocument appends a picked file's descriptor to the document bucket.
func (w *Widget) AddDocument(desc FileDescriptor) {
	w.mu.Lock()
	w.docs.Append(desc)
	w.mu.Unlock()
	w.emit(Change{Kind: ChangeFiles, Bucket: BucketDocs})
}

// RemoveDocumentAt removes a document descriptor by position; stale indices
// no-op.
func (w *Widget) RemoveDocumentAt(index int) bool {
	w.mu.Lock()
	changed := w.docs.RemoveAt(index)
	w.mu.Unlock()

	if changed {
		w.emit(Change{Kind: ChangeFiles, Bucket: BucketDocs})
	}
	return changed
}

// Documents returns a copy of the document bucket contents.
func (w *Widget) Documents() []FileDescriptor {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.docs.Items()
}

// Submitting reports whether a submission attempt is in flight.
func (w *Widget) Submitting() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.submitting
}

// Submit runs the pipeline: guard the busy flag, validate the field
// snapshot, assemble the payload, invoke the submitter, then either reset
// state and schedule the panel close (success) or leave everything intact
// for a retry (failure). All outcomes are surfaced through the notifier; the
// returned error exists for the embedding integration and tests, and no
// call ever panics across this boundary.
//
// Tag and file mutations stay enabled while a submission is in flight; only
// a second Submit is rejected.
func (w *Widget) Submit(ctx context.Context, fields form.Fields) error {
	if ctx == nil {
		return errors.New("widget: context is required")
	}

	w.mu.Lock()
	if w.submitter == nil {
		w.mu.Unlock()
		return errors.New("widget: submitter is required")
	}
	if w.submitting {
		w.mu.Unlock()
		return ErrSubmissionInFlight
	}
	w.submitting = true
	w.mu.Unlock()
	w.emit(Change{Kind: ChangeSubmission})

	defer func() {
		w.mu.Lock()
		w.submitting = false
		w.mu.Unlock()
		w.emit(Change{Kind: ChangeSubmission})
	}()

	if rej := form.Validate(fields); rej != nil {
		w.notifier.Notify(rej.Message, true)
		return fmt.Errorf("widget: validate: %w", rej)
	}

	payload := w.buildPayload(fields)
	attempt := uuid.NewString()
	w.logger.Debug("submitting quote request",
		"attempt", attempt,
		"client_id", payload.ClientID,
		"equipment", len(payload.EquipmentNeeded),
		"photos", len(payload.Photos),
		"docs", len(payload.Docs),
	)

	if err := w.submitter.Submit(ctx, payload); err != nil {
		w.logger.Error("quote submission failed", "attempt", attempt, "error", err)
		w.notifier.Notify("Something went wrong. Please try again.", true)
		return fmt.Errorf("widget: submit: %w", err)
	}

	w.logger.Debug("quote request accepted", "attempt", attempt)
	w.notifier.Notify("Submitted.", false)
	w.resetAfterSuccess()
	w.scheduleClose()
	return nil
}

func (w *Widget) resetAfterSuccess() {
	w.mu.Lock()
	w.selection.Clear()
	w.photos.Clear()
	w.docs.Clear()
	w.mu.Unlock()

	w.emit(Change{Kind: ChangeSelection})
	w.emit(Change{Kind: ChangeFiles, Bucket: BucketPhotos})
	w.emit(Change{Kind: ChangeFiles, Bucket: BucketDocs})
}

func (w *Widget) scheduleClose() {
	switch {
	case w.closeDelay < 0:
		// auto-close disabled
	case w.closeDelay == 0:
		w.Close()
	default:
		time.AfterFunc(w.closeDelay, w.Close)
	}
}
