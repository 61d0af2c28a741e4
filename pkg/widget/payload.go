package widget

import (
	"context"

	"github.com/goliatone/go-quotewidget/pkg/form"
)

// Payload is the immutable submission snapshot handed to the Submitter. It
// is built fresh for every attempt and carries descriptor copies only; raw
// file bytes are deliberately absent.
type Payload struct {
	ClientID string `json:"clientId"`
	PageURL  string `json:"pageUrl,omitempty"`

	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	Fulfillment string `json:"fulfillment"`
	// Location is omitted from the serialized payload entirely when blank;
	// an empty string and an absent field are distinct to consumers.
	Location string `json:"location,omitempty"`

	EquipmentNeeded []string `json:"equipmentNeeded"`
	Details         string   `json:"details"`

	Photos []FileDescriptor `json:"photos"`
	Docs   []FileDescriptor `json:"docs"`
}

// Submitter is the external collaborator that transports an assembled
// payload. A nil error means logical acceptance; any error is treated as a
// submission failure and surfaced as a retryable notification. Transport
// timeouts are the submitter's concern, typically via the context.
type Submitter interface {
	Submit(ctx context.Context, payload Payload) error
}

// SubmitterFunc adapts a function into a Submitter.
type SubmitterFunc func(ctx context.Context, payload Payload) error

// Submit calls the underlying function.
func (fn SubmitterFunc) Submit(ctx context.Context, payload Payload) error {
	return fn(ctx, payload)
}

// buildPayload snapshots config, trimmed fields, and copies of the selection
// and both buckets. Callers hold no lock; the widget locks internally.
func (w *Widget) buildPayload(fields form.Fields) Payload {
	f := fields.Trimmed()

	// Location travels only on delivery requests; pickup ignores whatever the
	// hidden field held.
	location := ""
	if f.Fulfillment == form.FulfillmentDelivery {
		location = f.Location
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	equipment := w.selection.Items()
	if equipment == nil {
		equipment = []string{}
	}
	photos := w.photos.Items()
	if photos == nil {
		photos = []FileDescriptor{}
	}
	docs := w.docs.Items()
	if docs == nil {
		docs = []FileDescriptor{}
	}

	return Payload{
		ClientID:        w.cfg.ClientID,
		PageURL:         f.PageURL,
		FullName:        f.FullName,
		Email:           f.Email,
		Phone:           f.Phone,
		StartDate:       f.StartDate,
		EndDate:         f.EndDate,
		Fulfillment:     f.Fulfillment,
		Location:        location,
		EquipmentNeeded: equipment,
		Details:         f.Details,
		Photos:          photos,
		Docs:            docs,
	}
}
