// Package form models the quote form's transient field values and the
// client-side validation applied before a submission attempt.
package form

import "strings"

// Fulfillment values accepted by the form.
const (
	FulfillmentDelivery = "delivery"
	FulfillmentPickup   = "pickup"
)

// Fields is a snapshot of the form's values at submit time. Values arrive as
// entered; validation and payload assembly trim them.
type Fields struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Fulfillment string `json:"fulfillment"`
	Location    string `json:"location,omitempty"`
	Details     string `json:"details,omitempty"`
	// PageURL records the host page the widget was embedded on. Optional;
	// carried through to the submission payload when present.
	PageURL string `json:"pageUrl,omitempty"`
}

// Trimmed returns a copy with leading/trailing whitespace removed from every
// scalar value and a defaulted fulfillment mode.
func (f Fields) Trimmed() Fields {
	out := Fields{
		FullName:    strings.TrimSpace(f.FullName),
		Email:       strings.TrimSpace(f.Email),
		Phone:       strings.TrimSpace(f.Phone),
		StartDate:   strings.TrimSpace(f.StartDate),
		EndDate:     strings.TrimSpace(f.EndDate),
		Fulfillment: strings.TrimSpace(f.Fulfillment),
		Location:    strings.TrimSpace(f.Location),
		Details:     strings.TrimSpace(f.Details),
		PageURL:     strings.TrimSpace(f.PageURL),
	}
	if out.Fulfillment == "" {
		out.Fulfillment = FulfillmentDelivery
	}
	return out
}
