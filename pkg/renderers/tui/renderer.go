// Package tui walks the quote form as an interactive terminal session and
// serializes the collected values as JSON. It drives prompts through the
// PromptDriver seam so the flow stays testable without a terminal.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-quotewidget/pkg/form"
	"github.com/goliatone/go-quotewidget/pkg/render"
	"github.com/goliatone/go-quotewidget/pkg/widget"
)

// Renderer implements render.Renderer for terminal-driven sessions.
type Renderer struct {
	driver PromptDriver
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer, defaulting to the survey-backed driver.
func New(options ...Option) (*Renderer, error) {
	driver, err := newSurveyDriver()
	if err != nil {
		return nil, err
	}

	r := &Renderer{driver: driver}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "application/json"
}

// collected mirrors the submission payload shape for the prompt-driven
// fields. File attachments have no terminal equivalent and are omitted.
type collected struct {
	FullName        string   `json:"fullName"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	StartDate       string   `json:"startDate"`
	EndDate         string   `json:"endDate"`
	Fulfillment     string   `json:"fulfillment"`
	Location        string   `json:"location,omitempty"`
	EquipmentNeeded []string `json:"equipmentNeeded"`
	Details         string   `json:"details"`
}

// Render prompts through every quote field, validates the result the same
// way a panel submission would, and returns the collected values as JSON.
func (r *Renderer) Render(ctx context.Context, snap widget.Snapshot, _ render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	fields, err := r.promptContact(ctx)
	if err != nil {
		return nil, err
	}

	fulfillment, location, err := r.promptFulfillment(ctx)
	if err != nil {
		return nil, err
	}
	fields.Fulfillment = fulfillment
	fields.Location = location

	equipment, err := r.promptEquipment(ctx, snap)
	if err != nil {
		return nil, err
	}

	details, err := r.driver.TextArea(ctx, TextAreaConfig{
		Message: "Project details",
		Help:    "Anything that helps us size the job.",
	})
	if err != nil {
		return nil, err
	}
	fields.Details = details

	normalized := fields.Trimmed()
	if rej := form.Validate(normalized); rej != nil {
		if infoErr := r.driver.Info(ctx, rej.Message); infoErr != nil {
			return nil, infoErr
		}
		return nil, fmt.Errorf("tui: validate: %w", rej)
	}

	out := collected{
		FullName:        normalized.FullName,
		Email:           normalized.Email,
		Phone:           normalized.Phone,
		StartDate:       normalized.StartDate,
		EndDate:         normalized.EndDate,
		Fulfillment:     normalized.Fulfillment,
		Location:        normalized.Location,
		EquipmentNeeded: equipment,
		Details:         normalized.Details,
	}

	raw, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("tui: serialize values: %w", err)
	}
	return raw, nil
}

func (r *Renderer) promptContact(ctx context.Context) (form.Fields, error) {
	var fields form.Fields

	prompts := []struct {
		message string
		help    string
		target  *string
	}{
		{"Full name", "", &fields.FullName},
		{"Email", "", &fields.Email},
		{"Phone", "", &fields.Phone},
		{"Start date", "Format: YYYY-MM-DD", &fields.StartDate},
		{"End date", "Format: YYYY-MM-DD", &fields.EndDate},
	}

	for _, p := range prompts {
		value, err := r.driver.Input(ctx, InputConfig{
			Message:   p.message,
			Help:      p.help,
			Validator: requireValue(p.message),
		})
		if err != nil {
			return form.Fields{}, err
		}
		*p.target = value
	}
	return fields, nil
}

func (r *Renderer) promptFulfillment(ctx context.Context) (string, string, error) {
	choice, err := r.driver.Select(ctx, SelectConfig{
		Message:      "Delivery or pickup?",
		Options:      []string{"Delivery", "Pickup"},
		DefaultIndex: 0,
	})
	if err != nil {
		return "", "", err
	}
	if choice == 1 {
		return form.FulfillmentPickup, "", nil
	}

	location, err := r.driver.Input(ctx, InputConfig{
		Message:   "Delivery location",
		Validator: requireValue("Delivery location"),
	})
	if err != nil {
		return "", "", err
	}
	return form.FulfillmentDelivery, location, nil
}

func (r *Renderer) promptEquipment(ctx context.Context, snap widget.Snapshot) ([]string, error) {
	if len(snap.Catalog) == 0 {
		return []string{}, nil
	}

	indices, err := r.driver.MultiSelect(ctx, SelectConfig{
		Message:  "Equipment needed",
		Options:  snap.Catalog,
		Defaults: indicesOf(snap.Catalog, snap.Equipment),
		PageSize: 10,
	})
	if err != nil {
		return nil, err
	}

	selected := make([]string, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(snap.Catalog) {
			selected = append(selected, snap.Catalog[idx])
		}
	}
	return selected, nil
}

func requireValue(label string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}
