package tui_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-quotewidget/pkg/form"
	"github.com/goliatone/go-quotewidget/pkg/render"
	"github.com/goliatone/go-quotewidget/pkg/renderers/tui"
	"github.com/goliatone/go-quotewidget/pkg/testsupport"
	"github.com/goliatone/go-quotewidget/pkg/widget"
)

// scriptDriver replays canned answers so sessions run without a terminal.
type scriptDriver struct {
	inputs       []string
	selects      []int
	multiSelects [][]int

	textArea string
	infos    []string

	multiSelectConfigs []tui.SelectConfig
}

func (d *scriptDriver) Input(_ context.Context, cfg tui.InputConfig) (string, error) {
	if len(d.inputs) == 0 {
		return "", errors.New("script exhausted for input: " + cfg.Message)
	}
	value := d.inputs[0]
	d.inputs = d.inputs[1:]
	if cfg.Validator != nil {
		if err := cfg.Validator(value); err != nil {
			return "", err
		}
	}
	return value, nil
}

func (d *scriptDriver) Select(_ context.Context, cfg tui.SelectConfig) (int, error) {
	if len(d.selects) == 0 {
		return 0, errors.New("script exhausted for select: " + cfg.Message)
	}
	choice := d.selects[0]
	d.selects = d.selects[1:]
	return choice, nil
}

func (d *scriptDriver) MultiSelect(_ context.Context, cfg tui.SelectConfig) ([]int, error) {
	d.multiSelectConfigs = append(d.multiSelectConfigs, cfg)
	if len(d.multiSelects) == 0 {
		return nil, errors.New("script exhausted for multi-select: " + cfg.Message)
	}
	indices := d.multiSelects[0]
	d.multiSelects = d.multiSelects[1:]
	return indices, nil
}

func (d *scriptDriver) TextArea(context.Context, tui.TextAreaConfig) (string, error) {
	return d.textArea, nil
}

func (d *scriptDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func newSnapshot(t *testing.T, mutate func(*widget.Widget)) widget.Snapshot {
	t.Helper()
	w := testsupport.MustWidget(t)
	if mutate != nil {
		mutate(w)
	}
	return w.Snapshot()
}

func runSession(t *testing.T, driver *scriptDriver, snap widget.Snapshot) (map[string]any, error) {
	t.Helper()
	renderer, err := tui.New(tui.WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	raw, err := renderer.Render(testsupport.Context(), snap, render.RenderOptions{})
	if err != nil {
		return nil, err
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	return decoded, nil
}

func TestRenderer_DeliverySession(t *testing.T) {
	driver := &scriptDriver{
		inputs: []string{
			"John Smith",
			"john@company.com",
			"(555) 123-4567",
			"2024-05-01",
			"2024-05-10",
			"123 Main St, Springfield",
		},
		selects:      []int{0},
		multiSelects: [][]int{{0, 2}},
		textArea:     "Two week site prep.",
	}

	decoded, err := runSession(t, driver, newSnapshot(t, nil))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if decoded["fulfillment"] != "delivery" {
		t.Fatalf("unexpected fulfillment: %v", decoded["fulfillment"])
	}
	if decoded["location"] != "123 Main St, Springfield" {
		t.Fatalf("unexpected location: %v", decoded["location"])
	}
	if diff := cmp.Diff([]any{"Excavator", "Crane"}, decoded["equipmentNeeded"]); diff != "" {
		t.Fatalf("equipment mismatch (-want +got):\n%s", diff)
	}
	if decoded["details"] != "Two week site prep." {
		t.Fatalf("unexpected details: %v", decoded["details"])
	}
}

func TestRenderer_PickupOmitsLocation(t *testing.T) {
	driver := &scriptDriver{
		inputs: []string{
			"John Smith",
			"john@company.com",
			"(555) 123-4567",
			"2024-05-01",
			"2024-05-10",
		},
		selects:      []int{1},
		multiSelects: [][]int{{}},
		textArea:     "",
	}

	decoded, err := runSession(t, driver, newSnapshot(t, nil))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if decoded["fulfillment"] != "pickup" {
		t.Fatalf("unexpected fulfillment: %v", decoded["fulfillment"])
	}
	if _, present := decoded["location"]; present {
		t.Fatalf("pickup session must omit location, got %v", decoded["location"])
	}
}

func TestRenderer_PreselectedEquipmentBecomesDefaults(t *testing.T) {
	driver := &scriptDriver{
		inputs: []string{
			"John Smith",
			"john@company.com",
			"(555) 123-4567",
			"2024-05-01",
			"2024-05-10",
		},
		selects:      []int{1},
		multiSelects: [][]int{{2}},
		textArea:     "",
	}

	snap := newSnapshot(t, func(w *widget.Widget) {
		w.SelectEquipment("Crane")
	})

	if _, err := runSession(t, driver, snap); err != nil {
		t.Fatalf("render: %v", err)
	}

	if len(driver.multiSelectConfigs) != 1 {
		t.Fatalf("expected one multi-select prompt, got %d", len(driver.multiSelectConfigs))
	}
	if diff := cmp.Diff([]int{2}, driver.multiSelectConfigs[0].Defaults); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_ReversedDatesRejected(t *testing.T) {
	driver := &scriptDriver{
		inputs: []string{
			"John Smith",
			"john@company.com",
			"(555) 123-4567",
			"2024-05-10",
			"2024-05-01",
		},
		selects:      []int{1},
		multiSelects: [][]int{{}},
		textArea:     "",
	}

	_, err := runSession(t, driver, newSnapshot(t, nil))
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	var rej *form.Rejection
	if !errors.As(err, &rej) {
		t.Fatalf("expected rejection in error chain, got %v", err)
	}
	if len(driver.infos) != 1 || driver.infos[0] != "End Date must be after Start Date" {
		t.Fatalf("rejection message not surfaced: %v", driver.infos)
	}
}

func TestRenderer_CancelledContext(t *testing.T) {
	renderer, err := tui.New(tui.WithPromptDriver(&scriptDriver{}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := renderer.Render(ctx, newSnapshot(t, nil), render.RenderOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
