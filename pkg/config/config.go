package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Defaults applied when the host page omits an attribute or a document leaves
// a field blank.
const (
	DefaultClientID     = "default"
	DefaultButtonLabel  = "Get a Quote"
	DefaultPrimaryColor = "#1f2937"
)

// Host-page data attribute names read by FromAttrs. Integrations copy these
// off the embed script tag before constructing the widget.
const (
	AttrClientID     = "data-quote-client"
	AttrPrimaryColor = "data-quote-primary"
	AttrButtonLabel  = "data-quote-button"
)

// Config carries the host-supplied widget settings. It is read once at
// startup and never mutated afterwards; the widget copies what it needs.
type Config struct {
	// ClientID identifies the embedding site in submission payloads.
	ClientID string `yaml:"clientId" validate:"required"`
	// ButtonLabel is the text on the injected trigger button.
	ButtonLabel string `yaml:"buttonLabel" validate:"required"`
	// PrimaryColor themes the widget chrome. Six-digit hex with leading #.
	PrimaryColor string `yaml:"primaryColor" validate:"required,hexcolor,len=7"`
	// Equipment optionally replaces the built-in catalog. Entries are used
	// verbatim; blanks and duplicates are dropped by the catalog constructor.
	Equipment []string `yaml:"equipment,omitempty"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Default returns a Config populated with the built-in defaults.
func Default() Config {
	return Config{
		ClientID:     DefaultClientID,
		ButtonLabel:  DefaultButtonLabel,
		PrimaryColor: DefaultPrimaryColor,
	}
}

// FromAttrs builds a Config from host-page data attributes, falling back to
// the defaults for missing or blank values. Unknown keys are ignored.
func FromAttrs(attrs map[string]string) Config {
	cfg := Default()
	if len(attrs) == 0 {
		return cfg
	}
	if v := strings.TrimSpace(attrs[AttrClientID]); v != "" {
		cfg.ClientID = v
	}
	if v := strings.TrimSpace(attrs[AttrPrimaryColor]); v != "" {
		cfg.PrimaryColor = v
	}
	if v := strings.TrimSpace(attrs[AttrButtonLabel]); v != "" {
		cfg.ButtonLabel = v
	}
	return cfg
}

// WithDefaults returns a copy with blank fields replaced by the defaults.
func (c Config) WithDefaults() Config {
	out := c
	if strings.TrimSpace(out.ClientID) == "" {
		out.ClientID = DefaultClientID
	}
	if strings.TrimSpace(out.ButtonLabel) == "" {
		out.ButtonLabel = DefaultButtonLabel
	}
	if strings.TrimSpace(out.PrimaryColor) == "" {
		out.PrimaryColor = DefaultPrimaryColor
	}
	return out
}

// Validate reports whether the config satisfies the struct constraints,
// notably the six-digit hex requirement on PrimaryColor.
func (c Config) Validate() error {
	if err := structValidator().Struct(c); err != nil {
		return fmt.Errorf("config: validate: %w", err)
	}
	return nil
}
