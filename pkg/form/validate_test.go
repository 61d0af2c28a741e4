package form_test

import (
	"testing"

	"github.com/goliatone/go-quotewidget/pkg/form"
)

func validFields() form.Fields {
	return form.Fields{
		FullName:    "John Smith",
		Email:       "john@company.com",
		Phone:       "(555) 123-4567",
		StartDate:   "2024-05-01",
		EndDate:     "2024-05-10",
		Fulfillment: form.FulfillmentPickup,
	}
}

func TestValidate_AcceptsValidPickup(t *testing.T) {
	if rej := form.Validate(validFields()); rej != nil {
		t.Fatalf("expected acceptance, got rejection: %s", rej.Message)
	}
}

func TestValidate_PickupIgnoresLocation(t *testing.T) {
	fields := validFields()
	fields.Location = ""
	if rej := form.Validate(fields); rej != nil {
		t.Fatalf("pickup with blank location should pass, got: %s", rej.Message)
	}

	fields.Location = "123 Main St"
	if rej := form.Validate(fields); rej != nil {
		t.Fatalf("pickup with location should pass, got: %s", rej.Message)
	}
}

func TestValidate_RequiredFieldsFirstFailureWins(t *testing.T) {
	cases := []struct {
		name  string
		mut   func(*form.Fields)
		field string
	}{
		{"fullName", func(f *form.Fields) { f.FullName = "   " }, "fullName"},
		{"email", func(f *form.Fields) { f.Email = "" }, "email"},
		{"phone", func(f *form.Fields) { f.Phone = "\t" }, "phone"},
		{"startDate", func(f *form.Fields) { f.StartDate = "" }, "startDate"},
		{"endDate", func(f *form.Fields) { f.EndDate = "" }, "endDate"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := validFields()
			tc.mut(&fields)

			rej := form.Validate(fields)
			if rej == nil {
				t.Fatalf("expected rejection for blank %s", tc.name)
			}
			if rej.Field != tc.field {
				t.Fatalf("field: want %s, got %s", tc.field, rej.Field)
			}
			want := "Please fill in: " + tc.field
			if rej.Message != want {
				t.Fatalf("message: want %q, got %q", want, rej.Message)
			}
		})
	}
}

func TestValidate_MissingNameReportedBeforeDates(t *testing.T) {
	fields := validFields()
	fields.FullName = ""
	fields.StartDate = "2024-05-10"
	fields.EndDate = "2024-05-01"

	rej := form.Validate(fields)
	if rej == nil || rej.Field != "fullName" {
		t.Fatalf("expected fullName rejection first, got %+v", rej)
	}
}

func TestValidate_RejectsReversedDates(t *testing.T) {
	fields := validFields()
	fields.StartDate = "2024-05-10"
	fields.EndDate = "2024-05-01"

	rej := form.Validate(fields)
	if rej == nil {
		t.Fatalf("expected rejection for reversed dates")
	}
	if rej.Message != "End Date must be after Start Date" {
		t.Fatalf("unexpected message: %q", rej.Message)
	}
}

func TestValidate_AcceptsEqualDates(t *testing.T) {
	fields := validFields()
	fields.StartDate = "2024-05-10"
	fields.EndDate = "2024-05-10"

	if rej := form.Validate(fields); rej != nil {
		t.Fatalf("equal dates should pass, got: %s", rej.Message)
	}
}

func TestValidate_DeliveryRequiresLocation(t *testing.T) {
	fields := validFields()
	fields.Fulfillment = form.FulfillmentDelivery
	fields.Location = "   "

	rej := form.Validate(fields)
	if rej == nil {
		t.Fatalf("expected rejection for delivery without location")
	}
	if rej.Message != "Please enter a delivery location" {
		t.Fatalf("unexpected message: %q", rej.Message)
	}
}

func TestValidate_BlankFulfillmentDefaultsToDelivery(t *testing.T) {
	fields := validFields()
	fields.Fulfillment = ""
	fields.Location = ""

	rej := form.Validate(fields)
	if rej == nil || rej.Field != "location" {
		t.Fatalf("expected delivery-location rejection, got %+v", rej)
	}
}

func TestTrimmed_NormalizesScalars(t *testing.T) {
	fields := form.Fields{FullName: "  Ada Lovelace  ", Fulfillment: " pickup "}

	got := fields.Trimmed()
	if got.FullName != "Ada Lovelace" {
		t.Fatalf("full name not trimmed: %q", got.FullName)
	}
	if got.Fulfillment != form.FulfillmentPickup {
		t.Fatalf("fulfillment not trimmed: %q", got.Fulfillment)
	}
}
