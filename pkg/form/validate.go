package form

import "fmt"

// Rejection describes why a submission attempt was refused. The message is
// user-facing; it is surfaced as a transient notification, never logged as a
// system error.
type Rejection struct {
	// Field names the offending input when the failure is field-specific.
	Field string
	// Message is the human-readable reason shown to the visitor.
	Message string
}

// Error satisfies the error interface so pipelines can wrap rejections.
func (r *Rejection) Error() string {
	return r.Message
}

// requiredFields lists the always-required inputs in evaluation order. The
// identifiers match the form's wire names and appear verbatim in messages.
var requiredFields = []struct {
	name  string
	value func(Fields) string
}{
	{"fullName", func(f Fields) string { return f.FullName }},
	{"email", func(f Fields) string { return f.Email }},
	{"phone", func(f Fields) string { return f.Phone }},
	{"startDate", func(f Fields) string { return f.StartDate }},
	{"endDate", func(f Fields) string { return f.EndDate }},
}

// Validate applies the client-side rules in order, returning the first
// failure. Rules: the five required fields must be non-empty after trimming;
// startDate must not exceed endDate (ISO dates compare lexically); delivery
// fulfillment requires a location. Email and phone contents are deliberately
// not format-checked.
func Validate(fields Fields) *Rejection {
	f := fields.Trimmed()

	for _, req := range requiredFields {
		if req.value(f) == "" {
			return &Rejection{
				Field:   req.name,
				Message: fmt.Sprintf("Please fill in: %s", req.name),
			}
		}
	}

	if f.StartDate != "" && f.EndDate != "" && f.StartDate > f.EndDate {
		return &Rejection{
			Field:   "endDate",
			Message: "End Date must be after Start Date",
		}
	}

	if f.Fulfillment == FulfillmentDelivery && f.Location == "" {
		return &Rejection{
			Field:   "location",
			Message: "Please enter a delivery location",
		}
	}

	return nil
}
