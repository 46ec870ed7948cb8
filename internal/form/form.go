package form

import (
	"go-vedascholars-backend/internal/domain"
)

// Field identifies one of the four inquiry form fields.
type Field string

const (
	FieldName     Field = "name"
	FieldEmail    Field = "email"
	FieldPhone    Field = "phone"
	FieldInterest Field = "interest"
)

// Form holds the state of one contact form: the four submission fields plus
// the seeded flag. It is driven from a single event loop and is not safe for
// concurrent use.
type Form struct {
	sub    domain.InquirySubmission
	seeded bool
}

// New returns a form with the default interest category selected.
func New() *Form {
	return &Form{
		sub: domain.InquirySubmission{
			Interest: domain.InterestGeneral,
		},
	}
}

// SetField replaces one field's value. It performs no validation and always
// succeeds; unknown fields are ignored.
func (f *Form) SetField(field Field, value string) {
	switch field {
	case FieldName:
		f.sub.Name = value
	case FieldEmail:
		f.sub.Email = value
	case FieldPhone:
		f.sub.Phone = value
	case FieldInterest:
		f.sub.Interest = value
	}
}

// SeedFromType pre-selects the interest category from an inquiry type
// indicator. It runs at most once per form so a re-read indicator can never
// overwrite user edits; unrecognized indicators leave the default untouched.
func (f *Form) SeedFromType(inquiryType string) {
	if f.seeded {
		return
	}
	f.seeded = true

	if interest := domain.InterestForType(inquiryType); interest != "" {
		f.sub.Interest = interest
	}
}

// Submission returns a snapshot of the current field values.
func (f *Form) Submission() domain.InquirySubmission {
	return f.sub
}
