package domain

import (
	"context"
	"errors"
)

// Interest categories offered by the contact form select control.
const (
	InterestGeneral     = "General Inquiry"
	InterestStudent     = "Student Counselling"
	InterestUniversity  = "University Partnership"
	InterestRecruitment = "Recruiter / Hiring"
)

// Inquiry type indicators carried in URL query parameters. They seed the
// form's interest field on mount and select the confirmation copy after a
// successful submission.
const (
	TypeStudent   = "student"
	TypePartner   = "partner"
	TypeRecruiter = "recruiter"
	TypeGeneral   = "general"
)

// InquirySubmission represents one contact form submission
type InquirySubmission struct {
	Name     string `json:"name" binding:"required" validate:"required"`
	Email    string `json:"email" binding:"required" validate:"required"`
	Phone    string `json:"phone" binding:"required" validate:"required"`
	Interest string `json:"interest" binding:"required" validate:"required"`
}

// DispatchOutcome tags how a valid submission was resolved. Simulated means
// the mail relay was not configured and no delivery was attempted; the
// submitter still sees a success, but logs and response metadata must tell
// the two outcomes apart.
type DispatchOutcome int

const (
	OutcomeSent DispatchOutcome = iota
	OutcomeSimulated
)

var (
	// ErrMissingFields is returned when any of the four submission fields
	// is absent or blank. No delivery is attempted for such a submission.
	ErrMissingFields = errors.New("missing required fields")

	// ErrDeliveryFailed wraps a relay failure for either of the two
	// notification messages.
	ErrDeliveryFailed = errors.New("failed to send email")
)

// InterestForType maps an inquiry type indicator to the interest category it
// pre-selects. Unrecognized indicators map to the empty string so callers can
// leave the form default untouched.
func InterestForType(inquiryType string) string {
	switch inquiryType {
	case TypeStudent:
		return InterestStudent
	case TypePartner:
		return InterestUniversity
	case TypeRecruiter:
		return InterestRecruitment
	}
	return ""
}

// KnownInterest reports whether an interest value belongs to the enumerated
// category set offered by the form.
func KnownInterest(interest string) bool {
	switch interest {
	case InterestGeneral, InterestStudent, InterestUniversity, InterestRecruitment:
		return true
	}
	return false
}

// TypeForInterest is the inverse of InterestForType: it computes the
// confirmation category for a submitted interest. Anything outside the
// enumerated categories collapses to the general type.
func TypeForInterest(interest string) string {
	switch interest {
	case InterestStudent:
		return TypeStudent
	case InterestUniversity:
		return TypePartner
	case InterestRecruitment:
		return TypeRecruiter
	}
	return TypeGeneral
}

// ConfirmationMessage returns the thank-you copy shown on the confirmation
// view for an inquiry type. Unknown types get the general message.
func ConfirmationMessage(inquiryType string) string {
	switch inquiryType {
	case TypeStudent:
		return "Thank you for reaching out! One of our counsellors will contact you shortly to discuss your study-abroad plans."
	case TypePartner:
		return "Thank you for your interest in partnering with Veda Scholars. Our partnerships team will be in touch soon."
	case TypeRecruiter:
		return "Thank you for contacting us. Our team will get back to you about hiring and recruitment opportunities."
	}
	return "Thank you for contacting Veda Scholars! We have received your inquiry and will respond as soon as possible."
}

// InquiryUsecase defines the interface for contact form operations
type InquiryUsecase interface {
	// SubmitInquiry validates a submission and dispatches the admin and
	// confirmation notifications, reporting whether delivery was real or
	// simulated.
	SubmitInquiry(ctx context.Context, sub *InquirySubmission) (DispatchOutcome, error)
}
