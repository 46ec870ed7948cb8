package form

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go-vedascholars-backend/internal/domain"
)

// State tracks one submission lifecycle:
// idle → submitting → {succeeded} | {failed → idle}.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSucceeded
)

const (
	labelIdle       = "Send Message"
	labelSubmitting = "Sending..."

	// failureNotice is the single generic alert shown for every failure;
	// validation and delivery errors are deliberately not distinguished.
	failureNotice = "Something went wrong. Please try again."
)

// ErrSubmissionInFlight is returned when Submit is called while a previous
// submission has not yet settled.
var ErrSubmissionInFlight = errors.New("a submission is already in progress")

// serverResponse covers both the success and error body shapes.
type serverResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Dispatcher drives submissions against the intake endpoint. Like Form it
// belongs to a single event loop; there is no internal locking.
//
// There is no idempotency guarantee: resubmitting after a failure creates a
// wholly new submission, and if the first attempt succeeded server-side but
// its response was lost, duplicate notifications result. This is an accepted,
// documented limitation.
type Dispatcher struct {
	endpoint    string // intake endpoint URL
	frontendURL string // base URL for the confirmation redirect
	client      *http.Client

	state   State
	notice  string // user-visible failure notice, empty unless the last attempt failed
	message string // server outcome message from the last success
}

// NewDispatcher creates a dispatcher posting to the given intake endpoint.
func NewDispatcher(endpoint, frontendURL string) *Dispatcher {
	return &Dispatcher{
		endpoint:    endpoint,
		frontendURL: frontendURL,
		client:      http.DefaultClient,
	}
}

func (d *Dispatcher) State() State { return d.state }

// SubmitLabel returns the label for the submit control, which doubles as the
// in-progress indicator while a submission is pending.
func (d *Dispatcher) SubmitLabel() string {
	if d.state == StateSubmitting {
		return labelSubmitting
	}
	return labelIdle
}

// Notice returns the failure notice for the last attempt, if any.
func (d *Dispatcher) Notice() string { return d.notice }

// Message returns the server's outcome message from the last successful
// submission (it distinguishes real from simulated delivery).
func (d *Dispatcher) Message() string { return d.message }

// Submit sends one submission snapshot to the intake endpoint and returns the
// confirmation redirect URL on success. On any failure — transport error or a
// non-success response — the dispatcher surfaces the generic notice and
// returns to idle so the user can resubmit manually; there is no automatic
// retry.
func (d *Dispatcher) Submit(ctx context.Context, sub domain.InquirySubmission) (string, error) {
	if d.state == StateSubmitting {
		return "", ErrSubmissionInFlight
	}
	d.state = StateSubmitting
	d.notice = ""

	redirect, err := d.post(ctx, sub)
	if err != nil {
		d.state = StateIdle
		d.notice = failureNotice
		return "", err
	}

	d.state = StateSucceeded
	return redirect, nil
}

func (d *Dispatcher) post(ctx context.Context, sub domain.InquirySubmission) (string, error) {
	payload, err := json.Marshal(sub)
	if err != nil {
		return "", fmt.Errorf("serialize submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var body serverResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !body.Success {
		if body.Error != "" {
			return "", fmt.Errorf("intake endpoint: %s", body.Error)
		}
		return "", fmt.Errorf("intake endpoint: unexpected status %d", resp.StatusCode)
	}

	d.message = body.Message
	return d.redirectURL(sub.Interest), nil
}

// redirectURL computes the confirmation view URL for the submitted interest,
// the exact inverse of the seeding performed by Form.SeedFromType.
func (d *Dispatcher) redirectURL(interest string) string {
	return fmt.Sprintf("%s/thank-you?type=%s", d.frontendURL, domain.TypeForInterest(interest))
}
