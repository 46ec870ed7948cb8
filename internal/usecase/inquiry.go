package usecase

import (
	"context"
	"strings"
	"time"

	"go-vedascholars-backend/internal/domain"
	"go-vedascholars-backend/pkg/email"
	"go-vedascholars-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

type inquiryUsecase struct {
	sender   email.Sender
	validate *validator.Validate
}

// NewInquiryUsecase creates a new inquiry usecase
func NewInquiryUsecase(sender email.Sender, validate *validator.Validate) domain.InquiryUsecase {
	return &inquiryUsecase{
		sender:   sender,
		validate: validate,
	}
}

// SubmitInquiry validates the submission and dispatches both notification
// emails. Presence is the only contract on email and phone; their formats are
// not validated here.
func (uc *inquiryUsecase) SubmitInquiry(ctx context.Context, sub *domain.InquirySubmission) (domain.DispatchOutcome, error) {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Phone = strings.TrimSpace(sub.Phone)
	sub.Interest = strings.TrimSpace(sub.Interest)

	// Required-field check (additional validation beyond binding, so callers
	// that skip gin binding get the same contract)
	if err := uc.validate.Struct(sub); err != nil {
		return 0, domain.ErrMissingFields
	}

	// Out-of-enum interests are accepted as long as they are non-empty; the
	// select control is the only place the category set is enforced.
	if !domain.KnownInterest(sub.Interest) {
		logger.Log.Warn("Unrecognized interest category on inquiry", "interest", sub.Interest)
	}

	data := email.InquiryEmailData{
		Name:        sub.Name,
		Email:       sub.Email,
		Phone:       sub.Phone,
		Interest:    sub.Interest,
		SubmittedAt: time.Now().Format("Jan 2, 2006 3:04 PM MST"),
	}

	// Degraded mode: without relay credentials no delivery is attempted and
	// the submission is reported as a simulated success.
	if !uc.sender.IsConfigured() {
		logger.Log.Warn("Email credentials not configured, simulating successful dispatch",
			"email", sub.Email, "interest", sub.Interest)
		return domain.OutcomeSimulated, nil
	}

	// Both messages are dispatched together and the request fails if either
	// fails. An email already accepted by the relay cannot be rolled back, so
	// a failure response can coexist with a delivered admin notification;
	// per-leg errors are logged so operators can tell which one failed.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := uc.sender.SendInquiryNotification(gctx, data); err != nil {
			logger.Log.Error("Admin notification dispatch failed", "error", err)
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := uc.sender.SendInquiryConfirmation(gctx, data); err != nil {
			logger.Log.Error("Confirmation dispatch failed", "error", err)
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return 0, domain.ErrDeliveryFailed
	}

	logger.Log.Info("Inquiry dispatched", "interest", sub.Interest)
	return domain.OutcomeSent, nil
}
