package v1

import (
	"errors"
	"net/http"

	"go-vedascholars-backend/internal/delivery/http/response"
	"go-vedascholars-backend/internal/domain"
	"go-vedascholars-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const (
	msgSent      = "Your inquiry has been sent successfully!"
	msgSimulated = "Simulated success: email credentials not configured, no message was delivered."
)

type InquiryHandler struct {
	inquiryUC domain.InquiryUsecase
}

// NewInquiryHandler registers the contact routes (public, no auth required)
func NewInquiryHandler(public *gin.RouterGroup, inquiryUC domain.InquiryUsecase) {
	handler := &InquiryHandler{
		inquiryUC: inquiryUC,
	}

	public.POST("/contact", handler.SubmitInquiry)
	public.GET("/contact/confirmation", handler.Confirmation)
}

// SubmitInquiry godoc
// @Summary      Submit Contact Form
// @Description  Send an inquiry through the contact form. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        inquiry  body      domain.InquirySubmission  true  "Inquiry Form Data"
// @Success      200      {object}  response.SuccessResponse
// @Failure      400      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Router       /contact [post]
func (h *InquiryHandler) SubmitInquiry(c *gin.Context) {
	var sub domain.InquirySubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.Error(apperror.BadRequest("Missing required fields"))
		return
	}

	outcome, err := h.inquiryUC.SubmitInquiry(c.Request.Context(), &sub)
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			c.Error(apperror.BadRequest("Missing required fields"))
			return
		}
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to send email", err))
		return
	}

	message := msgSent
	if outcome == domain.OutcomeSimulated {
		message = msgSimulated
	}
	// The redirect category is computed client-side from the submitted
	// interest, so the body carries only the outcome message.
	response.Success(c, http.StatusOK, message, nil)
}

// Confirmation godoc
// @Summary      Confirmation Copy
// @Description  Return the thank-you message for a confirmation view category.
// @Tags         contact
// @Produce      json
// @Param        type  query     string  false  "Inquiry type (student, partner, recruiter, general)"
// @Success      200   {object}  response.SuccessResponse
// @Router       /contact/confirmation [get]
func (h *InquiryHandler) Confirmation(c *gin.Context) {
	inquiryType := c.DefaultQuery("type", domain.TypeGeneral)
	response.Success(c, http.StatusOK, domain.ConfirmationMessage(inquiryType), gin.H{
		"type": inquiryType,
	})
}
