package v1_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-vedascholars-backend/internal/delivery/http/middleware"
	v1 "go-vedascholars-backend/internal/delivery/http/v1"
	"go-vedascholars-backend/internal/domain"
	"go-vedascholars-backend/internal/usecase"
	"go-vedascholars-backend/pkg/email"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

// fakeSender counts deliveries and can be told to fail either leg
type fakeSender struct {
	configured    bool
	failNotify    bool
	failConfirm   bool
	notifications int
	confirmations int
}

func (f *fakeSender) SendInquiryNotification(ctx context.Context, data email.InquiryEmailData) error {
	f.notifications++
	if f.failNotify {
		return errors.New("relay rejected")
	}
	return nil
}

func (f *fakeSender) SendInquiryConfirmation(ctx context.Context, data email.InquiryEmailData) error {
	f.confirmations++
	if f.failConfirm {
		return errors.New("relay rejected")
	}
	return nil
}

func (f *fakeSender) IsConfigured() bool { return f.configured }

func newTestEngine(sender email.Sender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	uc := usecase.NewInquiryUsecase(sender, validator.New())
	v1.NewInquiryHandler(r.Group("/v1"), uc)
	return r
}

func postContact(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitInquiryEndpoint(t *testing.T) {
	validBody := `{"name":"Asha","email":"a@x.com","phone":"123","interest":"Student Counselling"}`

	t.Run("Valid submission with configured credentials", func(t *testing.T) {
		sender := &fakeSender{configured: true}
		w := postContact(newTestEngine(sender), validBody)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Your inquiry has been sent successfully!", body["message"])

		assert.Equal(t, 1, sender.notifications)
		assert.Equal(t, 1, sender.confirmations)
	})

	t.Run("Missing field yields the validation shape and zero deliveries", func(t *testing.T) {
		sender := &fakeSender{configured: true}
		w := postContact(newTestEngine(sender), `{"name":"Asha","phone":"123","interest":"Student Counselling"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Missing required fields", body["error"])
		assert.NotContains(t, body, "success")

		assert.Zero(t, sender.notifications)
		assert.Zero(t, sender.confirmations)
	})

	t.Run("Blank field is treated as missing", func(t *testing.T) {
		sender := &fakeSender{configured: true}
		w := postContact(newTestEngine(sender), `{"name":"Asha","email":"   ","phone":"123","interest":"Student Counselling"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, sender.notifications)
	})

	t.Run("Malformed JSON yields the validation shape", func(t *testing.T) {
		sender := &fakeSender{configured: true}
		w := postContact(newTestEngine(sender), `{"name":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Missing required fields", body["error"])
	})

	t.Run("Missing credentials simulate success without delivery", func(t *testing.T) {
		sender := &fakeSender{configured: false}
		w := postContact(newTestEngine(sender), validBody)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
		assert.Contains(t, body["message"], "Simulated success")

		assert.Zero(t, sender.notifications)
		assert.Zero(t, sender.confirmations)
	})

	t.Run("Relay failure yields the delivery-error shape", func(t *testing.T) {
		sender := &fakeSender{configured: true, failConfirm: true}
		w := postContact(newTestEngine(sender), validBody)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Failed to send email", body["error"])
	})

	t.Run("Responses carry the request id", func(t *testing.T) {
		sender := &fakeSender{configured: true}
		w := postContact(newTestEngine(sender), validBody)

		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotEmpty(t, body["request_id"])
	})
}

func TestConfirmationEndpoint(t *testing.T) {
	r := newTestEngine(&fakeSender{configured: true})

	get := func(query string) map[string]interface{} {
		req := httptest.NewRequest(http.MethodGet, "/v1/contact/confirmation"+query, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return body
	}

	t.Run("Returns category-specific copy", func(t *testing.T) {
		body := get("?type=student")
		assert.Equal(t, domain.ConfirmationMessage(domain.TypeStudent), body["message"])
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "student", data["type"])
	})

	t.Run("Defaults to the general copy", func(t *testing.T) {
		body := get("")
		assert.Equal(t, domain.ConfirmationMessage(domain.TypeGeneral), body["message"])

		unknown := get("?type=alumni")
		assert.Equal(t, domain.ConfirmationMessage(domain.TypeGeneral), unknown["message"])
	})
}
