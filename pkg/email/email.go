package email

import (
	"bytes"
	"context"
	"fmt"
	"go-vedascholars-backend/config"
	"html/template"
	"net/smtp"
	"strings"
)

// adminCCEmail is always copied on admin notifications so the admissions
// inbox keeps a record even when CONTACT_EMAIL_TO is overridden.
const adminCCEmail = "admissions@vedascholars.com"

// InquiryEmailData holds the data interpolated into both inquiry emails
type InquiryEmailData struct {
	Name        string
	Email       string
	Phone       string
	Interest    string
	SubmittedAt string
}

// Sender dispatches the two notification emails generated for a valid
// inquiry. Implementations are fire-and-wait: no retry, no batching, and the
// relay's error is propagated verbatim.
type Sender interface {
	// SendInquiryNotification delivers the internal staff notification.
	SendInquiryNotification(ctx context.Context, data InquiryEmailData) error
	// SendInquiryConfirmation delivers the confirmation back to the submitter.
	SendInquiryConfirmation(ctx context.Context, data InquiryEmailData) error
	// IsConfigured reports whether relay credentials are available.
	IsConfigured() bool
}

// EmailService sends inquiry emails via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	adminTo   string
}

// NewEmailService creates a new email service with Brevo SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
		adminTo:   cfg.AdminEmailTo,
	}
}

// adminEmailTemplate is the HTML template for the internal notification
const adminEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Inquiry Received</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1a3c6e; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Inquiry: {{.Interest}}</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Name:</div>
                <div class="value">{{.Name}}</div>
            </div>
            <div class="field">
                <div class="label">Email:</div>
                <div class="value">{{.Email}}</div>
            </div>
            <div class="field">
                <div class="label">Phone:</div>
                <div class="value">{{.Phone}}</div>
            </div>
            <div class="field">
                <div class="label">Interest:</div>
                <div class="value">{{.Interest}}</div>
            </div>
            <div class="field">
                <div class="label">Submitted:</div>
                <div class="value">{{.SubmittedAt}}</div>
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from the Veda Scholars contact form.</p>
            <p>To reply, send an email to: {{.Email}}</p>
        </div>
    </div>
</body>
</html>`

// confirmationEmailTemplate is the HTML template sent back to the submitter
const confirmationEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>We Received Your Inquiry</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1a3c6e; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .summary { background: white; padding: 15px; border-left: 4px solid #1a3c6e; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Thank You, {{.Name}}!</h1>
        </div>
        <div class="content">
            <p>We have received your inquiry and a member of our team will get back to you shortly.</p>
            <div class="summary">
                <p><strong>Topic:</strong> {{.Interest}}</p>
                <p><strong>Phone:</strong> {{.Phone}}</p>
                <p><strong>Received:</strong> {{.SubmittedAt}}</p>
            </div>
            <p>In the meantime, feel free to explore our services at vedascholars.com.</p>
        </div>
        <div class="footer">
            <p>Veda Scholars — Education Consultancy</p>
            <p>This is an automated confirmation of your inquiry. Please do not reply to this email.</p>
        </div>
    </div>
</body>
</html>`

// SendInquiryNotification sends the admin notification to the configured
// recipient with the fixed CC address
func (s *EmailService) SendInquiryNotification(ctx context.Context, data InquiryEmailData) error {
	body, err := renderTemplate("admin_notification", adminEmailTemplate, data)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("New Inquiry from %s — %s", data.Name, data.Interest)
	return s.send(subject, body, data.Email, []string{s.adminTo}, []string{adminCCEmail})
}

// SendInquiryConfirmation sends the confirmation email back to the submitter
func (s *EmailService) SendInquiryConfirmation(ctx context.Context, data InquiryEmailData) error {
	body, err := renderTemplate("inquiry_confirmation", confirmationEmailTemplate, data)
	if err != nil {
		return err
	}

	subject := "We received your inquiry — Veda Scholars"
	return s.send(subject, body, "", []string{data.Email}, nil)
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

func renderTemplate(name, text string, data InquiryEmailData) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}

// send builds the MIME message and performs one SMTP transaction
func (s *EmailService) send(subject, htmlBody, replyTo string, to, cc []string) error {
	var headers strings.Builder
	fmt.Fprintf(&headers, "From: %s\r\n", s.fromEmail)
	fmt.Fprintf(&headers, "To: %s\r\n", strings.Join(to, ", "))
	if len(cc) > 0 {
		fmt.Fprintf(&headers, "Cc: %s\r\n", strings.Join(cc, ", "))
	}
	if replyTo != "" {
		fmt.Fprintf(&headers, "Reply-To: %s\r\n", replyTo)
	}
	fmt.Fprintf(&headers, "Subject: %s\r\n", subject)
	headers.WriteString("MIME-Version: 1.0\r\n")
	headers.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	headers.WriteString("\r\n")

	msg := []byte(headers.String() + htmlBody)

	// Setup SMTP authentication
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	recipients := append(append([]string{}, to...), cc...)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, recipients, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
