package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/caresync/staffing-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	SendVerification(to, fullName, verificationLink, expiresAt string) error
	SendWelcome(to, fullName, companyName string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type verificationEmailData struct {
	FullName         string
	VerificationLink string
	ExpiresAt        string
}

// SendVerification sends an account verification email.
func (s *emailServiceImpl) SendVerification(to, fullName, verificationLink, expiresAt string) error {
	data := verificationEmailData{
		FullName:         fullName,
		VerificationLink: verificationLink,
		ExpiresAt:        expiresAt,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "verification.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Verify your CareSync account", body.String())
}

type welcomeEmailData struct {
	FullName    string
	CompanyName string
}

// SendWelcome sends a welcome email once the account is verified.
func (s *emailServiceImpl) SendWelcome(to, fullName, companyName string) error {
	data := welcomeEmailData{
		FullName:    fullName,
		CompanyName: companyName,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "welcome.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Welcome to CareSync", body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	msg := []byte(
		"From: " + s.cfg.From + "\r\n" +
			"To: " + to + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
			"\r\n" +
			htmlBody,
	)

	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg)
		if err == nil {
			return nil
		}
		slog.Warn("email send failed, retrying", "to", to, "attempt", attempt, "error", err)
		time.Sleep(time.Duration(attempt) * time.Second)
	}
	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, err)
}
