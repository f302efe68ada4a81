package email

import (
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/hrpms/pms-backend-go/internal/config"
)

const maxRetries = 3

// EmailService sends transactional mail. When SMTP is not configured the
// send is skipped and logged so local development works without a relay.
type EmailService interface {
	SendPasswordReset(to, resetLink, expiresAt string) error
}

type emailServiceImpl struct {
	cfg config.SMTPConfig
}

func NewEmailService(cfg config.SMTPConfig) EmailService {
	return &emailServiceImpl{cfg: cfg}
}

// SendPasswordReset sends a password reset link to the user.
func (s *emailServiceImpl) SendPasswordReset(to, resetLink, expiresAt string) error {
	body := fmt.Sprintf(`<p>A password reset was requested for your account.</p>
<p><a href="%s">Reset your password</a></p>
<p>The link expires at %s. If you did not request this, ignore this email.</p>`, resetLink, expiresAt)

	return s.sendHTML(to, "Reset your password", body)
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}
		lastErr = err
		slog.Warn("Email send failed", "to", to, "attempt", attempt, "error", err)
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
