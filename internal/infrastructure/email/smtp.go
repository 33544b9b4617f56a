package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"seedfund/internal/domain/account"
	"seedfund/internal/shared/config"
)

// Sender delivers one-time passcodes. The send happens after the code is
// committed, so a delivery failure must be reported distinctly from a
// persistence failure.
type Sender interface {
	SendOTPEmail(to, displayName, code string, purpose account.OTPPurpose) error
	SendPasswordChangedEmail(to, displayName string) error
}

type SMTPEmailService struct {
	config config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(cfg config.EmailConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPEmailService{
		config: cfg,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendOTPEmail(to, displayName, code string, purpose account.OTPPurpose) error {
	var subject, intro string
	switch purpose {
	case account.OTPPurposeEmailVerification:
		subject = "Verify Your Email Address"
		intro = "Use the code below to verify your email address:"
	case account.OTPPurposeLogin:
		subject = "Your Login Code"
		intro = "Use the code below to sign in to your account:"
	case account.OTPPurposePasswordReset:
		subject = "Reset Your Password"
		intro = "Use the code below to reset your password:"
	default:
		return fmt.Errorf("unknown otp purpose: %s", purpose)
	}

	greeting := "Hello"
	if displayName != "" {
		greeting = fmt.Sprintf("Hello %s", displayName)
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>%s,</h2>
			<p>%s</p>
			<p style="font-size: 28px; letter-spacing: 6px; font-weight: bold;">%s</p>
			<p>This code will expire in 10 minutes.</p>
			<p>If you didn't request this code, please ignore this email.</p>
		</body>
		</html>
	`, greeting, intro, code)

	plainBody := fmt.Sprintf(`
%s,

%s

%s

This code will expire in 10 minutes.

If you didn't request this code, please ignore this email.
	`, greeting, intro, code)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendPasswordChangedEmail(to, displayName string) error {
	greeting := "Hello"
	if displayName != "" {
		greeting = fmt.Sprintf("Hello %s", displayName)
	}

	subject := "Password Changed Successfully"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>%s,</h2>
			<p>Your password has been successfully changed.</p>
			<p>If you didn't make this change, please contact support immediately.</p>
		</body>
		</html>
	`, greeting)

	plainBody := fmt.Sprintf(`
%s,

Your password has been successfully changed.

If you didn't make this change, please contact support immediately.
	`, greeting)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
