package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// FeedbackConfirmation carries what the confirmation mail needs to know
type FeedbackConfirmation struct {
	To          string
	From        string
	StudentName string
	CourseName  string
	FacultyName string
}

// Notifier delivers feedback confirmations
type Notifier interface {
	SendFeedbackConfirmation(ctx context.Context, msg FeedbackConfirmation) error
}

// SMTPConfig holds configuration for SMTP server
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	FromName string
	UseTLS   bool
}

// SMTPNotifier implements Notifier over plain or implicit-TLS SMTP
type SMTPNotifier struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewSMTPNotifier creates a new SMTPNotifier
func NewSMTPNotifier(config SMTPConfig, logger zerolog.Logger) *SMTPNotifier {
	return &SMTPNotifier{
		config: config,
		logger: logger,
	}
}

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`<html>
<body>
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2 style="color: #333;">Feedback received</h2>
		<p>Hello {{if .StudentName}}{{.StudentName}}{{else}}Student{{end}},</p>
		<p>Thank you for submitting your feedback for <strong>{{.CourseName}}</strong>{{if .FacultyName}} handled by <strong>{{.FacultyName}}</strong>{{end}}.</p>
		<p>Your responses have been recorded.</p>
		<p>Best regards,<br>Course Feedback Team</p>
	</div>
</body>
</html>`))

// ConfirmationSubject returns the subject line of a feedback confirmation
func ConfirmationSubject(courseName string) string {
	return "Thanks for submitting feedback — " + courseName
}

// RenderConfirmation renders the HTML body of a feedback confirmation
func RenderConfirmation(msg FeedbackConfirmation) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTemplate.Execute(&buf, msg); err != nil {
		return "", fmt.Errorf("failed to render confirmation mail: %w", err)
	}
	return buf.String(), nil
}

// SendFeedbackConfirmation mails the student a confirmation of their submission
func (s *SMTPNotifier) SendFeedbackConfirmation(ctx context.Context, msg FeedbackConfirmation) error {
	// If username or password is empty, log the email (for development only)
	if s.config.Host == "" || s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", msg.To).
			Str("course", msg.CourseName).
			Msg("SMTP credentials not configured - feedback confirmation not sent.")
		return nil
	}

	body, err := RenderConfirmation(msg)
	if err != nil {
		return err
	}

	from := msg.From
	if from == "" {
		from = s.config.Username
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return s.sendHTMLEmail(from, msg.To, ConfirmationSubject(msg.CourseName), body)
}

// buildMessage assembles the RFC 5322 message with headers in a fixed order
func (s *SMTPNotifier) buildMessage(from, toEmail, subject, htmlBody string) []byte {
	fromHeader := from
	if s.config.FromName != "" {
		fromHeader = fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", s.config.FromName), from)
	}

	headers := [][2]string{
		{"From", fromHeader},
		{"To", toEmail},
		{"Subject", mime.QEncoding.Encode("utf-8", subject)},
		{"MIME-Version", "1.0"},
		{"Content-Type", "text/html; charset=UTF-8"},
	}

	var b strings.Builder
	for _, h := range headers {
		fmt.Fprintf(&b, "%s: %s\r\n", h[0], h[1])
	}
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return []byte(b.String())
}

// sendHTMLEmail sends an HTML email
func (s *SMTPNotifier) sendHTMLEmail(from, toEmail, subject, htmlBody string) error {
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	message := s.buildMessage(from, toEmail, subject, htmlBody)
	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)

	if !s.config.UseTLS {
		// smtp.SendMail upgrades with STARTTLS when the server offers it
		if err := smtp.SendMail(serverAddress, auth, from, []string{toEmail}, message); err != nil {
			s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send email")
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	}

	conn, err := tls.Dial("tcp", serverAddress, &tls.Config{ServerName: s.config.Host})
	if err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to connect to SMTP server")
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to create SMTP client")
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Quit()

	if err = client.Auth(auth); err != nil {
		s.logger.Error().Err(err).Msg("SMTP authentication failed")
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}
	if err = client.Mail(from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(toEmail); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err = w.Write(message); err != nil {
		return fmt.Errorf("failed to write email message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}
	return nil
}
