package email

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net/smtp"

	"makotools/pkg/logger"
)

// Config holds the SMTP settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// MailType selects one of the built-in mail templates.
type MailType string

const (
	// TypeWelcome is sent after a successful registration.
	TypeWelcome MailType = "welcome"
	// TypeUsernameReminder is sent when a user asks for the username tied
	// to their email address.
	TypeUsernameReminder MailType = "username_reminder"
)

// MailData carries the values rendered into a template.
type MailData struct {
	To       string
	Subject  string
	UserName string
	SiteName string
}

var templates = map[MailType]*template.Template{
	TypeWelcome: template.Must(template.New("welcome").Parse(
		`<p>Hi {{.UserName}},</p>
<p>Welcome to {{.SiteName}}! Your account is ready. Add your favorite
characters to your profile to get personalized campaign recommendations.</p>`)),
	TypeUsernameReminder: template.Must(template.New("username_reminder").Parse(
		`<p>Hi,</p>
<p>You (or someone else) asked for the {{.SiteName}} username registered to
this address. It is: <b>{{.UserName}}</b></p>
<p>If this wasn't you, you can safely ignore this mail.</p>`)),
}

// Service sends templated mail over SMTP.
type Service struct {
	config Config
	logger *logger.Logger
}

// NewService creates a mail service.
func NewService(config Config, logger *logger.Logger) *Service {
	return &Service{
		config: config,
		logger: logger,
	}
}

// SendMail renders the template for mailType and delivers it.
func (s *Service) SendMail(mailType MailType, data MailData) error {
	if data.SiteName == "" {
		data.SiteName = "MakoTools"
	}

	if data.Subject == "" {
		switch mailType {
		case TypeWelcome:
			data.Subject = fmt.Sprintf("Welcome to %s", data.SiteName)
		case TypeUsernameReminder:
			data.Subject = fmt.Sprintf("%s - your username", data.SiteName)
		}
	}

	tmpl, ok := templates[mailType]
	if !ok {
		return fmt.Errorf("unknown mail template: %s", mailType)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, data); err != nil {
		return fmt.Errorf("failed to render mail template: %w", err)
	}

	return s.send(data.To, data.Subject, buf.String())
}

func (s *Service) send(to, subject, body string) error {
	headers := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n",
		s.config.FromName, s.config.From, to, subject)
	message := []byte(headers + body)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)

	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.config.Host})
	if err != nil {
		// Port 587 servers expect STARTTLS instead of implicit TLS.
		return s.sendStartTLS(addr, auth, to, message)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	return s.deliver(client, auth, to, message)
}

func (s *Service) sendStartTLS(addr string, auth smtp.Auth, to string, message []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to dial SMTP server: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.config.Host}); err != nil {
			return fmt.Errorf("STARTTLS failed: %w", err)
		}
	}

	return s.deliver(client, auth, to, message)
}

func (s *Service) deliver(client *smtp.Client, auth smtp.Auth, to string, message []byte) error {
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP auth failed: %w", err)
	}
	if err := client.Mail(s.config.From); err != nil {
		return fmt.Errorf("MAIL FROM failed: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("RCPT TO failed: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("DATA failed: %w", err)
	}
	if _, err := w.Write(message); err != nil {
		return fmt.Errorf("failed to write mail body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish mail body: %w", err)
	}

	return client.Quit()
}
