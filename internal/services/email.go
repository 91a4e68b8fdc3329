package services

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// EmailService sends plain-text notifications to a single fixed recipient.
// When SMTP credentials are absent it runs in dev mode and logs the mail to
// the console instead of sending.
type EmailService struct {
	host    string
	port    string
	user    string
	pass    string
	from    string
	to      string
	timeout time.Duration
	devMode bool
}

func NewEmailService(host, port, user, pass, from, to string, timeout time.Duration) *EmailService {
	devMode := host == "" || user == ""
	if devMode {
		log.Println("⚠ Email service running in DEV MODE (logging to console)")
	}
	return &EmailService{
		host:    host,
		port:    port,
		user:    user,
		pass:    pass,
		from:    from,
		to:      to,
		timeout: timeout,
		devMode: devMode,
	}
}

// Send delivers one plain-text email. The whole SMTP session runs under an
// explicit deadline (the tighter of the context's and the configured one).
func (s *EmailService) Send(ctx context.Context, subject, body string) error {
	if s.devMode {
		log.Printf("📧 [DEV EMAIL] To: %s | Subject: %s", s.to, subject)
		log.Printf("📧 Body:\n%s", body)
		return nil
	}

	headers := []string{
		fmt.Sprintf("From: %s", s.from),
		fmt.Sprintf("To: %s", s.to),
		fmt.Sprintf("Subject: %s", mime.QEncoding.Encode("utf-8", subject)),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
	}
	message := strings.Join(headers, "\r\n") + "\r\n\r\n" + body

	deadline := time.Now().Add(s.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := s.send(message, deadline); err != nil {
		if isTimeout(err) {
			return &TimeoutError{Op: "smtp"}
		}
		return &UpstreamError{Op: "smtp", Err: fmt.Errorf("failed to send email to %s: %w", s.to, err)}
	}

	log.Printf("📧 Email sent to %s: %s", s.to, subject)
	return nil
}

func (s *EmailService) send(message string, deadline time.Time) error {
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	conn, err := net.DialTimeout("tcp", addr, time.Until(deadline))
	if err != nil {
		return err
	}
	if err := conn.SetDeadline(deadline); err != nil {
		conn.Close()
		return err
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return err
		}
	}

	auth := smtp.PlainAuth("", s.user, s.pass, s.host)
	if err := client.Auth(auth); err != nil {
		return err
	}

	if err := client.Mail(s.from); err != nil {
		return err
	}
	if err := client.Rcpt(s.to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte(message)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return client.Quit()
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
