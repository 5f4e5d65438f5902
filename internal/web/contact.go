package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/timhliu/portfolio/internal/config"
	"github.com/timhliu/portfolio/internal/store"
)

// ErrMailNotConfigured is returned by SMTPMailer when credentials are missing.
var ErrMailNotConfigured = errors.New("SMTP credentials not configured")

// Mailer delivers contact-form messages.
type Mailer interface {
	Send(ctx context.Context, m store.Message) error
}

type SMTPMailer struct {
	cfg config.SMTP
}

func NewSMTPMailer(cfg config.SMTP) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(_ context.Context, msg store.Message) error {
	if !m.cfg.Configured() {
		return ErrMailNotConfigured
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", msg.Name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.Name, msg.Email, msg.Body)

	raw := []byte("To: " + m.cfg.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + m.cfg.User + "\r\n" +
		"Reply-To: " + msg.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	if err := smtp.SendMail(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.User, []string{m.cfg.To}, raw); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// contactForm validates a submission. Header-breaking characters are
// rejected since name and email end up in mail headers.
func contactForm(c *gin.Context) (store.Message, string) {
	msg := store.Message{
		Name:  strings.TrimSpace(c.PostForm("fullName")),
		Email: strings.TrimSpace(c.PostForm("email")),
		Body:  strings.TrimSpace(c.PostForm("message")),
	}
	switch {
	case msg.Name == "" || msg.Email == "" || msg.Body == "":
		return msg, "Please fill in your name, email and message."
	case strings.ContainsAny(msg.Name+msg.Email, "\r\n"):
		return msg, "Please enter a valid name and email."
	}
	if _, err := mail.ParseAddress(msg.Email); err != nil {
		return msg, "Please enter a valid email address."
	}
	return msg, ""
}

func (s *Server) contact(c *gin.Context) {
	msg, problem := contactForm(c)
	if problem != "" {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": problem})
		return
	}

	ctx := c.Request.Context()
	id, err := s.store.SaveMessage(ctx, msg)
	if err != nil {
		s.log.Error().Err(err).Msg("save contact message")
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		// The message is stored, so the visitor still gets a success reply.
		s.log.Warn().Err(err).Int64("message", id).Msg("contact message not mailed")
	} else if err := s.store.MarkMailed(ctx, id); err != nil {
		s.log.Error().Err(err).Int64("message", id).Msg("mark message mailed")
	} else {
		s.log.Info().Int64("message", id).Msg("contact message mailed")
	}

	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}
