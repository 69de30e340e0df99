package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"github.com/davrk/leadbot/internal/models"
)

// Mailer sends SMTP notifications using the stored settings. Every send is
// best-effort from the caller's point of view.
type Mailer struct {
	log *logrus.Logger
}

func New(log *logrus.Logger) *Mailer {
	return &Mailer{log: log}
}

func (m *Mailer) dialer(s *models.SMTPSettings) *gomail.Dialer {
	d := gomail.NewDialer(s.Server, s.Port, s.Username, s.Password)
	// SSL=true means implicit TLS (usually port 465); otherwise gomail
	// negotiates STARTTLS when the server offers it.
	d.SSL = s.UseSSL
	return d
}

func (m *Mailer) SendTicketNotification(_ context.Context, s *models.SMTPSettings, user *models.User, t *models.SupportTicket) error {
	when := time.Now().Format("January 2, 2006 at 3:04 PM")

	text := fmt.Sprintf(`New Support Ticket #%d

From: %s
Email: %s
Subject: %s
Date: %s

Message:
%s

---
This is an automated notification from the site chatbot.
Please respond to the user at %s
`, t.ID, user.Name, user.Email, t.Subject, when, t.Message, user.Email)

	html := fmt.Sprintf(`<html><body style="font-family:Arial,sans-serif;color:#333">
<h2>New Support Ticket #%d</h2>
<p><b>From:</b> %s<br>
<b>Email:</b> <a href="mailto:%s">%s</a><br>
<b>Subject:</b> %s<br>
<b>Date:</b> %s</p>
<div style="background:#f9fafb;border:1px solid #e5e7eb;padding:16px;white-space:pre-wrap">%s</div>
<p style="color:#6b7280;font-size:0.875rem">Automated notification from the site chatbot. Reply to the user at %s.</p>
</body></html>`, t.ID, user.Name, user.Email, user.Email, t.Subject, when, t.Message, user.Email)

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.SenderEmail)
	msg.SetHeader("To", s.RecipientEmail)
	msg.SetHeader("Subject", fmt.Sprintf("New Support Ticket #%d: %s", t.ID, t.Subject))
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", html)

	if err := m.dialer(s).DialAndSend(msg); err != nil {
		return err
	}
	m.log.WithField("ticket_id", t.ID).Info("support ticket notification sent")
	return nil
}

func (m *Mailer) SendTestEmail(_ context.Context, s *models.SMTPSettings, recipient string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.SenderEmail)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", "Chatbot SMTP test")
	msg.SetBody("text/plain", "This is a test email from the chatbot admin dashboard. Your SMTP settings are working.")

	return m.dialer(s).DialAndSend(msg)
}
