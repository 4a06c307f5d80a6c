package notify

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"helpdesk/backend/internal/config"
)

// Mailer sends owner-facing notifications over SMTP. Every send happens in
// its own goroutine so a slow or unreachable relay cannot stall a request.
type Mailer struct {
	addr string
	auth smtp.Auth
	from string
}

func NewMailer(cfg *config.Config) *Mailer {
	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	}
	return &Mailer{
		addr: fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		auth: auth,
		from: cfg.SMTPFrom,
	}
}

func (m *Mailer) TicketSubmitted(email, name, complaintType, code string) {
	m.send(email, "Your ticket has been submitted",
		fmt.Sprintf("Hi %s,\n\nYour %s ticket has been received and is pending review.\nTracking code: %s\n\nUse your email and this code to track its status.",
			name, complaintType, code))
}

func (m *Mailer) PersonnelAssigned(email, name, complaintType, personnelName, personnelContact string) {
	m.send(email, "Personnel assigned to your ticket",
		fmt.Sprintf("Hi %s,\n\n%s (contact: %s) has been assigned to your %s ticket.",
			name, personnelName, personnelContact, complaintType))
}

func (m *Mailer) TicketResolved(email, name, complaintType string) {
	m.send(email, "Your ticket has been resolved",
		fmt.Sprintf("Hi %s,\n\nYour %s ticket has been marked as resolved. You can now leave feedback.",
			name, complaintType))
}

func (m *Mailer) PasswordReset(email, name, resetLink string) {
	m.send(email, "Password reset",
		fmt.Sprintf("Hi %s,\n\nA password reset was requested for your account. The link below is valid for one hour:\n\n%s\n\nIf you did not request this, ignore this email.",
			name, resetLink))
}

func (m *Mailer) send(to, subject, body string) {
	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	go func() {
		if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
			log.Printf("ERROR: failed to send %q mail to %s: %v", subject, to, err)
		}
	}()
}
