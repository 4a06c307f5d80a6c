// Package notify delivers side-channel notifications: email to complaint
// owners and Telegram alerts to the admin channel. Delivery is fire-and-
// forget; a failed notification is logged and never fails the operation
// that triggered it.
package notify

import "log"

// Notifier is the outbound notification surface used by the complaint
// engine and the account service.
type Notifier interface {
	TicketSubmitted(email, name, complaintType, code string)
	PersonnelAssigned(email, name, complaintType, personnelName, personnelContact string)
	TicketResolved(email, name, complaintType string)
	PasswordReset(email, name, resetLink string)
}

// LogNotifier writes notifications to the process log. It is the fallback
// when no mail or Telegram configuration is present, and keeps local
// development free of external dependencies.
type LogNotifier struct{}

func (LogNotifier) TicketSubmitted(email, name, complaintType, code string) {
	log.Printf("NOTIFY: ticket submitted for %s <%s>, type %s, code %s", name, email, complaintType, code)
}

func (LogNotifier) PersonnelAssigned(email, name, complaintType, personnelName, personnelContact string) {
	log.Printf("NOTIFY: %s assigned to %s's %s ticket (contact %s)", personnelName, name, complaintType, personnelContact)
}

func (LogNotifier) TicketResolved(email, name, complaintType string) {
	log.Printf("NOTIFY: %s ticket for %s <%s> resolved", complaintType, name, email)
}

func (LogNotifier) PasswordReset(email, name, resetLink string) {
	log.Printf("NOTIFY: password reset link for %s <%s>: %s", name, email, resetLink)
}

// Fanout forwards every notification to each wrapped notifier.
type Fanout []Notifier

func (f Fanout) TicketSubmitted(email, name, complaintType, code string) {
	for _, n := range f {
		n.TicketSubmitted(email, name, complaintType, code)
	}
}

func (f Fanout) PersonnelAssigned(email, name, complaintType, personnelName, personnelContact string) {
	for _, n := range f {
		n.PersonnelAssigned(email, name, complaintType, personnelName, personnelContact)
	}
}

func (f Fanout) TicketResolved(email, name, complaintType string) {
	for _, n := range f {
		n.TicketResolved(email, name, complaintType)
	}
}

func (f Fanout) PasswordReset(email, name, resetLink string) {
	for _, n := range f {
		n.PasswordReset(email, name, resetLink)
	}
}
