// Package notifier sends desktop notifications for the built-in hooks.
package notifier

import "github.com/gen2brain/beeep"

// AppName is shown by notification daemons that display the sender.
const AppName = "Claude Code"

// Urgency is the importance of a notification.
type Urgency int

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

func (u Urgency) String() string {
	switch u {
	case UrgencyLow:
		return "low"
	case UrgencyCritical:
		return "critical"
	default:
		return "normal"
	}
}

// Notifier sends desktop notifications.
type Notifier interface {
	Send(title, message string, urgency Urgency) error
}

// New returns a notifier for the current desktop.
func New() Notifier {
	beeep.AppName = AppName
	return &desktop{notify: beeep.Notify, alert: beeep.Alert}
}

type desktop struct {
	notify func(title, message string, icon any) error
	alert  func(title, message string, icon any) error
}

// Send uses an alert for critical notifications, which also plays a sound.
func (d *desktop) Send(title, message string, urgency Urgency) error {
	if urgency == UrgencyCritical {
		return d.alert(title, message, "")
	}
	return d.notify(title, message, "")
}

// Nop drops every notification.
type Nop struct{}

func (Nop) Send(string, string, Urgency) error { return nil }

// Recorder keeps every notification in memory.
type Recorder struct {
	Sent []Notification
	Err  error
}

// Notification is one recorded call to Send.
type Notification struct {
	Title   string
	Message string
	Urgency Urgency
}

func (r *Recorder) Send(title, message string, urgency Urgency) error {
	r.Sent = append(r.Sent, Notification{Title: title, Message: message, Urgency: urgency})
	return r.Err
}
