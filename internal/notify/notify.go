// Package notify defines the notification boundary. The core only emits
// the desire to notify as a value; how it reaches the user (system
// notification, audible beep) belongs to the delivery collaborator behind
// Sink.
package notify

import "daykeeper/internal/util"

// Kind classifies what triggered a notification.
type Kind string

const (
	KindReminder Kind = "reminder"
	KindAlarm    Kind = "alarm"
	KindTimer    Kind = "timer"
)

// Notification is the value the core emits when something comes due.
type Notification struct {
	Kind  Kind
	Title string
	Body  string
}

// Sink delivers notifications.
type Sink interface {
	Notify(n Notification)
}

// LogSink writes notifications to the application log; it is the default
// delivery collaborator when no system channel is wired.
type LogSink struct{}

func (LogSink) Notify(n Notification) {
	util.LogInfo("notify", string(n.Kind)+" "+n.Title+": "+n.Body)
}
