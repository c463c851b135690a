package model

// Notifier sends alert notifications to an external channel such as email.
type Notifier interface {
	Send(subject, body string) error
}
