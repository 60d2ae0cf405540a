// Package email sends transactional notifications over SMTP.
package email

// Message is a single outbound notification.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Provider delivers notification messages. Implementations must be
// safe for concurrent use; services send from goroutines.
type Provider interface {
	Send(msg Message) error
}
