package ports

import "context"

// Mail is a plain text message to a single recipient.
type Mail struct {
	To      string
	Subject string
	Body    string
}

// Mailer sends notification mail. Delivery is best effort: callers log a
// failure and carry on.
type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}
