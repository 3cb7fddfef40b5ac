package domain

// Response is the delivery envelope for one outgoing assistant message.
type Response struct {
	ChatID int64
	Text   string
	Err    error
}
