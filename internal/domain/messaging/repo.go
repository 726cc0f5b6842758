package messaging

import "context"

type MessageRepository interface {
	Add(ctx context.Context, m *Message) error
	// ListBySession returns the session's messages ordered ascending by
	// CreatedAt; messages sharing a timestamp keep insertion order.
	ListBySession(ctx context.Context, sessionID string) ([]*Message, error)
}
