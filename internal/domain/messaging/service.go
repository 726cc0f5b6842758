package messaging

import (
	"context"
	"time"

	"github.com/footcare/intake/pkg/ident"
)

// invalidInput marks a rejected client value so the handler maps it to 400
// while repository failures stay 500.
type invalidInput string

func (e invalidInput) Error() string { return string(e) }

type Service struct {
	messages MessageRepository
}

func NewService(messages MessageRepository) *Service {
	return &Service{messages: messages}
}

// PostClinicMessage appends a staff-authored message to a session's log.
// The sender is always "clinic" on this path.
func (s *Service) PostClinicMessage(ctx context.Context, sessionID, text string) (*Message, error) {
	if sessionID == "" || text == "" {
		return nil, invalidInput("sessionId and text are required")
	}
	m := &Message{
		ID:        ident.New("msg"),
		SessionID: sessionID,
		From:      SenderClinic,
		Text:      text,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := s.messages.Add(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// History returns a session's chat log in chronological order.
func (s *Service) History(ctx context.Context, sessionID string) ([]*Message, error) {
	if sessionID == "" {
		return nil, invalidInput("sessionId is required")
	}
	return s.messages.ListBySession(ctx, sessionID)
}
