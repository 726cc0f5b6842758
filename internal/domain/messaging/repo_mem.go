package messaging

import (
	"context"
	"sort"
	"sync"
)

// MessageRepoMem is the process-lifetime, in-memory message log. Appends are
// O(1); reads scan and sort. Data does not survive a restart.
type MessageRepoMem struct {
	mu       sync.RWMutex
	messages []*Message
}

func NewMessageRepoMem() *MessageRepoMem {
	return &MessageRepoMem{}
}

func (r *MessageRepoMem) Add(_ context.Context, m *Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, m)
	return nil
}

func (r *MessageRepoMem) ListBySession(_ context.Context, sessionID string) ([]*Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Message, 0)
	for _, m := range r.messages {
		if m.SessionID == sessionID {
			result = append(result, m)
		}
	}
	// Stable sort so equal timestamps keep insertion order.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt < result[j].CreatedAt
	})
	return result, nil
}
