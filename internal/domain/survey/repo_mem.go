package survey

import (
	"context"
	"sync"
)

// ResponseRepoMem is the append-only, in-memory survey log.
type ResponseRepoMem struct {
	mu        sync.RWMutex
	responses []*Response
}

func NewResponseRepoMem() *ResponseRepoMem {
	return &ResponseRepoMem{}
}

func (r *ResponseRepoMem) Add(_ context.Context, resp *Response) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses = append(r.responses, resp)
	return nil
}

func (r *ResponseRepoMem) List(_ context.Context) ([]*Response, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*Response, 0, len(r.responses))
	result = append(result, r.responses...)
	return result, nil
}

func (r *ResponseRepoMem) ListBySession(_ context.Context, sessionID string) ([]*Response, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*Response, 0)
	for _, resp := range r.responses {
		if resp.SessionID == sessionID {
			result = append(result, resp)
		}
	}
	return result, nil
}
