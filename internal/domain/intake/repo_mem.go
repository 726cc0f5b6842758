package intake

import (
	"context"
	"sort"
	"sync"
)

// SessionRepoMem holds sessions and the patients embedded in them in process
// memory. Sessions are the only mutable records in the system: an upsert with
// an existing id replaces the stored session and patient.
type SessionRepoMem struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	patients map[string]*Patient
}

func NewSessionRepoMem() *SessionRepoMem {
	return &SessionRepoMem{
		sessions: make(map[string]*Session),
		patients: make(map[string]*Patient),
	}
}

func (r *SessionRepoMem) Upsert(_ context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
	p := s.Patient
	r.patients[p.ID] = &p
	return nil
}

func (r *SessionRepoMem) Get(_ context.Context, id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (r *SessionRepoMem) List(_ context.Context) ([]*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt > result[j].CreatedAt
	})
	return result, nil
}

func (r *SessionRepoMem) CountPatients(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.patients), nil
}

// TriageRepoMem is the append-only, in-memory triage log.
type TriageRepoMem struct {
	mu      sync.RWMutex
	records []*TriageRecord
}

func NewTriageRepoMem() *TriageRepoMem {
	return &TriageRepoMem{}
}

func (r *TriageRepoMem) Add(_ context.Context, rec *TriageRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
	return nil
}

func (r *TriageRepoMem) List(_ context.Context) ([]*TriageRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*TriageRecord, 0, len(r.records))
	result = append(result, r.records...)
	return result, nil
}

func (r *TriageRepoMem) ListBySession(_ context.Context, sessionID string) ([]*TriageRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*TriageRecord, 0)
	for _, rec := range r.records {
		if rec.SessionID == sessionID {
			result = append(result, rec)
		}
	}
	return result, nil
}
