package intake

import (
	"context"
	"errors"
)

// ErrSessionNotFound is returned when a referenced session does not exist.
var ErrSessionNotFound = errors.New("invalid session")

type SessionRepository interface {
	// Upsert stores the session keyed by id, last write wins, and upserts
	// the embedded patient keyed by patient id.
	Upsert(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	// List returns all sessions ordered descending by CreatedAt.
	List(ctx context.Context) ([]*Session, error)
	// CountPatients returns the number of distinct patient ids seen.
	CountPatients(ctx context.Context) (int, error)
}

type TriageRepository interface {
	Add(ctx context.Context, r *TriageRecord) error
	List(ctx context.Context) ([]*TriageRecord, error)
	ListBySession(ctx context.Context, sessionID string) ([]*TriageRecord, error)
}
