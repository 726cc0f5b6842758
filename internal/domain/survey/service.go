package survey

import (
	"context"
	"fmt"
	"time"

	"github.com/footcare/intake/internal/domain/intake"
	"github.com/footcare/intake/pkg/ident"
)

// SessionDirectory resolves a session to its patient. Satisfied by the
// intake session repository.
type SessionDirectory interface {
	Get(ctx context.Context, id string) (*intake.Session, error)
}

// invalidInput marks a rejected client value so the handler maps it to 400
// while repository failures stay 500.
type invalidInput string

func (e invalidInput) Error() string { return string(e) }

type Service struct {
	responses ResponseRepository
	sessions  SessionDirectory
}

func NewService(responses ResponseRepository, sessions SessionDirectory) *Service {
	return &Service{responses: responses, sessions: sessions}
}

// Submit records a satisfaction rating for a session. Nothing is written when
// the session is unknown.
func (s *Service) Submit(ctx context.Context, sessionID string, rating int, feedback string) (*Response, error) {
	if sessionID == "" || rating == 0 {
		return nil, invalidInput("sessionId and rating are required")
	}
	if rating < 1 || rating > 5 {
		return nil, invalidInput(fmt.Sprintf("rating must be between 1 and 5, got %d", rating))
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, intake.ErrSessionNotFound
	}

	resp := &Response{
		ID:        ident.New("survey"),
		SessionID: sessionID,
		PatientID: session.Patient.ID,
		Rating:    rating,
		Feedback:  feedback,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := s.responses.Add(ctx, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
