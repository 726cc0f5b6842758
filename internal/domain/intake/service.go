package intake

import (
	"context"
	"fmt"
	"time"

	"github.com/footcare/intake/internal/domain/messaging"
	"github.com/footcare/intake/internal/platform/diagnosis"
	"github.com/footcare/intake/pkg/ident"
)

// Diagnoser is the slice of the diagnosis engine the triage flow needs.
type Diagnoser interface {
	Diagnose(ctx context.Context, input diagnosis.TriageInput, patientAge int) diagnosis.Diagnosis
}

type Service struct {
	sessions SessionRepository
	triages  TriageRepository
	messages messaging.MessageRepository
	engine   Diagnoser
}

func NewService(sessions SessionRepository, triages TriageRepository, messages messaging.MessageRepository, engine Diagnoser) *Service {
	return &Service{
		sessions: sessions,
		triages:  triages,
		messages: messages,
		engine:   engine,
	}
}

// InboundMessage is a prior chat turn submitted alongside a triage request.
type InboundMessage struct {
	From string `json:"from"`
	Text string `json:"text"`
}

// TriageRequest is the full intake payload.
type TriageRequest struct {
	SessionID string                 `json:"sessionId"`
	Patient   *Patient               `json:"patient"`
	Input     *diagnosis.TriageInput `json:"input"`
	Messages  []InboundMessage       `json:"messages,omitempty"`
}

// TriageResult is what the chat client renders after an intake.
type TriageResult struct {
	Diagnosis diagnosis.Diagnosis  `json:"diagnosis"`
	RecordID  string               `json:"recordId"`
	History   []*messaging.Message `json:"history"`
}

// Triage runs the full intake flow: ensure the session exists, persist any
// prior chat turns, diagnose, log the assessment as an "ai" message, and
// append the triage record.
func (s *Service) Triage(ctx context.Context, req TriageRequest) (*TriageResult, error) {
	if req.SessionID == "" || req.Patient == nil || req.Input == nil {
		return nil, fmt.Errorf("sessionId, patient and input are required")
	}

	if _, err := s.sessions.Get(ctx, req.SessionID); err != nil {
		sess := &Session{
			ID:        req.SessionID,
			Patient:   *req.Patient,
			CreatedAt: time.Now().UnixMilli(),
		}
		if err := s.sessions.Upsert(ctx, sess); err != nil {
			return nil, err
		}
	}

	// Prior turns come in untyped. Anything not claiming to be the patient
	// is stored as "clinic", including "ai", which only this service emits.
	for _, m := range req.Messages {
		from := messaging.SenderClinic
		if m.From == string(messaging.SenderPatient) {
			from = messaging.SenderPatient
		}
		msg := &messaging.Message{
			ID:        ident.New("msg"),
			SessionID: req.SessionID,
			From:      from,
			Text:      m.Text,
			CreatedAt: time.Now().UnixMilli(),
		}
		if err := s.messages.Add(ctx, msg); err != nil {
			return nil, err
		}
	}

	diag := s.engine.Diagnose(ctx, *req.Input, req.Patient.Age)

	aiMsg := &messaging.Message{
		ID:        ident.New("msg"),
		SessionID: req.SessionID,
		From:      messaging.SenderAI,
		Text:      diag.Summary,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := s.messages.Add(ctx, aiMsg); err != nil {
		return nil, err
	}

	record := &TriageRecord{
		ID:        ident.New("triage"),
		SessionID: req.SessionID,
		PatientID: req.Patient.ID,
		Input:     *req.Input,
		Diagnosis: diag,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := s.triages.Add(ctx, record); err != nil {
		return nil, err
	}

	history, err := s.messages.ListBySession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	return &TriageResult{
		Diagnosis: diag,
		RecordID:  record.ID,
		History:   history,
	}, nil
}

// GetSession looks up a session by id.
func (s *Service) GetSession(ctx context.Context, id string) (*Session, error) {
	return s.sessions.Get(ctx, id)
}

// ListSessions returns all sessions, newest first.
func (s *Service) ListSessions(ctx context.Context) ([]*Session, error) {
	return s.sessions.List(ctx)
}

// ListTriagesBySession returns a session's triage log entries.
func (s *Service) ListTriagesBySession(ctx context.Context, sessionID string) ([]*TriageRecord, error) {
	return s.triages.ListBySession(ctx, sessionID)
}
