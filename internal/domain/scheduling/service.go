package scheduling

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
	appointments AppointmentRepository
	sessions     SessionDirectory
	generator    SlotGenerator
}

func NewService(appointments AppointmentRepository, sessions SessionDirectory, generator SlotGenerator) *Service {
	return &Service{
		appointments: appointments,
		sessions:     sessions,
		generator:    generator,
	}
}

// AvailableSlots returns the open windows given the current appointment set.
func (s *Service) AvailableSlots(ctx context.Context) ([]Slot, error) {
	existing, err := s.appointments.List(ctx)
	if err != nil {
		return nil, err
	}
	booked := make(map[string]bool, len(existing))
	for _, a := range existing {
		booked[a.StartISO] = true
	}
	return s.generator.Available(booked), nil
}

// BookingRequest is a patient's request to claim a slot.
type BookingRequest struct {
	SessionID string          `json:"sessionId"`
	StartISO  string          `json:"startIso"`
	EndISO    string          `json:"endIso"`
	Type      AppointmentType `json:"type"`
	Notes     string          `json:"notes,omitempty"`
}

// Book appends an appointment for the session's patient and returns it along
// with the session's appointments so far.
func (s *Service) Book(ctx context.Context, req BookingRequest) (*Appointment, []*Appointment, error) {
	if req.SessionID == "" || req.StartISO == "" || req.EndISO == "" || req.Type == "" {
		return nil, nil, invalidInput("sessionId, startIso, endIso and type are required")
	}
	if !validTypes[req.Type] {
		return nil, nil, invalidInput(fmt.Sprintf("invalid appointment type: %s", req.Type))
	}

	session, err := s.sessions.Get(ctx, req.SessionID)
	if err != nil {
		return nil, nil, intake.ErrSessionNotFound
	}

	appt := &Appointment{
		ID:        ident.New("appt"),
		SessionID: req.SessionID,
		PatientID: session.Patient.ID,
		StartISO:  req.StartISO,
		EndISO:    req.EndISO,
		Type:      req.Type,
		Notes:     req.Notes,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := s.appointments.Add(ctx, appt); err != nil {
		return nil, nil, err
	}

	existing, err := s.appointments.ListBySession(ctx, req.SessionID)
	if err != nil {
		return nil, nil, err
	}
	return appt, existing, nil
}
