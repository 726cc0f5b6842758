package scheduling

import (
	"context"
	"sync"
)

// AppointmentRepoMem is the append-only, in-memory appointment log.
type AppointmentRepoMem struct {
	mu           sync.RWMutex
	appointments []*Appointment
}

func NewAppointmentRepoMem() *AppointmentRepoMem {
	return &AppointmentRepoMem{}
}

func (r *AppointmentRepoMem) Add(_ context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appointments = append(r.appointments, a)
	return nil
}

func (r *AppointmentRepoMem) List(_ context.Context) ([]*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*Appointment, 0, len(r.appointments))
	result = append(result, r.appointments...)
	return result, nil
}

func (r *AppointmentRepoMem) ListBySession(_ context.Context, sessionID string) ([]*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*Appointment, 0)
	for _, a := range r.appointments {
		if a.SessionID == sessionID {
			result = append(result, a)
		}
	}
	return result, nil
}
