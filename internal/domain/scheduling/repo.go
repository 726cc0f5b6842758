package scheduling

import "context"

type AppointmentRepository interface {
	Add(ctx context.Context, a *Appointment) error
	List(ctx context.Context) ([]*Appointment, error)
	ListBySession(ctx context.Context, sessionID string) ([]*Appointment, error)
}
