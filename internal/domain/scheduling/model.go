package scheduling

import "time"

// AppointmentType distinguishes a first visit from a followup.
type AppointmentType string

const (
	TypeInitial  AppointmentType = "initial"
	TypeFollowup AppointmentType = "followup"
)

var validTypes = map[AppointmentType]bool{
	TypeInitial:  true,
	TypeFollowup: true,
}

// Appointment is an append-only booking. There is no update or cancel.
type Appointment struct {
	ID        string          `json:"id"`
	SessionID string          `json:"sessionId"`
	PatientID string          `json:"patientId"`
	StartISO  string          `json:"startIso"`
	EndISO    string          `json:"endIso"`
	Type      AppointmentType `json:"type"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt int64           `json:"createdAt"`
}

// Slot is a bookable 45-minute window not yet claimed by an appointment.
type Slot struct {
	StartISO string `json:"startIso"`
	EndISO   string `json:"endIso"`
}

// isoMillis is the wire format for instants, RFC 3339 UTC with millisecond
// precision. Booked-slot exclusion relies on exact string equality, so every
// instant goes through FormatISO.
const isoMillis = "2006-01-02T15:04:05.000Z"

// FormatISO renders an instant in the wire format.
func FormatISO(t time.Time) string {
	return t.UTC().Format(isoMillis)
}

// ParseISO parses an instant in the wire format.
func ParseISO(s string) (time.Time, error) {
	return time.Parse(isoMillis, s)
}
