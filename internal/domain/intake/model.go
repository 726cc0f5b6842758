package intake

import (
	"github.com/footcare/intake/internal/platform/diagnosis"
)

// Patient holds the identity a chat client creates for itself. Keyed by
// client-generated id; a re-upserted patient replaces the previous record.
type Patient struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Age      int    `json:"age"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// Session is one patient's continuous chat interaction, with the patient
// embedded. Upserts are keyed by id, last write wins.
type Session struct {
	ID        string  `json:"id"`
	Patient   Patient `json:"patient"`
	CreatedAt int64   `json:"createdAt"`
}

// TriageRecord is one append-only log entry pairing an intake with the
// diagnosis produced for it.
type TriageRecord struct {
	ID        string                `json:"id"`
	SessionID string                `json:"sessionId"`
	PatientID string                `json:"patientId"`
	Input     diagnosis.TriageInput `json:"input"`
	Diagnosis diagnosis.Diagnosis   `json:"diagnosis"`
	CreatedAt int64                 `json:"createdAt"`
}
