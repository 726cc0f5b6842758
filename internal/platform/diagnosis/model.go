// Package diagnosis produces a ranked differential diagnosis for a triage
// intake. When an external completion service is configured its reply is
// normalized into a strict shape; on any failure, or with no service at all,
// a deterministic keyword-rule engine takes over. Diagnose never fails
// outward.
package diagnosis

// Urgency classifies how quickly a patient should be seen.
type Urgency string

const (
	UrgencyEmergency Urgency = "emergency"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyRoutine   Urgency = "routine"
)

var validUrgencies = map[Urgency]bool{
	UrgencyEmergency: true,
	UrgencyUrgent:    true,
	UrgencyRoutine:   true,
}

// TriageInput is the structured symptom picture collected from the patient.
type TriageInput struct {
	Category     string   `json:"category"`
	Details      string   `json:"details"`
	Symptoms     []string `json:"symptoms"`
	DurationDays *int     `json:"durationDays,omitempty"`
}

// Likelihood is one (condition, probability) pair in a differential.
// Probability is a relative confidence in [0,1], not calibrated.
type Likelihood struct {
	Condition   string  `json:"condition"`
	Probability float64 `json:"probability"`
}

// Diagnosis is the assessment returned to the patient.
type Diagnosis struct {
	Summary         string       `json:"summary"`
	Likelihoods     []Likelihood `json:"likelihoods"`
	Recommendations []string     `json:"recommendations"`
	Urgency         Urgency      `json:"urgency"`
}
