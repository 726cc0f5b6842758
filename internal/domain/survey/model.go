package survey

// Response is one satisfaction survey submission, append-only.
type Response struct {
	ID        string `json:"id"`
	SessionID string `json:"sessionId"`
	PatientID string `json:"patientId"`
	Rating    int    `json:"rating"`
	Feedback  string `json:"feedback,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}
