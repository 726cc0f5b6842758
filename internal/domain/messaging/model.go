package messaging

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderPatient Sender = "patient"
	SenderClinic  Sender = "clinic"
	SenderAI      Sender = "ai"
)

// Message is one entry in a session's chat log. The log is append-only and
// reads are ordered by CreatedAt.
type Message struct {
	ID        string `json:"id"`
	SessionID string `json:"sessionId"`
	From      Sender `json:"from"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"`
}
