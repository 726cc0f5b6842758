package diagnosis

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = `You are an AI foot health practitioner for a footcare clinic.
You will assess patient's symptoms and provide a concise differential diagnosis (top 3),
with probabilities, urgency, and actionable recommendations.
Focus on common foot issues such as ingrown toenail, plantar fasciitis, athlete's foot,
bunions, blisters, corns/calluses, heel spurs, toenail fungus.
Be cautious: do not provide definitive diagnosis; advise seeing a clinician when needed.
`

// CompletionClient is the slice of a chat-completion API the engine needs.
type CompletionClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// OpenAIClient calls the OpenAI chat completion API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient constructs an OpenAI-backed completion client.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Complete sends a single chat completion request. No retry, no timeout
// beyond whatever deadline the context carries.
func (c *OpenAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// userPrompt renders the intake into the prompt sent to the model.
func userPrompt(input TriageInput, patientAge int) string {
	duration := "unknown"
	if input.DurationDays != nil {
		duration = fmt.Sprintf("%d", *input.DurationDays)
	}
	return fmt.Sprintf(
		"Patient age: %d\nCategory: %s\nSymptoms: %s\nDetails: %s\nDuration (days): %s\n"+
			"Please respond in JSON with keys: summary (string), urgency (one of emergency/urgent/routine), "+
			"likelihoods (array of {condition, probability 0-1}), recommendations (array of string).",
		patientAge, input.Category, strings.Join(input.Symptoms, ", "), input.Details, duration,
	)
}
