package diagnosis

import (
	"context"

	"github.com/rs/zerolog"
)

// Engine produces diagnoses, preferring the external completion service and
// degrading silently to the rule table.
type Engine struct {
	client CompletionClient
	logger zerolog.Logger
}

// NewEngine creates an Engine. A nil client pins the engine to the rule-based
// path, which is how a deployment without an API key runs.
func NewEngine(client CompletionClient, logger zerolog.Logger) *Engine {
	return &Engine{client: client, logger: logger}
}

// Diagnose assesses the intake. It always returns a well-formed Diagnosis:
// completion errors, unparseable replies, and a missing client all land on
// the deterministic rule path without surfacing an error to the caller.
func (e *Engine) Diagnose(ctx context.Context, input TriageInput, patientAge int) Diagnosis {
	if e.client == nil {
		return RuleBased(input)
	}

	content, err := e.client.Complete(ctx, systemPrompt, userPrompt(input, patientAge))
	if err != nil {
		e.logger.Warn().Err(err).Msg("completion call failed, using rule-based diagnosis")
		return RuleBased(input)
	}

	d, err := ParseDiagnosis(content)
	if err != nil {
		e.logger.Warn().Err(err).Msg("unparseable completion reply, using rule-based diagnosis")
		return RuleBased(input)
	}
	return d
}
