package diagnosis

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Substitutes when a structurally valid reply carries empty lists.
var fallbackLikelihoods = []Likelihood{
	{Condition: "Undifferentiated foot complaint", Probability: 0.5},
	{Condition: "Soft tissue inflammation", Probability: 0.3},
	{Condition: "Refer to clinician", Probability: 0.2},
}

var fallbackRecommendations = []string{
	"Monitor symptoms",
	"Book clinic assessment",
}

const (
	maxLikelihoods     = 5
	maxRecommendations = 10
)

type rawLikelihood struct {
	Condition   interface{} `json:"condition"`
	Probability interface{} `json:"probability"`
}

type rawDiagnosis struct {
	Summary         interface{}     `json:"summary"`
	Urgency         interface{}     `json:"urgency"`
	Likelihoods     []rawLikelihood `json:"likelihoods"`
	Recommendations []interface{}   `json:"recommendations"`
}

// ParseDiagnosis validates an untrusted completion reply into a well-formed
// Diagnosis. It either succeeds with every field coerced, clamped, and capped,
// or returns an error so the caller can fall back to the rule engine. It never
// returns a partially valid Diagnosis.
func ParseDiagnosis(content string) (Diagnosis, error) {
	var raw rawDiagnosis
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return Diagnosis{}, fmt.Errorf("parse diagnosis reply: %w", err)
	}

	likely := make([]Likelihood, 0, len(raw.Likelihoods))
	for _, l := range raw.Likelihoods {
		p, ok := asProbability(l.Probability)
		if !ok {
			continue
		}
		likely = append(likely, Likelihood{
			Condition:   asString(l.Condition, "Unknown"),
			Probability: p,
		})
		if len(likely) == maxLikelihoods {
			break
		}
	}
	if len(likely) == 0 {
		likely = append(likely, fallbackLikelihoods...)
	}

	recs := make([]string, 0, len(raw.Recommendations))
	for _, r := range raw.Recommendations {
		recs = append(recs, asString(r, ""))
		if len(recs) == maxRecommendations {
			break
		}
	}
	if len(recs) == 0 {
		recs = append(recs, fallbackRecommendations...)
	}

	urgency := Urgency(asString(raw.Urgency, ""))
	if !validUrgencies[urgency] {
		urgency = UrgencyRoutine
	}

	return Diagnosis{
		Summary:         asString(raw.Summary, "Assessment not available."),
		Likelihoods:     likely,
		Recommendations: recs,
		Urgency:         urgency,
	}, nil
}

func asString(v interface{}, fallback string) string {
	switch s := v.(type) {
	case nil:
		return fallback
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprintf("%v", s)
	}
}

// asProbability coerces a probability into [0,1]; entries that cannot be
// read as a number are dropped by the caller.
func asProbability(v interface{}) (float64, bool) {
	var p float64
	switch n := v.(type) {
	case float64:
		p = n
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		p = parsed
	case nil:
		p = 0
	default:
		return 0, false
	}
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return p, true
}
