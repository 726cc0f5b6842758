package diagnosis

import "strings"

// rule is one entry in the fallback table. Rules are independent, evaluated
// in order, and each fires at most once per call. A rule may contribute a
// likelihood, an urgency escalation, recommendations, or any combination.
type rule struct {
	name            string
	matches         func(haystack string) bool
	condition       string
	probability     float64
	urgency         Urgency
	recommendations []string
}

func anyOf(terms ...string) func(string) bool {
	return func(h string) bool {
		for _, t := range terms {
			if strings.Contains(h, t) {
				return true
			}
		}
		return false
	}
}

func allOf(preds ...func(string) bool) func(string) bool {
	return func(h string) bool {
		for _, p := range preds {
			if !p(h) {
				return false
			}
		}
		return true
	}
}

var triageRules = []rule{
	{
		name:        "ingrown-toenail",
		matches:     anyOf("ingrown", "paronychia", "toenail pain"),
		condition:   "Ingrown toenail (onychocryptosis)",
		probability: 0.7,
		recommendations: []string{
			"Warm water soaks 2-3x/day",
			"Avoid tight footwear",
			"Topical antiseptic; book clinic for possible partial nail avulsion",
		},
	},
	{
		name:        "plantar-fasciitis",
		matches:     allOf(anyOf("heel"), anyOf("pain", "sore")),
		condition:   "Plantar fasciitis",
		probability: 0.6,
		recommendations: []string{
			"Calf/plantar stretches",
			"Ice massage",
			"Heel cup orthotic",
		},
	},
	{
		name:        "athletes-foot",
		matches:     allOf(anyOf("itch"), anyOf("between toes", "peeling")),
		condition:   "Athlete's foot (tinea pedis)",
		probability: 0.6,
		recommendations: []string{
			"Keep feet dry",
			"Topical antifungal 2-4 weeks",
		},
	},
	{
		name:    "possible-infection",
		matches: allOf(anyOf("redness"), anyOf("swelling"), anyOf("fever")),
		urgency: UrgencyUrgent,
		recommendations: []string{
			"Seek urgent care to rule out cellulitis or infection",
		},
	},
}

// genericLikelihoods is substituted when no likelihood rule fires.
var genericLikelihoods = []Likelihood{
	{Condition: "Mechanical foot pain", Probability: 0.4},
	{Condition: "Skin/soft tissue irritation", Probability: 0.3},
	{Condition: "Nail disorder", Probability: 0.2},
}

var genericRecommendations = []string{
	"Activity modification",
	"Supportive footwear",
	"Book clinic assessment",
}

const (
	maxRuleLikelihoods     = 3
	maxRuleRecommendations = 6
)

// haystack flattens the intake into the lowercase text the rules match on.
func haystack(input TriageInput) string {
	return strings.ToLower(input.Category + " " + input.Details + " " + strings.Join(input.Symptoms, " "))
}

// RuleBased produces a diagnosis from the keyword-rule table alone.
// It is a pure function of the input and fully deterministic.
func RuleBased(input TriageInput) Diagnosis {
	text := haystack(input)

	var likely []Likelihood
	var recs []string
	urgency := UrgencyRoutine

	for _, r := range triageRules {
		if !r.matches(text) {
			continue
		}
		if r.condition != "" {
			likely = append(likely, Likelihood{Condition: r.condition, Probability: r.probability})
		}
		if r.urgency != "" {
			urgency = r.urgency
		}
		recs = append(recs, r.recommendations...)
	}

	if len(likely) == 0 {
		likely = append(likely, genericLikelihoods...)
		recs = append(recs, genericRecommendations...)
	}

	if len(likely) > maxRuleLikelihoods {
		likely = likely[:maxRuleLikelihoods]
	}

	return Diagnosis{
		Summary:         "Most likely: " + likely[0].Condition + ". Consider others listed. Recommendations provided.",
		Likelihoods:     likely,
		Recommendations: dedupe(recs, maxRuleRecommendations),
		Urgency:         urgency,
	}
}

// dedupe keeps the first occurrence of each entry, capped at max.
func dedupe(in []string, max int) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
		if len(out) == max {
			break
		}
	}
	return out
}
