package diagnosis

import "testing"

func TestRuleBased_IngrownToenail(t *testing.T) {
	d := RuleBased(TriageInput{
		Category: "Nail",
		Details:  "ingrown toenail on the left big toe",
		Symptoms: []string{"Pain"},
	})

	if len(d.Likelihoods) != 1 {
		t.Fatalf("expected exactly one likelihood, got %d", len(d.Likelihoods))
	}
	if d.Likelihoods[0].Condition != "Ingrown toenail (onychocryptosis)" {
		t.Errorf("unexpected condition %q", d.Likelihoods[0].Condition)
	}
	if d.Likelihoods[0].Probability != 0.7 {
		t.Errorf("expected probability 0.7, got %v", d.Likelihoods[0].Probability)
	}
	if d.Urgency != UrgencyRoutine {
		t.Errorf("expected routine urgency, got %s", d.Urgency)
	}
	if len(d.Recommendations) != 3 {
		t.Errorf("expected the 3 fixed recommendations, got %v", d.Recommendations)
	}
}

func TestRuleBased_HeelPain(t *testing.T) {
	d := RuleBased(TriageInput{
		Category: "Heel",
		Details:  "heel pain for 2 weeks",
		Symptoms: []string{"Pain"},
	})

	if d.Likelihoods[0].Condition != "Plantar fasciitis" {
		t.Errorf("expected Plantar fasciitis on top, got %q", d.Likelihoods[0].Condition)
	}
	if d.Urgency != UrgencyRoutine {
		t.Errorf("expected routine urgency, got %s", d.Urgency)
	}
}

func TestRuleBased_SymptomsContributeToHaystack(t *testing.T) {
	// "heel" from category, "sore" only from the symptom tags.
	d := RuleBased(TriageInput{
		Category: "Heel",
		Details:  "hurts in the morning",
		Symptoms: []string{"Sore"},
	})
	if d.Likelihoods[0].Condition != "Plantar fasciitis" {
		t.Errorf("expected symptoms to be matched, got %q", d.Likelihoods[0].Condition)
	}
}

func TestRuleBased_UrgencyEscalation(t *testing.T) {
	d := RuleBased(TriageInput{
		Category: "Nail",
		Details:  "ingrown toenail with redness and swelling and fever",
	})

	if d.Urgency != UrgencyUrgent {
		t.Errorf("expected urgent, got %s", d.Urgency)
	}
	found := false
	for _, l := range d.Likelihoods {
		if l.Condition == "Ingrown toenail (onychocryptosis)" {
			found = true
		}
	}
	if !found {
		t.Error("expected the ingrown-toenail likelihood to survive the escalation rule")
	}
}

func TestRuleBased_NoMatchUsesGenericList(t *testing.T) {
	d := RuleBased(TriageInput{Category: "Other", Details: "mild ache"})

	want := []Likelihood{
		{Condition: "Mechanical foot pain", Probability: 0.4},
		{Condition: "Skin/soft tissue irritation", Probability: 0.3},
		{Condition: "Nail disorder", Probability: 0.2},
	}
	if len(d.Likelihoods) != len(want) {
		t.Fatalf("expected %d likelihoods, got %d", len(want), len(d.Likelihoods))
	}
	for i, l := range d.Likelihoods {
		if l != want[i] {
			t.Errorf("likelihood %d: expected %+v, got %+v", i, want[i], l)
		}
	}
	if d.Summary != "Most likely: Mechanical foot pain. Consider others listed. Recommendations provided." {
		t.Errorf("unexpected summary %q", d.Summary)
	}
}

func TestRuleBased_RecommendationsDedupedAndCapped(t *testing.T) {
	// Fire every rule at once.
	d := RuleBased(TriageInput{
		Category: "Foot",
		Details:  "ingrown toenail, heel pain, itch between toes, redness swelling fever",
	})

	if len(d.Recommendations) > 6 {
		t.Errorf("expected at most 6 recommendations, got %d", len(d.Recommendations))
	}
	seen := make(map[string]bool)
	for _, r := range d.Recommendations {
		if seen[r] {
			t.Errorf("duplicate recommendation %q", r)
		}
		seen[r] = true
	}
	if len(d.Likelihoods) != 3 {
		t.Errorf("expected likelihoods capped at 3, got %d", len(d.Likelihoods))
	}
}

func TestRuleBased_RuleOrderIsStable(t *testing.T) {
	d := RuleBased(TriageInput{
		Category: "Foot",
		Details:  "heel pain and an ingrown toenail",
	})
	// Ingrown-toenail is rule 1 and must come first regardless of wording order.
	if d.Likelihoods[0].Condition != "Ingrown toenail (onychocryptosis)" {
		t.Errorf("expected rule-fire order, got %q first", d.Likelihoods[0].Condition)
	}
	if d.Likelihoods[1].Condition != "Plantar fasciitis" {
		t.Errorf("expected Plantar fasciitis second, got %q", d.Likelihoods[1].Condition)
	}
}
