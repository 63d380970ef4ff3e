package assistant

import (
	"strings"

	"github.com/jonathan/tradepath/internal/random"
)

// Question categories used to pick follow-up suggestions.
const (
	CategorySafety        = "safety"
	CategoryComponents    = "components"
	CategoryCalculations  = "calculations"
	CategoryCircuitBasics = "circuit-basics"
	CategoryGeneral       = "general"
)

const (
	maxFollowUps   = 2
	followUpCutoff = 0.3
)

// categoryRules are evaluated in order; the first match wins.
var categoryRules = []struct {
	category string
	terms    []string
}{
	{CategorySafety, []string{"safety", "danger", "precaution"}},
	{CategoryComponents, []string{"resistor", "capacitor", "component"}},
	{CategoryCalculations, []string{"calculate", "formula", "ohm"}},
	{CategoryCircuitBasics, []string{"circuit", "series", "parallel"}},
}

var followUpPools = map[string][]string{
	CategoryCircuitBasics: {
		"What safety equipment do I need for circuit work?",
		"How do I calculate voltage in a parallel circuit?",
		"What tools are essential for circuit design?",
	},
	CategoryComponents: {
		"How do resistors affect current flow?",
		"When should I use capacitors in my circuit?",
		"What's the difference between AC and DC components?",
	},
	CategorySafety: {
		"What are the most common circuit design mistakes?",
		"How do I test if my circuit is safe?",
		"What voltage levels require special precautions?",
	},
	CategoryCalculations: {
		"Can you show me more examples of Ohm's law?",
		"How do I calculate power consumption?",
		"What's the best way to measure circuit values?",
	},
	CategoryGeneral: {
		"What are the fundamental circuit design principles?",
		"How do I troubleshoot a circuit that isn't working?",
		"What should beginners know about circuit safety?",
	},
}

// Categorize assigns a question to a follow-up category.
func Categorize(question string) string {
	lower := strings.ToLower(question)
	for _, rule := range categoryRules {
		for _, term := range rule.terms {
			if strings.Contains(lower, term) {
				return rule.category
			}
		}
	}
	return CategoryGeneral
}

// FollowUps samples at most two suggestions from the question's category
// pool. Each candidate survives with probability 0.7; production sources
// are unseeded so the selection varies between calls.
func FollowUps(question string, src random.Source) []string {
	pool := followUpPools[Categorize(question)]
	kept := make([]string, 0, maxFollowUps)
	for _, candidate := range pool {
		if src.Float64() > followUpCutoff && len(kept) < maxFollowUps {
			kept = append(kept, candidate)
		}
	}
	return kept
}
