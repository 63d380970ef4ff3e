package assistant

import (
	"strings"

	"github.com/jonathan/tradepath/internal/types"
)

// DemoQuestion is a scripted question with a hand-authored answer that
// bypasses ranking entirely.
type DemoQuestion struct {
	Question string              `json:"question"`
	Response types.VideoResponse `json:"response"`
}

// DemoQuestions returns the scripted walkthrough questions, in the order the
// auto demo asks them. Each call returns a fresh copy.
func DemoQuestions() []DemoQuestion {
	return []DemoQuestion{
		{
			Question: "When the breaker is turned on, which wire does it feed first?",
			Response: types.VideoResponse{
				Message: "Great question about breaker wiring! When a breaker is turned on, it feeds the hot (live) wire first. This is a fundamental concept in electrical safety and circuit operation.\n\nJumping to 1:12 where this is demonstrated exactly!",
				Timestamps: []types.RankedTimestamp{
					{
						Timestamp:      72,
						RelevanceScore: 0.98,
						Description:    "Breaker operation and wire feed sequence - shows exactly which wire gets power first",
						Context:        "Safety and circuit fundamentals",
					},
				},
				SuggestedQuestions: []string{
					"What happens if the breaker trips?",
					"How do you safely reset a breaker?",
				},
				ShouldAutoPlay: true,
				Confidence:     0.95,
			},
		},
		{
			Question: "How do I calculate voltage in a parallel circuit?",
			Response: types.VideoResponse{
				Message: "I found relevant information about your question:\n\n• [3:45] In parallel circuits, voltage remains constant across all branches, but current divides. To calculate...\n• [5:20] When analyzing parallel circuits, remember that each path provides an independent route for current...\n\nI recommend starting at 3:45 for the most comprehensive explanation.",
				Timestamps: []types.RankedTimestamp{
					{
						Timestamp:      225,
						RelevanceScore: 0.95,
						Description:    "In parallel circuits, voltage remains constant across all branches, but current divides. To calculate...",
						Context:        "Circuit design fundamentals",
					},
					{
						Timestamp:      320,
						RelevanceScore: 0.85,
						Description:    "When analyzing parallel circuits, remember that each path provides an independent route for current...",
						Context:        "Circuit design fundamentals",
					},
				},
				SuggestedQuestions: []string{
					"What tools are essential for circuit design?",
					"How do I calculate power consumption?",
				},
				ShouldAutoPlay: true,
				Confidence:     0.9,
			},
		},
		{
			Question: "What safety equipment do I need?",
			Response: types.VideoResponse{
				Message: "I found relevant information about your question:\n\n• [1:15] Safety is paramount when working with electrical circuits. Always wear safety glasses, use insulated...\n\nJumping to 1:15 where this topic is covered in detail.",
				Timestamps: []types.RankedTimestamp{
					{
						Timestamp:      75,
						RelevanceScore: 0.98,
						Description:    "Safety is paramount when working with electrical circuits. Always wear safety glasses, use insulated...",
						Context:        "Safety and precautions",
					},
				},
				SuggestedQuestions: []string{
					"What are the most common circuit design mistakes?",
					"What voltage levels require special precautions?",
				},
				ShouldAutoPlay: true,
				Confidence:     0.95,
			},
		},
		{
			Question: "Can you explain Ohm's law?",
			Response: types.VideoResponse{
				Message: "I found relevant information about your question:\n\n• [2:05] Ohm's law is the foundation of circuit analysis. It states that voltage equals current times...\n• [6:30] Practical application of Ohm's law: If you have a 12-volt battery and a 4-ohm resistor...\n• [8:45] Advanced Ohm's law applications include power calculations. Power equals voltage times current...\n\nI recommend starting at 2:05 for the most comprehensive explanation.",
				Timestamps: []types.RankedTimestamp{
					{
						Timestamp:      125,
						RelevanceScore: 0.95,
						Description:    "Ohm's law is the foundation of circuit analysis. It states that voltage equals current times...",
						Context:        "Theoretical concepts",
					},
					{
						Timestamp:      390,
						RelevanceScore: 0.85,
						Description:    "Practical application of Ohm's law: If you have a 12-volt battery and a 4-ohm resistor...",
						Context:        "Hands-on demonstration",
					},
					{
						Timestamp:      525,
						RelevanceScore: 0.80,
						Description:    "Advanced Ohm's law applications include power calculations. Power equals voltage times current...",
						Context:        "Mathematical calculations",
					},
				},
				SuggestedQuestions: []string{
					"How do I calculate power consumption?",
					"What's the best way to measure circuit values?",
				},
				ShouldAutoPlay: true,
				Confidence:     0.92,
			},
		},
	}
}

// findDemo matches a question against the table, ignoring case.
func findDemo(demos []DemoQuestion, question string) (types.VideoResponse, bool) {
	for _, d := range demos {
		if strings.EqualFold(d.Question, question) {
			return cloneResponse(d.Response), true
		}
	}
	return types.VideoResponse{}, false
}

func cloneResponse(r types.VideoResponse) types.VideoResponse {
	out := r
	out.Timestamps = append([]types.RankedTimestamp(nil), r.Timestamps...)
	out.SuggestedQuestions = append([]string(nil), r.SuggestedQuestions...)
	return out
}
