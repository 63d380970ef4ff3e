package pipeline

import (
	"strings"

	"github.com/jonathan/tradepath/internal/types"
)

// NextStep is one suggested action shown with an analysis.
type NextStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

const maxNextSteps = 3

// MotivationalMessage returns the encouragement shown for a score.
func MotivationalMessage(score int) string {
	switch {
	case score >= 80:
		return "Excellent match! You're well-positioned for this career transition."
	case score >= 60:
		return "Great potential! With focused learning, you'll be ready soon."
	case score >= 40:
		return "Good foundation! A structured learning path will get you there."
	default:
		return "Every expert was once a beginner. Your journey starts here!"
	}
}

// NextSteps suggests up to three actions based on the gaps. Safety and tool
// gaps come first; joining a trade community is always suggested.
func NextSteps(trade string, gaps []types.SkillGap) []NextStep {
	steps := make([]NextStep, 0, maxNextSteps)

	if gapMentions(gaps, "safety") {
		steps = append(steps, NextStep{
			Title:       "Start with Safety Training",
			Description: "Complete OSHA safety certification - essential for all trades",
		})
	}
	if gapMentions(gaps, "tool") {
		steps = append(steps, NextStep{
			Title:       "Build Tool Familiarity",
			Description: "Practice with basic trade tools and equipment",
		})
	}
	steps = append(steps, NextStep{
		Title:       communityTitle(trade),
		Description: "Connect with professionals and learn from their experiences",
	})

	if len(steps) > maxNextSteps {
		steps = steps[:maxNextSteps]
	}
	return steps
}

func gapMentions(gaps []types.SkillGap, word string) bool {
	for _, gap := range gaps {
		if strings.Contains(strings.ToLower(gap.Skill), word) {
			return true
		}
	}
	return false
}

func communityTitle(trade string) string {
	switch trade {
	case types.TradeElectrician:
		return "Join Electrical Communities"
	case types.TradePlumber:
		return "Join Plumbing Communities"
	default:
		return "Join Trade Communities"
	}
}
