// Package compatibility scores how well a user fits a trade from resume
// skills and questionnaire answers.
package compatibility

import (
	"strings"

	"github.com/jonathan/tradepath/internal/parsing"
	"github.com/jonathan/tradepath/internal/skills"
	"github.com/jonathan/tradepath/internal/types"
)

// Weights of the questionnaire components. They sum to 0.70 and are added
// on top of the skill match fraction, which carries an implicit weight of 1.
const (
	motivationWeight     = 0.15
	handsOnWeight        = 0.20
	physicalWeight       = 0.10
	problemSolvingWeight = 0.15
	availabilityWeight   = 0.10
)

const defaultPhysicalRating = 5

var (
	motivationKeywords     = []string{"passionate", "career change", "stable", "growth", "opportunity"}
	handsOnKeywords        = []string{"fix", "repair", "build", "diy", "tools", "hands-on", "construction", "mechanical"}
	problemSolvingKeywords = []string{"analyze", "solve", "debug", "troubleshoot", "systematic", "logical", "step"}
)

// computeSkillMatch returns the importance-weighted fraction of required
// skills the user has. Returns 0 when there are no required skills.
func computeSkillMatch(userSkills []string, required []types.Skill) float64 {
	matched := 0
	total := 0
	for _, skill := range required {
		if skills.HasSkill(userSkills, skill.Name) {
			matched += skill.Importance
		}
		total += skill.Importance
	}
	if total == 0 {
		return 0
	}
	return float64(matched) / float64(total)
}

// computeMotivationScore returns 0.8 when the answer mentions any motivation keyword, else 0.4.
func computeMotivationScore(answer string) float64 {
	if countKeywords(answer, motivationKeywords) > 0 {
		return 0.8
	}
	return 0.4
}

// computeHandsOnScore awards 0.2 per hands-on keyword, capped at 1.
func computeHandsOnScore(answer string) float64 {
	return min(float64(countKeywords(answer, handsOnKeywords))*0.2, 1)
}

// computePhysicalScore reads the leading rating of "<1-10> - <explanation>".
// Unparsable (or zero) ratings fall back to the neutral 5.
func computePhysicalScore(answer string) float64 {
	rating, ok := parsing.LeadingInt(parsing.FirstToken(answer))
	if !ok || rating == 0 {
		rating = defaultPhysicalRating
	}
	rating = max(0, min(rating, 10))
	return float64(rating) / 10
}

// computeProblemSolvingScore awards 0.15 per problem-solving keyword, capped at 1.
func computeProblemSolvingScore(answer string) float64 {
	return min(float64(countKeywords(answer, problemSolvingKeywords))*0.15, 1)
}

// computeAvailabilityScore maps schedule availability to a score.
func computeAvailabilityScore(answer string) float64 {
	lower := strings.ToLower(answer)
	if strings.Contains(lower, "full-time") || strings.Contains(lower, "flexible") {
		return 1
	}
	if strings.Contains(lower, "part-time") {
		return 0.7
	}
	return 0.5
}

// countKeywords counts how many distinct keywords appear in text (case-insensitive).
func countKeywords(text string, keywords []string) int {
	lower := strings.ToLower(text)
	matches := 0
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			matches++
		}
	}
	return matches
}
