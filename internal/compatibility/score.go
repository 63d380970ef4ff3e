package compatibility

import (
	"math"

	"github.com/jonathan/tradepath/internal/random"
	"github.com/jonathan/tradepath/internal/skills"
	"github.com/jonathan/tradepath/internal/types"
)

// Breakdown exposes every component of a compatibility score.
// The bonus fields are the raw sub-scores in [0,1], before weighting.
type Breakdown struct {
	SkillMatch     float64 `json:"skill_match"`
	Motivation     float64 `json:"motivation"`
	HandsOn        float64 `json:"hands_on"`
	Physical       float64 `json:"physical"`
	ProblemSolving float64 `json:"problem_solving"`
	Availability   float64 `json:"availability"`
	WeightedBonus  float64 `json:"weighted_bonus"`
	Raw            float64 `json:"raw"`
	Score          int     `json:"score"`
}

// Compute scores the user against an explicit required-skill list.
// The raw total (match fraction + weighted bonuses) can exceed 1 and is
// saturated at 100.
func Compute(userSkills []string, required []types.Skill, answers types.QuestionAnswers) Breakdown {
	b := Breakdown{
		SkillMatch:     computeSkillMatch(userSkills, required),
		Motivation:     computeMotivationScore(answers.Motivation),
		HandsOn:        computeHandsOnScore(answers.HandsOn),
		Physical:       computePhysicalScore(answers.PhysicalWork),
		ProblemSolving: computeProblemSolvingScore(answers.ProblemSolving),
		Availability:   computeAvailabilityScore(answers.Availability),
	}

	b.WeightedBonus = b.Motivation*motivationWeight +
		b.HandsOn*handsOnWeight +
		b.Physical*physicalWeight +
		b.ProblemSolving*problemSolvingWeight +
		b.Availability*availabilityWeight
	b.Raw = b.SkillMatch + b.WeightedBonus

	score := int(math.Round(min(b.Raw, 1.0) * 100))
	b.Score = max(0, min(score, 100))
	return b
}

// Score computes the compatibility result for a trade from the built-in
// catalog. An unknown trade yields a zero skill match and no gaps.
func Score(userSkills []string, trade string, answers types.QuestionAnswers, levels random.Source) types.CompatibilityResult {
	required := skills.RequiredSkills(trade)
	b := Compute(userSkills, required, answers)
	return types.CompatibilityResult{
		Score: b.Score,
		Gaps:  skills.ComputeGaps(userSkills, required, levels),
	}
}

// ScoreWithCatalog is Score against a caller-supplied catalog.
func ScoreWithCatalog(c *skills.Catalog, userSkills []string, trade string, answers types.QuestionAnswers, levels random.Source) (types.CompatibilityResult, Breakdown) {
	required := c.RequiredSkills(trade)
	b := Compute(userSkills, required, answers)
	return types.CompatibilityResult{
		Score: b.Score,
		Gaps:  skills.ComputeGaps(userSkills, required, levels),
	}, b
}

// MatchedSkills lists the user skills that match any skill required by the trade.
func MatchedSkills(userSkills []string, trade string) []string {
	required := skills.RequiredSkills(trade)
	names := make([]string, len(required))
	for i, s := range required {
		names[i] = s.Name
	}
	return skills.MatchingUserSkills(userSkills, names)
}
