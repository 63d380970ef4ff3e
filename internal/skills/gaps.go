package skills

import (
	"github.com/jonathan/tradepath/internal/random"
	"github.com/jonathan/tradepath/internal/types"
)

// Level bounds for an assessed (matched) skill.
const (
	minAssessedLevel = 3
	maxAssessedLevel = 6
)

// RequiredLevel returns the proficiency needed for a skill category.
func RequiredLevel(category types.Category) int {
	switch category {
	case types.CategoryBasic:
		return 6
	case types.CategoryIntermediate:
		return 8
	default:
		return 10
	}
}

// ComputeGaps determines the current and required level of each required
// skill and keeps only genuine gaps. A matched skill is assessed at a level
// drawn uniformly from [3,6] using src; an unmatched skill is at 0.
func ComputeGaps(userSkills []string, required []types.Skill, src random.Source) []types.SkillGap {
	gaps := make([]types.SkillGap, 0, len(required))
	for _, skill := range required {
		current := 0
		if HasSkill(userSkills, skill.Name) {
			current = src.IntN(maxAssessedLevel-minAssessedLevel+1) + minAssessedLevel
		}
		requiredLevel := RequiredLevel(skill.Category)
		if current >= requiredLevel {
			continue
		}
		gaps = append(gaps, types.SkillGap{
			Skill:         skill.Name,
			CurrentLevel:  current,
			RequiredLevel: requiredLevel,
		})
	}
	return gaps
}

// GapsForTrade computes gaps against the built-in catalog.
func GapsForTrade(userSkills []string, trade string, src random.Source) []types.SkillGap {
	return ComputeGaps(userSkills, RequiredSkills(trade), src)
}
