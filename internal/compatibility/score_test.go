package compatibility

import (
	"testing"

	"github.com/jonathan/tradepath/internal/random"
	"github.com/jonathan/tradepath/internal/skills"
	"github.com/jonathan/tradepath/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_EmptyInputsGiveBaselineScore(t *testing.T) {
	b := Compute(nil, skills.RequiredSkills(types.TradeElectrician), types.QuestionAnswers{})

	// 0.4*0.15 + 0.5*0.10 + 0.5*0.10
	assert.Equal(t, 0.0, b.SkillMatch)
	assert.InDelta(t, 0.16, b.Raw, 1e-9)
	assert.Equal(t, 16, b.Score)
}

func TestCompute_WeightedBonus(t *testing.T) {
	answers := types.QuestionAnswers{
		Motivation:     "I'm passionate about a career change",
		HandsOn:        "I fix and repair things with my tools",
		PhysicalWork:   "8 - I like being on my feet",
		ProblemSolving: "I analyze and troubleshoot step by step",
		Availability:   "full-time",
	}

	b := Compute(nil, nil, answers)

	assert.InDelta(t, 0.8, b.Motivation, 1e-9)
	assert.InDelta(t, 0.6, b.HandsOn, 1e-9)
	assert.InDelta(t, 0.8, b.Physical, 1e-9)
	assert.InDelta(t, 0.45, b.ProblemSolving, 1e-9)
	assert.InDelta(t, 1.0, b.Availability, 1e-9)
	// 0.12 + 0.12 + 0.08 + 0.0675 + 0.10
	assert.InDelta(t, 0.4875, b.WeightedBonus, 1e-9)
	assert.Equal(t, 49, b.Score)
}

func TestCompute_SaturatesAtHundred(t *testing.T) {
	required := skills.RequiredSkills(types.TradePlumber)
	userSkills := make([]string, 0, len(required))
	for _, s := range required {
		userSkills = append(userSkills, s.Name)
	}

	b := Compute(userSkills, required, types.QuestionAnswers{Availability: "flexible"})

	assert.InDelta(t, 1.0, b.SkillMatch, 1e-9)
	assert.Greater(t, b.Raw, 1.0)
	assert.Equal(t, 100, b.Score)
}

func TestScore_AlwaysInRange(t *testing.T) {
	inputs := [][]string{
		nil,
		{""},
		{"a"},
		{"Soldering", "Pipe fitting", "Problem-solving"},
		{"Circuit design", "Wiring", "Safety", "Troubleshooting"},
	}
	trades := []string{types.TradePlumber, types.TradeElectrician, "carpenter", ""}

	for _, trade := range trades {
		for _, userSkills := range inputs {
			result := Score(userSkills, trade, types.QuestionAnswers{PhysicalWork: "10 - great"}, random.NewSeeded(7))
			assert.GreaterOrEqual(t, result.Score, 0)
			assert.LessOrEqual(t, result.Score, 100)
			for _, gap := range result.Gaps {
				assert.Less(t, gap.CurrentLevel, gap.RequiredLevel)
			}
		}
	}
}

func TestScore_UnknownTrade(t *testing.T) {
	result := Score([]string{"Soldering"}, "astronaut", types.QuestionAnswers{}, random.Fixed{})

	assert.Equal(t, 16, result.Score)
	assert.Empty(t, result.Gaps)
}

func TestScoreWithCatalog_BlankSkillsMatchLiterally(t *testing.T) {
	c := &skills.Catalog{
		Trades: map[string][]types.Skill{
			"welder": {
				{Name: "Welding", Category: types.CategoryBasic, Importance: 6},
				{Name: "Metal cutting", Category: types.CategoryBasic, Importance: 4},
			},
		},
	}

	_, empty := ScoreWithCatalog(c, []string{""}, "welder", types.QuestionAnswers{}, random.Fixed{})
	assert.InDelta(t, 1.0, empty.SkillMatch, 1e-9)

	_, space := ScoreWithCatalog(c, []string{" "}, "welder", types.QuestionAnswers{}, random.Fixed{})
	assert.InDelta(t, 0.4, space.SkillMatch, 1e-9)
}

func TestScoreWithCatalog_ReturnsBreakdown(t *testing.T) {
	c := &skills.Catalog{
		Trades: map[string][]types.Skill{
			"welder": {{Name: "Welding", Category: types.CategoryBasic, Importance: 10}},
		},
	}

	result, b := ScoreWithCatalog(c, []string{"welding"}, "welder", types.QuestionAnswers{}, random.Fixed{Int: 0})

	assert.InDelta(t, 1.0, b.SkillMatch, 1e-9)
	assert.Equal(t, 100, result.Score)
	require.Len(t, result.Gaps, 1)
	assert.Equal(t, types.SkillGap{Skill: "Welding", CurrentLevel: 3, RequiredLevel: 6}, result.Gaps[0])
}

func TestMatchedSkills(t *testing.T) {
	matched := MatchedSkills([]string{"Soldering", "JavaScript", "Communication"}, types.TradePlumber)

	assert.ElementsMatch(t, []string{"Soldering", "Communication"}, matched)
	assert.Empty(t, MatchedSkills([]string{"Soldering"}, "astronaut"))
}
