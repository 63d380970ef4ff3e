package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/tradepath/internal/types"
)

func TestMotivationalMessage(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "Excellent match! You're well-positioned for this career transition."},
		{80, "Excellent match! You're well-positioned for this career transition."},
		{79, "Great potential! With focused learning, you'll be ready soon."},
		{60, "Great potential! With focused learning, you'll be ready soon."},
		{40, "Good foundation! A structured learning path will get you there."},
		{39, "Every expert was once a beginner. Your journey starts here!"},
		{0, "Every expert was once a beginner. Your journey starts here!"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MotivationalMessage(tt.score), "score %d", tt.score)
	}
}

func TestNextSteps(t *testing.T) {
	tests := []struct {
		name   string
		trade  string
		gaps   []types.SkillGap
		titles []string
	}{
		{
			name:   "no gaps",
			trade:  "welder",
			titles: []string{"Join Trade Communities"},
		},
		{
			name:   "safety and tool gaps",
			trade:  types.TradeElectrician,
			gaps:   []types.SkillGap{{Skill: "Tool proficiency"}, {Skill: "Electrical SAFETY"}},
			titles: []string{"Start with Safety Training", "Build Tool Familiarity", "Join Electrical Communities"},
		},
		{
			name:   "tool gap only",
			trade:  types.TradePlumber,
			gaps:   []types.SkillGap{{Skill: "Tool proficiency"}},
			titles: []string{"Build Tool Familiarity", "Join Plumbing Communities"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextSteps(tt.trade, tt.gaps)
			var titles []string
			for _, s := range got {
				titles = append(titles, s.Title)
			}
			assert.Equal(t, tt.titles, titles)
		})
	}
}

func TestSampleRequest_IsValidAndFresh(t *testing.T) {
	req := SampleRequest()
	assert.NoError(t, req.Validate())

	req.Skills[0] = "changed"
	assert.Equal(t, "JavaScript", SampleRequest().Skills[0])
}
