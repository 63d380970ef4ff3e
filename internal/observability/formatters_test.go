package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/tradepath/internal/compatibility"
	"github.com/jonathan/tradepath/internal/ranking"
	"github.com/jonathan/tradepath/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintCompatibility(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := types.CompatibilityResult{
		Score: 42,
		Gaps:  []types.SkillGap{{Skill: "Soldering", RequiredLevel: 6}},
	}
	matched := []string{"a", "b", "c", "d", "e", "f", "g"}

	p.PrintCompatibility("plumber", result, matched)
	output := buf.String()

	assert.Contains(t, output, "COMPATIBILITY")
	assert.Contains(t, output, "plumber")
	assert.Contains(t, output, "42%")
	assert.Contains(t, output, "• e")
	assert.NotContains(t, output, "• f")
	assert.Contains(t, output, "... and 2 more")
}

func TestPrintBreakdown(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBreakdown(compatibility.Breakdown{SkillMatch: 0.5, Raw: 0.66, Score: 66})
	output := buf.String()

	assert.Contains(t, output, "SCORE BREAKDOWN")
	assert.Contains(t, output, "0.50")
	assert.Contains(t, output, "0.660")
}

func TestPrintJourney(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJourney([]types.JourneyNode{
		{Skill: "Circuit design", CurrentLevel: 0, TargetLevel: 10, Priority: types.PriorityHigh, EstimatedHours: 200, Prerequisites: []string{"Wiring installation"}},
		{Skill: "Soldering", CurrentLevel: 3, TargetLevel: 6, Priority: types.PriorityLow, EstimatedHours: 60, Prerequisites: []string{}},
	})
	output := buf.String()

	assert.Contains(t, output, "LEARNING JOURNEY")
	assert.Contains(t, output, "1. Circuit design [high]")
	assert.Contains(t, output, "After: Wiring installation")
	assert.Contains(t, output, "Total: 2 skills, 260 hours")
}

func TestPrintJourney_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJourney(nil)

	assert.Contains(t, buf.String(), "NO SKILL GAPS")
}

func TestPrintVideoResponse(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintVideoResponse(&types.VideoResponse{
		Message: "Jumping to the parallel circuit section",
		Timestamps: []types.RankedTimestamp{
			{Timestamp: 225, RelevanceScore: 0.9, Context: "Circuit types and calculations"},
		},
		SuggestedQuestions: []string{"What is Ohm's law?"},
		ShouldAutoPlay:     true,
		Confidence:         0.85,
	})
	output := buf.String()

	assert.Contains(t, output, "VIDEO ASSISTANT")
	assert.Contains(t, output, "3:45")
	assert.Contains(t, output, "What is Ohm's law?")
	assert.Contains(t, output, "(auto-play)")
}

func TestPrintVideoResponse_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintVideoResponse(nil)

	assert.Empty(t, buf.String())
}

func TestPrintConceptMatches(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintConceptMatches("voltage drop", []ranking.ConceptMatch{
		{Timestamp: 715, TimeDisplay: "11:55", Relevance: 1, Preview: "Voltage drop matters on long runs"},
	})
	assert.Contains(t, buf.String(), "CONCEPTS: voltage drop")
	assert.Contains(t, buf.String(), "11:55")

	buf.Reset()
	p.PrintConceptMatches("nothing", nil)
	assert.Contains(t, buf.String(), "No matches")
}

func TestPrintBox_LinesHaveEqualWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", "short\n"+strings.Repeat("é", 100))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), line)
	}
}
