package ranking

import (
	"testing"

	"github.com/jonathan/tradepath/internal/transcript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchConcepts_VoltageDrop(t *testing.T) {
	matches := SearchConcepts("voltage drop", transcript.CircuitGuide())

	require.NotEmpty(t, matches)
	assert.Equal(t, 715.0, matches[0].Timestamp)
	assert.Equal(t, "11:55", matches[0].TimeDisplay)
	assert.Equal(t, 1.0, matches[0].Relevance)
	assert.Equal(t, 745.0, matches[1].Timestamp)
}

func TestSearchConcepts_Properties(t *testing.T) {
	guide := transcript.CircuitGuide()
	queries := []string{
		"How do I calculate power?",
		"what safety gear do I need",
		"how to troubleshoot a dead circuit",
		"three phase motor control",
		"grounding and bonding",
	}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			matches := SearchConcepts(q, guide)
			require.NotEmpty(t, matches)
			assert.LessOrEqual(t, len(matches), 8)
			for i, m := range matches {
				assert.Greater(t, m.Relevance, 0.0)
				assert.LessOrEqual(t, m.Relevance, 1.0)
				assert.LessOrEqual(t, len([]rune(m.Preview)), 100)
				if i > 0 {
					assert.GreaterOrEqual(t, matches[i-1].Relevance, m.Relevance)
				}
			}
		})
	}
}

func TestSearchConcepts_SafetyBoost(t *testing.T) {
	matches := SearchConcepts("is it safe", transcript.CircuitGuide())

	require.NotEmpty(t, matches)
	found := false
	for _, m := range matches {
		if m.Timestamp == 565 {
			found = true
		}
	}
	assert.True(t, found, "circuit protection segment should be returned")
}

func TestSearchConcepts_NoMatch(t *testing.T) {
	assert.Empty(t, SearchConcepts("xyzzy", transcript.CircuitGuide()))
	assert.Empty(t, SearchConcepts("a b", transcript.CircuitGuide()))
	assert.Empty(t, SearchConcepts("", transcript.CircuitGuide()))
}

func TestConceptPreview(t *testing.T) {
	short := "Short text."
	assert.Equal(t, short, conceptPreview(short))

	long := make([]rune, 150)
	for i := range long {
		long[i] = 'a'
	}
	got := conceptPreview(string(long))
	assert.Len(t, []rune(got), 100)
	assert.Equal(t, "...", got[len(got)-3:])
}
