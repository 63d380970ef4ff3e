package ranking

import (
	"testing"

	"github.com/jonathan/tradepath/internal/transcript"
	"github.com/jonathan/tradepath/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func segmentAt(t *testing.T, tr *types.Transcript, start float64) types.TranscriptSegment {
	t.Helper()
	for _, seg := range tr.Segments {
		if seg.StartTime == start {
			return seg
		}
	}
	require.FailNow(t, "segment not found", "start %v", start)
	return types.TranscriptSegment{}
}

func TestFindRelevantSegments(t *testing.T) {
	tr := transcript.CircuitDesign()

	battery := FindRelevantSegments([]string{"battery"}, tr.Segments)
	require.Len(t, battery, 1)
	assert.Equal(t, 390.0, battery[0].StartTime)

	// "first-aid" only appears among the declared keywords
	firstAid := FindRelevantSegments([]string{"first-aid"}, tr.Segments)
	require.Len(t, firstAid, 1)
	assert.Equal(t, 75.0, firstAid[0].StartTime)

	assert.Empty(t, FindRelevantSegments(nil, tr.Segments))
	assert.Empty(t, FindRelevantSegments([]string{"plumbing"}, tr.Segments))
}

func TestRelevanceScore(t *testing.T) {
	tr := transcript.CircuitDesign()
	seg := segmentAt(t, tr, 390)

	// text +0.3, declared keyword +0.2, unwatched +0.1
	assert.InDelta(t, 0.6, RelevanceScore([]string{"battery"}, seg, nil), 1e-9)
	assert.InDelta(t, 0.5, RelevanceScore([]string{"battery"}, seg, []float64{390}), 1e-9)
	assert.InDelta(t, 0.1, RelevanceScore(nil, seg, nil), 1e-9)
}

func TestRelevanceScore_TopicPairsAccumulate(t *testing.T) {
	seg := types.TranscriptSegment{
		StartTime: 10,
		Text:      "nothing relevant",
		Topics:    []string{"power", "power supply"},
	}

	assert.InDelta(t, 0.8, RelevanceScore([]string{"power"}, seg, []float64{10}), 1e-9)
}

func TestRelevanceScore_Clamped(t *testing.T) {
	tr := transcript.CircuitDesign()
	questions := []string{
		"",
		"?!?!",
		"12345 67890",
		"voltage current resistance parallel calculate power ohm law circuit safety",
	}

	for _, q := range questions {
		for _, seg := range tr.Segments {
			score := RelevanceScore(ExtractKeywords(q), seg, nil)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	}
}

func TestRankTimestamps_ParallelVoltage(t *testing.T) {
	ranked := RankTimestamps("How do I calculate voltage in a parallel circuit?", transcript.CircuitDesign(), nil)

	idx := map[float64]int{}
	for i, r := range ranked {
		idx[r.Timestamp] = i
		assert.Greater(t, r.RelevanceScore, MinRelevance)
		if i > 0 {
			assert.GreaterOrEqual(t, ranked[i-1].RelevanceScore, r.RelevanceScore)
		}
	}

	require.Contains(t, idx, 225.0)
	require.Contains(t, idx, 320.0)
	assert.Less(t, idx[225.0], idx[320.0])
	assert.GreaterOrEqual(t, ranked[idx[225.0]].RelevanceScore, ranked[idx[320.0]].RelevanceScore)
	assert.Equal(t, []float64{125, 225, 320, 75, 525, 390}, timestamps(ranked))
}

func TestRankTimestamps_NoMatches(t *testing.T) {
	ranked := RankTimestamps("Tell me about plumbing fixtures", transcript.CircuitDesign(), nil)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

func TestRankTimestamps_ThresholdIsExclusive(t *testing.T) {
	tr := &types.Transcript{
		Title: "t",
		Segments: []types.TranscriptSegment{
			{StartTime: 0, Text: "a battery"},
			{StartTime: 30, Text: "a battery", Keywords: []string{"battery"}},
		},
	}

	// Segment 0 scores 0.3 once watched and is dropped; segment 30 scores 0.5.
	ranked := RankTimestamps("battery question", tr, []float64{0, 30})
	assert.Equal(t, []float64{30}, timestamps(ranked))
}

func timestamps(ranked []types.RankedTimestamp) []float64 {
	out := make([]float64, len(ranked))
	for i, r := range ranked {
		out[i] = r.Timestamp
	}
	return out
}
