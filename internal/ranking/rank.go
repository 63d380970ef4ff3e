package ranking

import (
	"sort"

	"github.com/jonathan/tradepath/internal/types"
)

// RankTimestamps runs the full ranking pipeline for a question: coarse
// containment gate, relevance scoring, the MinRelevance threshold, then a
// stable sort by relevance (descending). Callers truncate the result.
func RankTimestamps(question string, t *types.Transcript, watched []float64) []types.RankedTimestamp {
	keywords := ExtractKeywords(question)
	candidates := FindRelevantSegments(keywords, t.Segments)

	ranked := make([]types.RankedTimestamp, 0, len(candidates))
	for _, seg := range candidates {
		score := RelevanceScore(keywords, seg, watched)
		if score <= MinRelevance {
			continue
		}
		ranked = append(ranked, types.RankedTimestamp{
			Timestamp:      seg.StartTime,
			RelevanceScore: score,
			Description:    Describe(seg, keywords),
			Context:        Context(seg),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RelevanceScore > ranked[j].RelevanceScore
	})

	return ranked
}
