package ranking

import (
	"slices"
	"strings"

	"github.com/jonathan/tradepath/internal/types"
)

// Scoring increments for a single segment
const (
	textMatchWeight    = 0.3
	keywordMatchWeight = 0.2
	topicMatchWeight   = 0.4
	unwatchedBonus     = 0.1
)

// MinRelevance is the exclusive lower bound a ranked timestamp must exceed.
const MinRelevance = 0.3

// FindRelevantSegments is the coarse gate applied before scoring: a segment
// passes when any keyword appears in its text or inside one of its declared
// keywords. Transcript order is preserved.
func FindRelevantSegments(keywords []string, segments []types.TranscriptSegment) []types.TranscriptSegment {
	relevant := make([]types.TranscriptSegment, 0)
	for _, seg := range segments {
		text := strings.ToLower(seg.Text)
		for _, kw := range keywords {
			if strings.Contains(text, kw) || declaresKeyword(seg, kw) {
				relevant = append(relevant, seg)
				break
			}
		}
	}
	return relevant
}

// RelevanceScore scores one segment against the question keywords. The
// result is clamped to [0,1].
func RelevanceScore(keywords []string, seg types.TranscriptSegment, watched []float64) float64 {
	score := 0.0
	text := strings.ToLower(seg.Text)

	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			score += textMatchWeight
		}
		if declaresKeyword(seg, kw) {
			score += keywordMatchWeight
		}
	}

	for _, topic := range seg.Topics {
		lowerTopic := strings.ToLower(topic)
		for _, kw := range keywords {
			if strings.Contains(lowerTopic, kw) {
				score += topicMatchWeight
			}
		}
	}

	if !slices.Contains(watched, seg.StartTime) {
		score += unwatchedBonus
	}

	return max(0, min(score, 1.0))
}

func declaresKeyword(seg types.TranscriptSegment, kw string) bool {
	for _, k := range seg.Keywords {
		if strings.Contains(strings.ToLower(k), kw) {
			return true
		}
	}
	return false
}
