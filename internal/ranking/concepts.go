package ranking

import (
	"sort"
	"strings"

	"github.com/jonathan/tradepath/internal/transcript"
	"github.com/jonathan/tradepath/internal/types"
)

// ConceptMatch is a concept-search hit in a long-form transcript.
type ConceptMatch struct {
	Timestamp   float64 `json:"timestamp"`
	TimeDisplay string  `json:"time_display"`
	Relevance   float64 `json:"relevance"`
	Preview     string  `json:"preview"`
}

const (
	conceptOccurrenceWeight = 0.3
	conceptTopicWeight      = 0.5
	conceptTopicBoost       = 0.8
	conceptTextBoost        = 0.4
	calculateBoost          = 1.0
	safetyBoost             = 0.9
	troubleshootBoost       = 0.9

	maxConceptMatches = 8
	conceptNormalizer = 3.0
	conceptPreviewLen = 100
)

// concepts maps a domain concept to the words that signal it.
// Order only matters for readability; every concept is evaluated.
var concepts = []struct {
	name    string
	related []string
}{
	{"resistance", []string{"resistance", "resistor", "ohm", "opposition"}},
	{"voltage", []string{"voltage", "volt", "electrical pressure", "potential"}},
	{"current", []string{"current", "amp", "ampere", "electron flow"}},
	{"power", []string{"power", "watt", "energy", "consumption"}},
	{"ohms law", []string{"ohm", "law", "formula", "calculation", "equation"}},
	{"series", []string{"series", "sequence", "end-to-end"}},
	{"parallel", []string{"parallel", "side-by-side", "multiple paths"}},
	{"safety", []string{"safety", "protection", "lockout", "tagout", "ppe"}},
	{"troubleshooting", []string{"troubleshoot", "debug", "fix", "problem", "repair"}},
	{"multimeter", []string{"multimeter", "meter", "measurement", "testing"}},
	{"circuit protection", []string{"breaker", "fuse", "protection", "overcurrent"}},
	{"grounding", []string{"ground", "grounding", "bonding", "safety"}},
	{"motor", []string{"motor", "contactor", "control", "starting"}},
	{"transformer", []string{"transformer", "voltage", "turns ratio"}},
	{"three phase", []string{"three", "phase", "industrial", "commercial"}},
	{"wire sizing", []string{"wire", "size", "ampacity", "conductor"}},
	{"voltage drop", []string{"voltage", "drop", "loss", "distance"}},
}

// SearchConcepts ranks segments of a long-form, topic-tagged transcript
// against a query. It returns at most eight matches, best first, with
// relevance normalized to [0,1].
func SearchConcepts(query string, t *types.Transcript) []ConceptMatch {
	queryLower := strings.ToLower(query)
	words := make([]string, 0)
	for _, w := range strings.Split(queryLower, " ") {
		if len(w) > 2 {
			words = append(words, w)
		}
	}

	type scored struct {
		seg   types.TranscriptSegment
		score float64
	}
	hits := make([]scored, 0)

	for _, seg := range t.Segments {
		score := conceptScore(queryLower, words, seg)
		if score > 0 {
			hits = append(hits, scored{seg: seg, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})
	if len(hits) > maxConceptMatches {
		hits = hits[:maxConceptMatches]
	}

	matches := make([]ConceptMatch, 0, len(hits))
	for _, h := range hits {
		matches = append(matches, ConceptMatch{
			Timestamp:   h.seg.StartTime,
			TimeDisplay: transcript.FormatTime(h.seg.StartTime),
			Relevance:   min(h.score/conceptNormalizer, 1),
			Preview:     conceptPreview(h.seg.Text),
		})
	}
	return matches
}

func conceptScore(queryLower string, words []string, seg types.TranscriptSegment) float64 {
	score := 0.0
	text := strings.ToLower(seg.Text)
	topics := make([]string, len(seg.Topics))
	for i, topic := range seg.Topics {
		topics[i] = strings.ToLower(topic)
	}

	for _, w := range words {
		score += float64(strings.Count(text, w)) * conceptOccurrenceWeight
	}

	for _, topic := range topics {
		for _, w := range words {
			if strings.Contains(topic, w) {
				score += conceptTopicWeight
			}
		}
	}

	for _, c := range concepts {
		if !relatesToAny(words, c.related) {
			continue
		}
		if anyTopicContains(topics, c.related...) {
			score += conceptTopicBoost
		}
		if containsAny(text, c.related...) {
			score += conceptTextBoost
		}
	}

	if strings.Contains(queryLower, "calculate") && containsAny(text, "formula", "equals", "calculate") {
		score += calculateBoost
	}
	if strings.Contains(queryLower, "safe") && anyTopicContains(topics, "safety", "protection") {
		score += safetyBoost
	}
	if containsAny(queryLower, "troubleshoot", "fix", "problem") && anyTopicContains(topics, "troubleshoot", "testing") {
		score += troubleshootBoost
	}

	return score
}

// relatesToAny reports whether any query word and related word contain one another.
func relatesToAny(words, related []string) bool {
	for _, w := range words {
		for _, r := range related {
			if strings.Contains(r, w) || strings.Contains(w, r) {
				return true
			}
		}
	}
	return false
}

func anyTopicContains(topics []string, subs ...string) bool {
	for _, topic := range topics {
		if containsAny(topic, subs...) {
			return true
		}
	}
	return false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func conceptPreview(text string) string {
	if len([]rune(text)) > conceptPreviewLen {
		return Truncate(text, conceptPreviewLen-3) + "..."
	}
	return text
}
