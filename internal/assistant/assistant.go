// Package assistant answers free-text questions about a training video by
// pointing the viewer at the most relevant transcript timestamps.
package assistant

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/tradepath/internal/random"
	"github.com/jonathan/tradepath/internal/ranking"
	"github.com/jonathan/tradepath/internal/transcript"
	"github.com/jonathan/tradepath/internal/types"
)

const (
	maxTimestamps     = 3
	messagePreviewLen = 80
	maxRelatedTopics  = 5
	maxTopicQuestions = 3
	autoPlayThreshold = 0.7
	keywordConfidence = 0.1

	vagueConfidence     = 0.2
	noContentConfidence = 0.1
	minQuestionWords    = 3
	minQuestionLength   = 10
)

var vaguePhrases = map[string]bool{
	"what": true, "how": true, "tell me": true, "explain": true, "about": true,
}

var clarifyingQuestions = []string{
	"How do series circuits work?",
	"What safety equipment do I need?",
	"How do I calculate voltage in a parallel circuit?",
}

// Assistant answers questions against one transcript. It holds no per-viewer
// state; the watched list is passed on every call.
type Assistant struct {
	transcript *types.Transcript
	demos      []DemoQuestion
	rand       random.Source
}

// New creates an assistant. demos may be nil to disable the scripted
// answers; src drives follow-up suggestion sampling and is wrapped so that
// Answer is safe for concurrent use.
func New(t *types.Transcript, demos []DemoQuestion, src random.Source) *Assistant {
	return &Assistant{transcript: t, demos: demos, rand: random.Synchronized(src)}
}

// NewDefault is an assistant over the circuit design sample with the
// scripted demo answers enabled.
func NewDefault(src random.Source) *Assistant {
	return New(transcript.CircuitDesign(), DemoQuestions(), src)
}

// Transcript returns the transcript the assistant searches.
func (a *Assistant) Transcript() *types.Transcript {
	return a.transcript
}

// Answer produces a response for question. watched lists segment start
// times the viewer has already seen; unseen segments get a small boost.
func (a *Assistant) Answer(question string, watched []float64) types.VideoResponse {
	if resp, ok := findDemo(a.demos, question); ok {
		return resp
	}

	if IsVague(question) {
		return vagueResponse()
	}

	ranked := ranking.RankTimestamps(question, a.transcript, watched)
	if len(ranked) == 0 {
		return a.noContentResponse(question)
	}

	top := ranked[:min(len(ranked), maxTimestamps)]
	return types.VideoResponse{
		Message:            a.composeMessage(top),
		Timestamps:         top,
		SuggestedQuestions: FollowUps(question, a.rand),
		ShouldAutoPlay:     top[0].RelevanceScore > autoPlayThreshold,
		Confidence:         confidence(question, top),
	}
}

// IsVague reports whether a question is too short or generic to rank.
func IsVague(question string) bool {
	lower := strings.ToLower(question)
	return len(strings.Split(lower, " ")) < minQuestionWords ||
		vaguePhrases[lower] ||
		utf8.RuneCountInString(strings.TrimSpace(question)) < minQuestionLength
}

func vagueResponse() types.VideoResponse {
	var sb strings.Builder
	sb.WriteString("Could you be more specific? For example, you could ask:")
	for _, q := range clarifyingQuestions {
		sb.WriteString(fmt.Sprintf("\n• \"%s\"", q))
	}
	return types.VideoResponse{
		Message:            sb.String(),
		Timestamps:         []types.RankedTimestamp{},
		SuggestedQuestions: append([]string(nil), clarifyingQuestions...),
		ShouldAutoPlay:     false,
		Confidence:         vagueConfidence,
	}
}

func (a *Assistant) noContentResponse(question string) types.VideoResponse {
	topics := transcript.Topics(a.transcript, maxRelatedTopics)

	suggestions := make([]string, 0, maxTopicQuestions)
	for _, topic := range topics[:min(len(topics), maxTopicQuestions)] {
		suggestions = append(suggestions, "Tell me about "+strings.ToLower(topic))
	}

	return types.VideoResponse{
		Message: fmt.Sprintf("I couldn't find specific information about \"%s\" in this video. However, this video covers these related topics:\n\n%s",
			question, strings.Join(topics, "\n• ")),
		Timestamps:         []types.RankedTimestamp{},
		SuggestedQuestions: suggestions,
		ShouldAutoPlay:     false,
		Confidence:         noContentConfidence,
	}
}

// composeMessage lists a preview of each ranked segment and points at the best one.
func (a *Assistant) composeMessage(top []types.RankedTimestamp) string {
	var sb strings.Builder
	sb.WriteString("I found relevant information about your question:\n\n")
	for _, ts := range top {
		text := ""
		if seg, ok := a.segmentAt(ts.Timestamp); ok {
			text = seg.Text
		}
		sb.WriteString(fmt.Sprintf("• [%s] %s...\n", transcript.FormatTime(ts.Timestamp), ranking.Truncate(text, messagePreviewLen)))
	}

	best := transcript.FormatTime(top[0].Timestamp)
	if len(top) == 1 {
		sb.WriteString(fmt.Sprintf("\nJumping to %s where this topic is covered in detail.", best))
	} else {
		sb.WriteString(fmt.Sprintf("\nI recommend starting at %s for the most comprehensive explanation.", best))
	}
	return sb.String()
}

func (a *Assistant) segmentAt(start float64) (types.TranscriptSegment, bool) {
	for _, seg := range a.transcript.Segments {
		if seg.StartTime == start {
			return seg, true
		}
	}
	return types.TranscriptSegment{}, false
}

// confidence is the mean relevance of the returned timestamps plus a
// specificity bonus per question keyword, clamped to [0,1].
func confidence(question string, top []types.RankedTimestamp) float64 {
	if len(top) == 0 {
		return noContentConfidence
	}
	sum := 0.0
	for _, ts := range top {
		sum += ts.RelevanceScore
	}
	avg := sum / float64(len(top))
	specificity := float64(len(ranking.ExtractKeywords(question))) * keywordConfidence
	return max(0, min(avg+specificity, 1.0))
}
