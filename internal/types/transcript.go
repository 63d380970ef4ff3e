// Package types provides type definitions for structured data used throughout the tradepath system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// TranscriptSegment is one timestamped slice of a training video.
// StartTime uniquely identifies a segment within its transcript.
// EndTime is carried for duration-aware consumers; ranking ignores it.
type TranscriptSegment struct {
	StartTime float64  `json:"start_time" validate:"min=0"`
	EndTime   float64  `json:"end_time" validate:"min=0"`
	Text      string   `json:"text" validate:"required"`
	Keywords  []string `json:"keywords"`
	Topics    []string `json:"topics"`
}

// Transcript is an immutable, ordered list of segments for one video.
type Transcript struct {
	VideoID  string              `json:"video_id,omitempty"`
	Title    string              `json:"title" validate:"required"`
	Duration float64             `json:"duration" validate:"min=0"`
	Segments []TranscriptSegment `json:"segments" validate:"required,min=1,dive"`
}

// Validate validates the Transcript using the validator.
func (t *Transcript) Validate() error {
	return validate.Struct(t)
}

// RankedTimestamp is a transcript position scored against a question
type RankedTimestamp struct {
	Timestamp      float64 `json:"timestamp"`
	RelevanceScore float64 `json:"relevance_score"`
	Description    string  `json:"description"`
	Context        string  `json:"context"`
}

// VideoResponse is the assistant's answer to one question
type VideoResponse struct {
	Message            string            `json:"message"`
	Timestamps         []RankedTimestamp `json:"timestamps"`
	SuggestedQuestions []string          `json:"suggested_questions"`
	ShouldAutoPlay     bool              `json:"should_auto_play"`
	Confidence         float64           `json:"confidence"`
}

// Seconds returns the integer timestamps of the response, in order.
func (r *VideoResponse) Seconds() []int {
	out := make([]int, 0, len(r.Timestamps))
	for _, ts := range r.Timestamps {
		out = append(out, int(ts.Timestamp))
	}
	return out
}
