// Package voice feeds push-to-talk transcripts from a voice transport into
// the video assistant.
package voice

// Transport event types.
const (
	EventCallStart   = "call-start"
	EventCallEnd     = "call-end"
	EventSpeechStart = "speech-start"
	EventSpeechEnd   = "speech-end"
	EventTranscript  = "transcript"
	EventError       = "error"
)

// TranscriptFinal marks a transcript that will not be revised.
const TranscriptFinal = "final"

// Event is one newline-delimited JSON message from the voice transport.
type Event struct {
	Type           string `json:"type"`
	TranscriptType string `json:"transcriptType,omitempty"`
	Transcript     string `json:"transcript,omitempty"`
	Error          string `json:"error,omitempty"`
}

// isQuestion reports whether the event carries a finished user utterance.
func (e Event) isQuestion() bool {
	return e.Type == EventTranscript && e.TranscriptType == TranscriptFinal
}
