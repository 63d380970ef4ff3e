package voice

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jonathan/tradepath/internal/types"
)

// AnswerFunc answers one question. session.Session.Ask satisfies it.
type AnswerFunc func(question string) types.VideoResponse

// Exchange is a question taken from the transport with its answer.
type Exchange struct {
	Question string              `json:"question"`
	Response types.VideoResponse `json:"response"`
}

// Stats summarizes an intake run.
type Stats struct {
	Events    int `json:"events"`
	Questions int `json:"questions"`
	Ignored   int `json:"ignored"`
	Malformed int `json:"malformed"`
	Errors    int `json:"errors"`
}

// Intake reads transport events and answers the final transcripts.
type Intake struct {
	answer AnswerFunc
	logger *slog.Logger
	active bool
}

// NewIntake creates an intake that answers questions with answer.
func NewIntake(answer AnswerFunc, logger *slog.Logger) *Intake {
	if logger == nil {
		logger = slog.Default()
	}
	return &Intake{answer: answer, logger: logger}
}

// maxLineSize bounds a single transport message.
const maxLineSize = 1 << 20

// Run consumes events from r until EOF or ctx is cancelled, passing each
// answered question to sink. Interim transcripts and lifecycle events are
// not answered; malformed lines are logged and skipped. A sink error stops
// the run.
func (in *Intake) Run(ctx context.Context, r io.Reader, sink func(Exchange) error) (Stats, error) {
	var stats Stats
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		stats.Events++

		var event Event
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			stats.Malformed++
			in.logger.Warn("skipping malformed voice event", slog.String("error", err.Error()))
			continue
		}

		switch {
		case event.Type == EventCallStart:
			in.active = true
			in.logger.Info("voice call started")
			stats.Ignored++
		case event.Type == EventCallEnd:
			in.active = false
			in.logger.Info("voice call ended")
			stats.Ignored++
		case event.Type == EventError:
			in.active = false
			stats.Errors++
			in.logger.Error("voice transport error", slog.String("error", event.Error))
		case event.isQuestion():
			question := strings.TrimSpace(event.Transcript)
			if question == "" {
				stats.Ignored++
				continue
			}
			stats.Questions++
			resp := in.answer(question)
			if err := sink(Exchange{Question: question, Response: resp}); err != nil {
				return stats, fmt.Errorf("voice sink failed: %w", err)
			}
		default:
			stats.Ignored++
		}
	}

	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("failed to read voice events: %w", err)
	}
	return stats, ctx.Err()
}

// Active reports whether a call is in progress.
func (in *Intake) Active() bool {
	return in.active
}
