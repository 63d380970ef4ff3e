// Package session holds per-user learning progress and drives the scripted
// video-assistant walkthrough as an explicit state machine.
package session

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/tradepath/internal/assistant"
	"github.com/jonathan/tradepath/internal/types"
)

// State is a demo state machine state.
type State int

const (
	StateIdle State = iota
	StateTypingQuestion
	StateWaitingForResponse
	StateShowingResponse
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTypingQuestion:
		return "typing_question"
	case StateWaitingForResponse:
		return "waiting_for_response"
	case StateShowingResponse:
		return "showing_response"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

var (
	// ErrNotRunning is returned by Pause when no demo step is in flight.
	ErrNotRunning = errors.New("demo is not running")
	// ErrNotPaused is returned by Resume when the demo is not paused.
	ErrNotPaused = errors.New("demo is not paused")
	// ErrNoQuestions is returned by StartDemo when there is nothing to ask.
	ErrNoQuestions = errors.New("no demo questions configured")
)

// Timings controls demo pacing.
type Timings struct {
	TypingSpeed           time.Duration // per character
	ThinkingDelay         time.Duration
	PauseBetweenQuestions time.Duration
}

// DefaultTimings returns the standard walkthrough pacing.
func DefaultTimings() Timings {
	return Timings{
		TypingSpeed:           50 * time.Millisecond,
		ThinkingDelay:         time.Second,
		PauseBetweenQuestions: 3 * time.Second,
	}
}

// Observer receives session events. Any field may be nil. Callbacks are
// invoked without the session lock held, so they may call back into the
// session.
type Observer struct {
	OnMessage     func(message string, isUser bool)
	OnTimestamps  func(timestamps []float64)
	OnStateChange func(snapshot Snapshot)
}

// Options configures a Session. Zero values select defaults.
type Options struct {
	Scheduler Scheduler
	Timings   *Timings
	Questions []string
	Observer  Observer
	Logger    *slog.Logger
}

// Snapshot is a copy of the session's observable state.
type Snapshot struct {
	ID                   string         `json:"id"`
	State                string         `json:"state"`
	AutoDemo             bool           `json:"auto_demo"`
	QuestionIndex        int            `json:"question_index"`
	TypedQuestion        string         `json:"typed_question,omitempty"`
	CompletedSkills      []string       `json:"completed_skills"`
	CurrentLearningSkill string         `json:"current_learning_skill,omitempty"`
	LearningProgress     map[string]int `json:"learning_progress"`
}

// Session is owned by a single user. All methods are safe for concurrent
// use; scheduler callbacks may run on other goroutines.
type Session struct {
	id        string
	assistant *assistant.Assistant
	scheduler Scheduler
	timings   Timings
	questions []string
	observer  Observer
	logger    *slog.Logger

	mu         sync.Mutex
	state      State
	pausedFrom State
	autoDemo   bool
	index      int
	typed      int
	timer      Timer
	generation int
	watched    []float64

	completed []string
	current   string
	progress  map[string]int
}

// New creates a session with a fresh id.
func New(a *assistant.Assistant, opts Options) *Session {
	timings := DefaultTimings()
	if opts.Timings != nil {
		timings = *opts.Timings
	}
	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = RealScheduler{}
	}
	questions := opts.Questions
	if questions == nil {
		for _, d := range assistant.DemoQuestions() {
			questions = append(questions, d.Question)
		}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	id := uuid.NewString()
	return &Session{
		id:        id,
		assistant: a,
		scheduler: scheduler,
		timings:   timings,
		questions: append([]string(nil), questions...),
		observer:  opts.Observer,
		logger:    logger.With(slog.String("session_id", id)),
		state:     StateIdle,
		progress:  make(map[string]int),
		completed: make([]string, 0),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// State returns the current demo state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	progress := make(map[string]int, len(s.progress))
	for k, v := range s.progress {
		progress[k] = v
	}
	typed := ""
	if s.index < len(s.questions) && s.typed > 0 {
		typed = string([]rune(s.questions[s.index])[:s.typed])
	}
	return Snapshot{
		ID:                   s.id,
		State:                s.state.String(),
		AutoDemo:             s.autoDemo,
		QuestionIndex:        s.index,
		TypedQuestion:        typed,
		CompletedSkills:      append([]string{}, s.completed...),
		CurrentLearningSkill: s.current,
		LearningProgress:     progress,
	}
}

// MarkWatched records that the viewer has seen the segment starting at
// start. Watched segments lose their novelty bonus in later answers.
func (s *Session) MarkWatched(start float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.watched {
		if w == start {
			return
		}
	}
	s.watched = append(s.watched, start)
}

// Ask answers a question typed by the user, outside the scripted demo.
func (s *Session) Ask(question string) types.VideoResponse {
	s.mu.Lock()
	watched := append([]float64(nil), s.watched...)
	s.mu.Unlock()

	resp := s.assistant.Answer(question, watched)
	s.logger.Debug("answered question",
		slog.String("question", question),
		slog.Int("timestamps", len(resp.Timestamps)),
		slog.Float64("confidence", resp.Confidence))

	s.dispatch(s.responseEvents(resp))
	return resp
}

// dispatch runs queued observer callbacks. It must be called without the lock.
func (s *Session) dispatch(events []func()) {
	for _, e := range events {
		e()
	}
}

func (s *Session) stateChangeEvent(snap Snapshot) func() {
	return func() {
		if s.observer.OnStateChange != nil {
			s.observer.OnStateChange(snap)
		}
	}
}

func (s *Session) messageEvent(message string, isUser bool) func() {
	return func() {
		if s.observer.OnMessage != nil {
			s.observer.OnMessage(message, isUser)
		}
	}
}

func (s *Session) responseEvents(resp types.VideoResponse) []func() {
	events := []func(){s.messageEvent(resp.Message, false)}
	if len(resp.Timestamps) > 0 {
		timestamps := make([]float64, len(resp.Timestamps))
		for i, ts := range resp.Timestamps {
			timestamps[i] = ts.Timestamp
		}
		events = append(events, func() {
			if s.observer.OnTimestamps != nil {
				s.observer.OnTimestamps(timestamps)
			}
		})
	}
	return events
}
