package session

import (
	"log/slog"
	"time"
)

// StartDemo (re)starts the scripted walkthrough from the first question.
// Each question is typed out character by character, answered after the
// thinking delay, and followed by a pause before the next question.
func (s *Session) StartDemo() error {
	s.mu.Lock()
	if len(s.questions) == 0 {
		s.mu.Unlock()
		return ErrNoQuestions
	}
	s.cancelLocked()
	s.autoDemo = true
	s.index = 0
	events := s.beginTypingLocked()
	s.mu.Unlock()

	s.logger.Info("demo started", slog.Int("questions", len(s.questions)))
	s.dispatch(events)
	return nil
}

// StopDemo cancels any pending step and returns to Idle.
func (s *Session) StopDemo() {
	s.mu.Lock()
	s.cancelLocked()
	s.autoDemo = false
	s.typed = 0
	s.state = StateIdle
	events := []func(){s.stateChangeEvent(s.snapshotLocked())}
	s.mu.Unlock()

	s.logger.Info("demo stopped")
	s.dispatch(events)
}

// Pause suspends the demo. Resume continues from the same step; a
// partially typed question keeps its progress.
func (s *Session) Pause() error {
	s.mu.Lock()
	switch s.state {
	case StateTypingQuestion, StateWaitingForResponse, StateShowingResponse:
	default:
		s.mu.Unlock()
		return ErrNotRunning
	}
	s.cancelLocked()
	s.pausedFrom = s.state
	s.state = StatePaused
	events := []func(){s.stateChangeEvent(s.snapshotLocked())}
	s.mu.Unlock()

	s.dispatch(events)
	return nil
}

// Resume continues a paused demo. The interrupted step restarts its full delay.
func (s *Session) Resume() error {
	s.mu.Lock()
	if s.state != StatePaused {
		s.mu.Unlock()
		return ErrNotPaused
	}
	s.state = s.pausedFrom
	switch s.state {
	case StateTypingQuestion:
		s.scheduleLocked(s.timings.TypingSpeed, s.typeTick)
	case StateWaitingForResponse:
		s.scheduleLocked(s.timings.ThinkingDelay, s.respond)
	case StateShowingResponse:
		s.scheduleLocked(s.timings.PauseBetweenQuestions, s.advance)
	}
	events := []func(){s.stateChangeEvent(s.snapshotLocked())}
	s.mu.Unlock()

	s.dispatch(events)
	return nil
}

// Reset stops the demo and clears all learning progress and watch history.
func (s *Session) Reset() {
	s.mu.Lock()
	s.cancelLocked()
	s.state = StateIdle
	s.autoDemo = false
	s.index = 0
	s.typed = 0
	s.watched = nil
	s.completed = make([]string, 0)
	s.current = ""
	s.progress = make(map[string]int)
	events := []func(){s.stateChangeEvent(s.snapshotLocked())}
	s.mu.Unlock()

	s.logger.Info("session reset")
	s.dispatch(events)
}

// cancelLocked stops the pending timer and invalidates callbacks that may
// already be in flight.
func (s *Session) cancelLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.generation++
}

func (s *Session) scheduleLocked(d time.Duration, step func(generation int)) {
	generation := s.generation
	s.timer = s.scheduler.AfterFunc(d, func() { step(generation) })
}

func (s *Session) beginTypingLocked() []func() {
	s.typed = 0
	s.state = StateTypingQuestion
	s.scheduleLocked(s.timings.TypingSpeed, s.typeTick)
	return []func(){s.stateChangeEvent(s.snapshotLocked())}
}

func (s *Session) typeTick(generation int) {
	s.mu.Lock()
	if generation != s.generation || s.state != StateTypingQuestion {
		s.mu.Unlock()
		return
	}

	question := s.questions[s.index]
	if s.typed < len([]rune(question)) {
		s.typed++
		s.scheduleLocked(s.timings.TypingSpeed, s.typeTick)
		s.mu.Unlock()
		return
	}

	s.state = StateWaitingForResponse
	s.scheduleLocked(s.timings.ThinkingDelay, s.respond)
	events := []func(){s.messageEvent(question, true), s.stateChangeEvent(s.snapshotLocked())}
	s.mu.Unlock()

	s.dispatch(events)
}

func (s *Session) respond(generation int) {
	s.mu.Lock()
	if generation != s.generation || s.state != StateWaitingForResponse {
		s.mu.Unlock()
		return
	}
	index := s.index
	question := s.questions[index]
	watched := append([]float64(nil), s.watched...)
	s.mu.Unlock()

	resp := s.assistant.Answer(question, watched)

	s.mu.Lock()
	if generation != s.generation {
		s.mu.Unlock()
		return
	}
	s.state = StateShowingResponse
	s.scheduleLocked(s.timings.PauseBetweenQuestions, s.advance)
	events := append(s.responseEvents(resp), s.stateChangeEvent(s.snapshotLocked()))
	s.mu.Unlock()

	s.logger.Debug("demo answered",
		slog.Int("index", index),
		slog.String("question", question),
		slog.Float64("confidence", resp.Confidence))
	s.dispatch(events)
}

func (s *Session) advance(generation int) {
	s.mu.Lock()
	if generation != s.generation || s.state != StateShowingResponse {
		s.mu.Unlock()
		return
	}

	s.index++
	var events []func()
	finished := !s.autoDemo || s.index >= len(s.questions)
	if finished {
		s.autoDemo = false
		s.state = StateIdle
		s.typed = 0
		s.timer = nil
		events = []func(){s.stateChangeEvent(s.snapshotLocked())}
	} else {
		events = s.beginTypingLocked()
	}
	s.mu.Unlock()

	if finished {
		s.logger.Info("demo finished")
	}
	s.dispatch(events)
}
