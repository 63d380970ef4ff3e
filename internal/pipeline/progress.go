// Package pipeline provides the high-level orchestration for a trade
// compatibility analysis.
package pipeline

import (
	"sync"

	"github.com/jonathan/tradepath/internal/pipeline/steps"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`

	// Available and Blocked list the steps that could run next and those
	// still waiting on dependencies, as of this event.
	Available []string `json:"available_steps,omitempty"`
	Blocked   []string `json:"blocked_steps,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// progressEmitter serializes callbacks so that concurrent branches never
// invoke the caller's callback at the same time.
type progressEmitter struct {
	mu      sync.Mutex
	runID   string
	fn      ProgressCallback
	tracker *steps.Tracker // optional
}

// emitProgress calls the progress callback if configured
func (p *progressEmitter) emitProgress(step, category, message string, content any) {
	if p == nil || p.fn == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	event := ProgressEvent{
		Step:     step,
		Category: category,
		Message:  message,
		RunID:    p.runID,
		Content:  content,
	}
	if p.tracker != nil {
		event.Available = p.tracker.AvailableSteps()
		event.Blocked = p.tracker.BlockedSteps()
	}
	p.fn(event)
}
