package main

import (
	"github.com/jonathan/tradepath/internal/assistant"
	"github.com/jonathan/tradepath/internal/transcript"
	"github.com/jonathan/tradepath/internal/types"
)

// newAssistant builds an assistant over t. The scripted demo answers refer
// to the circuit design sample, so they are only enabled for it.
func newAssistant(t *types.Transcript) *assistant.Assistant {
	var demos []assistant.DemoQuestion
	if t.VideoID == transcript.CircuitDesignID {
		demos = assistant.DemoQuestions()
	}
	return assistant.New(t, demos, newSource())
}
