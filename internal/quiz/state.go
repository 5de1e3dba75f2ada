// Package quiz drives the turn-taking protocol of a quiz run: question
// sequencing, scoring, and session lifecycle. The presentation layer calls
// HandleTurn once per user message and renders whatever text comes back; it
// never inspects or mutates the state beyond round-tripping it.
package quiz

import (
	"github.com/google/uuid"

	"quizchat/internal/catalog"
	"quizchat/internal/match"
)

// State tracks one quiz run. A fresh State is created at startup and again
// on reset; only HandleTurn mutates it.
type State struct {
	// SessionID identifies this run in one place for debugging.
	SessionID string

	// Started is true while a quiz run is in progress.
	Started bool

	// Index points at the next question to evaluate, 0 <= Index <= Total.
	Index int

	// Score counts correct answers so far, 0 <= Score <= Index.
	Score int

	// Total is the catalog length, snapshotted at session creation.
	Total int

	// Questions is the immutable catalog backing this run.
	Questions []catalog.Question

	// Checker holds the scoring strategy. Built once per session and
	// reused; it may own an expensive embedding backend.
	Checker *match.Checker
}

// NewState creates a fresh not-started session over the catalog.
func NewState(questions []catalog.Question, checker *match.Checker) *State {
	return &State{
		SessionID: uuid.NewString(),
		Questions: questions,
		Total:     len(questions),
		Checker:   checker,
	}
}

// Reset discards the session and returns a zeroed replacement sharing the
// same catalog and checker. Calling it repeatedly yields equivalent states
// regardless of prior history.
func (s *State) Reset() *State {
	return NewState(s.Questions, s.Checker)
}
