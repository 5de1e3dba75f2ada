package quiz

import (
	"context"
	"strings"
)

// startCommands are the recognized case-insensitive tokens that begin a quiz
// run, including the French variants the original catalogs shipped with.
var startCommands = map[string]struct{}{
	"start":     {},
	"go":        {},
	"begin":     {},
	"commencer": {},
	"démarrer":  {},
	"demarrer":  {},
}

// IsStartCommand reports whether message is a recognized start command.
func IsStartCommand(message string) bool {
	_, ok := startCommands[strings.ToLower(strings.TrimSpace(message))]
	return ok
}

// HandleTurn processes one user message and returns the text to display.
// Exactly one state transition happens per call; st is mutated in place and
// must be round-tripped unchanged between calls by the presentation layer.
func HandleTurn(ctx context.Context, message string, st *State) string {
	if !st.Started {
		if !IsStartCommand(message) {
			return PromptToStart
		}
		st.Started = true
		st.Index = 0
		st.Score = 0
		if st.Total == 0 {
			st.Started = false
			return FormatSummary(st.Score, st.Total)
		}
		return WelcomeBanner + "\n\n" + FormatQuestion(st.Questions[0], 0, st.Total)
	}

	// A carried-over state whose index ran past the catalog closes out here.
	if st.Index >= st.Total {
		st.Started = false
		return FormatSummary(st.Score, st.Total)
	}

	q := st.Questions[st.Index]
	verdict := st.Checker.Evaluate(ctx, message, q.Answers)
	if verdict.Correct {
		st.Score++
	}
	feedback := FormatFeedback(verdict, q.Explanation)

	st.Index++
	if st.Index >= st.Total {
		st.Started = false
		return feedback + "\n\n" + FormatSummary(st.Score, st.Total)
	}
	return feedback + "\n\n" + FormatQuestion(st.Questions[st.Index], st.Index, st.Total)
}
