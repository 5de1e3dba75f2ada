package quiz

import (
	"fmt"
	"math"
	"strings"

	"quizchat/internal/catalog"
	"quizchat/internal/match"
)

const (
	// WelcomeBanner opens a quiz run.
	WelcomeBanner = "Welcome to the quiz!"

	// PromptToStart is shown for any message before the run begins.
	PromptToStart = "Type 'start' to begin the quiz."
)

// FormatQuestion renders one question with its position in the run.
// Choices, when present, are listed for display only; any free-text answer
// is still accepted and checked the same way.
func FormatQuestion(q catalog.Question, idx, total int) string {
	base := fmt.Sprintf("Question %d/%d: %s", idx+1, total, q.Text)
	if len(q.Choices) == 0 {
		return base
	}

	var b strings.Builder
	b.WriteString(base)
	b.WriteString("\n\nChoices:\n")
	for i, c := range q.Choices {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- " + c)
	}
	return b.String()
}

// FormatFeedback renders the verdict for one answered question: a
// correctness marker, the similarity score to two decimals (omitted when not
// a valid number), the matched gold example, and the explanation if any.
func FormatFeedback(v match.Verdict, explanation string) string {
	status := "❌ Incorrect"
	if v.Correct {
		status = "✅ Correct"
	}

	base := status
	if !math.IsNaN(v.Score) {
		base += fmt.Sprintf(" (similarity: %.2f)", v.Score)
	}
	if v.Gold != "" {
		base += "\nExpected answer (example): " + v.Gold
	}
	if explanation != "" {
		base += "\nInfo: " + explanation
	}
	return base
}

// FormatSummary renders the end-of-run score line.
func FormatSummary(score, total int) string {
	return fmt.Sprintf("Quiz finished! Score: %d/%d. Type 'start' to play again.", score, total)
}
