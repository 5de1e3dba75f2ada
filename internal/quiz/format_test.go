package quiz

import (
	"math"
	"strings"
	"testing"

	"quizchat/internal/catalog"
	"quizchat/internal/match"
)

func TestFormatQuestion_PositionAndText(t *testing.T) {
	q := catalog.Question{Text: "Quelle est la capitale de la France ?"}
	got := FormatQuestion(q, 0, 5)
	want := "Question 1/5: Quelle est la capitale de la France ?"
	if got != want {
		t.Errorf("FormatQuestion = %q, want %q", got, want)
	}
}

func TestFormatQuestion_WithChoices(t *testing.T) {
	q := catalog.Question{
		Text:    "Combien de continents ?",
		Choices: []string{"5", "6", "7"},
	}
	got := FormatQuestion(q, 1, 3)

	if !strings.HasPrefix(got, "Question 2/3: Combien de continents ?") {
		t.Errorf("unexpected prefix: %q", got)
	}
	if !strings.Contains(got, "Choices:") {
		t.Errorf("missing choices header: %q", got)
	}
	for _, c := range q.Choices {
		if !strings.Contains(got, "- "+c) {
			t.Errorf("missing choice %q: %q", c, got)
		}
	}
}

func TestFormatFeedback_Correct(t *testing.T) {
	v := match.Verdict{Correct: true, Score: 1.0, Gold: "Paris"}
	got := FormatFeedback(v, "Paris est la capitale.")

	if !strings.Contains(got, "✅ Correct") {
		t.Errorf("missing marker: %q", got)
	}
	if !strings.Contains(got, "(similarity: 1.00)") {
		t.Errorf("missing score: %q", got)
	}
	if !strings.Contains(got, "Expected answer (example): Paris") {
		t.Errorf("missing gold: %q", got)
	}
	if !strings.Contains(got, "Info: Paris est la capitale.") {
		t.Errorf("missing explanation: %q", got)
	}
}

func TestFormatFeedback_IncorrectTwoDecimals(t *testing.T) {
	v := match.Verdict{Correct: false, Score: 0.256, Gold: "sept"}
	got := FormatFeedback(v, "")

	if !strings.Contains(got, "❌ Incorrect") {
		t.Errorf("missing marker: %q", got)
	}
	if !strings.Contains(got, "(similarity: 0.26)") {
		t.Errorf("score not rounded to two decimals: %q", got)
	}
	if strings.Contains(got, "Info:") {
		t.Errorf("unexpected explanation line: %q", got)
	}
}

func TestFormatFeedback_NaNScoreOmitted(t *testing.T) {
	v := match.Verdict{Score: math.NaN()}
	got := FormatFeedback(v, "")

	if strings.Contains(got, "similarity") {
		t.Errorf("NaN score must be omitted: %q", got)
	}
}

func TestFormatFeedback_EmptyGoldOmitted(t *testing.T) {
	got := FormatFeedback(match.Verdict{}, "")
	if strings.Contains(got, "Expected answer") {
		t.Errorf("unexpected gold line: %q", got)
	}
}

func TestFormatSummary_ContainsScoreOverTotal(t *testing.T) {
	got := FormatSummary(2, 5)
	if !strings.Contains(got, "2/5") {
		t.Errorf("FormatSummary = %q, want score 2/5", got)
	}
	if !strings.Contains(strings.ToLower(got), "start") {
		t.Errorf("summary must invite a restart: %q", got)
	}
}
