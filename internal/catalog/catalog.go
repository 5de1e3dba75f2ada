// Package catalog loads and normalizes quiz question catalogs.
//
// A catalog is a JSON array of question objects. It is read once at startup,
// validated against a schema, normalized into []Question, and never mutated
// afterwards; sessions hold a reference to the same immutable slice.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Question is a single normalized catalog entry.
type Question struct {
	// ID is a stable identifier. Defaults to the 1-based position when the
	// source record carries none.
	ID string

	// Text is the prompt shown to the player. Never empty after Load.
	Text string

	// Answers holds the accepted gold answers, in source order. May be empty,
	// in which case no response to this question is ever judged correct.
	Answers []string

	// Choices holds optional display-only options for multiple-choice
	// presentation. Scoring never consults them.
	Choices []string

	// Explanation is optional context shown after the verdict.
	Explanation string

	// Topic is an optional free-form label, preserved for filtering.
	Topic string
}

// LoadError indicates the catalog source is missing, malformed, or invalid.
// It is fatal: the application cannot run without a catalog.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load catalog %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// record mirrors the raw JSON shape of one catalog entry.
type record struct {
	ID          json.RawMessage `json:"id"`
	Question    string          `json:"question"`
	Answers     []string        `json:"answers"`
	Choices     []string        `json:"choices"`
	Explanation string          `json:"explanation"`
	Topic       string          `json:"topic"`
}

// Load reads the catalog at path and returns the normalized questions.
// Any failure is returned as a *LoadError.
func Load(path string) ([]Question, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	if err := validateCatalog(raw); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var records []record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("decode: %w", err)}
	}

	questions := make([]Question, 0, len(records))
	for i, r := range records {
		q, err := normalize(r, i)
		if err != nil {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("question %d: %w", i+1, err)}
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// normalize trims a raw record into a Question, applying defaults.
func normalize(r record, pos int) (Question, error) {
	text := strings.TrimSpace(r.Question)
	if text == "" {
		return Question{}, fmt.Errorf("question text is empty")
	}

	answers := make([]string, 0, len(r.Answers))
	for j, a := range r.Answers {
		a = strings.TrimSpace(a)
		if a == "" {
			return Question{}, fmt.Errorf("answer %d is empty", j+1)
		}
		answers = append(answers, a)
	}

	return Question{
		ID:          recordID(r.ID, pos),
		Text:        text,
		Answers:     answers,
		Choices:     r.Choices,
		Explanation: strings.TrimSpace(r.Explanation),
		Topic:       strings.TrimSpace(r.Topic),
	}, nil
}

// recordID renders the source id (integer or string) as a string,
// defaulting to the 1-based position.
func recordID(raw json.RawMessage, pos int) string {
	if len(raw) == 0 {
		return strconv.Itoa(pos + 1)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && strings.TrimSpace(s) != "" {
		return strings.TrimSpace(s)
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatInt(n, 10)
	}
	return strconv.Itoa(pos + 1)
}
