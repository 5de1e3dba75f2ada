package match

import (
	"context"
	"testing"
)

func TestLexical_IdenticalTextScoresOne(t *testing.T) {
	var lex Lexical
	for _, s := range []string{"Paris", "la capitale est Paris", "7"} {
		if got := lex.Score(context.Background(), s, s); got != 1.0 {
			t.Errorf("Score(%q, %q) = %v, want 1.0", s, s, got)
		}
	}
}

func TestLexical_Symmetric(t *testing.T) {
	var lex Lexical
	cases := [][2]string{
		{"Paris", "la capitale est Paris"},
		{"seven continents", "there are seven"},
		{"Lyon", "Paris"},
	}
	for _, c := range cases {
		ab := lex.Score(context.Background(), c[0], c[1])
		ba := lex.Score(context.Background(), c[1], c[0])
		if ab != ba {
			t.Errorf("Score(%q, %q) = %v but Score(%q, %q) = %v", c[0], c[1], ab, c[1], c[0], ba)
		}
	}
}

func TestLexical_EmptyInputScoresZero(t *testing.T) {
	var lex Lexical
	cases := [][2]string{
		{"", "Paris"},
		{"Paris", ""},
		{"", ""},
		{"   ", "Paris"},
	}
	for _, c := range cases {
		if got := lex.Score(context.Background(), c[0], c[1]); got != 0 {
			t.Errorf("Score(%q, %q) = %v, want 0", c[0], c[1], got)
		}
	}
}

func TestLexical_JaccardOverlap(t *testing.T) {
	var lex Lexical
	tests := []struct {
		a, b string
		want float64
	}{
		// {paris} vs {la, capitale, est, paris}: 1 shared of 4.
		{"Paris", "la capitale est Paris", 0.25},
		// Disjoint token sets.
		{"Lyon", "Paris", 0},
		// Case-insensitive, duplicate tokens deduped.
		{"paris PARIS", "Paris", 1.0},
	}
	for _, tt := range tests {
		if got := lex.Score(context.Background(), tt.a, tt.b); got != tt.want {
			t.Errorf("Score(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
