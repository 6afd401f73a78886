package sentiment

import (
	"strings"
	"testing"
)

func TestScoreTextPositive(t *testing.T) {
	text := "Record revenue growth and strong margins exceeded expectations, a successful year with favorable momentum."
	score := ScoreText(text)
	if score.Polarity <= 0 {
		t.Errorf("expected positive polarity, got %f", score.Polarity)
	}
	if score.Polarity > 1 {
		t.Errorf("polarity out of range: %f", score.Polarity)
	}
}

func TestScoreTextNegative(t *testing.T) {
	text := "The decline in revenue, ongoing litigation, goodwill impairment and an adverse regulatory investigation caused significant losses."
	score := ScoreText(text)
	if score.Polarity >= 0 {
		t.Errorf("expected negative polarity, got %f", score.Polarity)
	}
	if score.Polarity < -1 {
		t.Errorf("polarity out of range: %f", score.Polarity)
	}
}

func TestScoreTextNeutral(t *testing.T) {
	score := ScoreText("The company filed its annual report on the last business day of the quarter.")
	if score.Polarity != 0 {
		t.Errorf("expected zero polarity for lexicon-free text, got %f", score.Polarity)
	}
}

func TestScoreTextEmpty(t *testing.T) {
	for _, text := range []string{"", "   \n\t  ", "123 456 $$$"} {
		score := ScoreText(text)
		if score.Polarity != 0 || score.Subjectivity != 0 {
			t.Errorf("%q: expected neutral score, got %+v", text, score)
		}
	}
}

func TestScoreTextSubjectivity(t *testing.T) {
	hedged := "We believe results may improve and expect growth, although outcomes could remain uncertain and estimates might change."
	factual := "The company reported revenue of 5 dollars for the quarter ended September 28."

	h := ScoreText(hedged)
	f := ScoreText(factual)
	if h.Subjectivity <= f.Subjectivity {
		t.Errorf("expected hedged prose to score more subjective: hedged=%f factual=%f", h.Subjectivity, f.Subjectivity)
	}
	if h.Subjectivity > 1 {
		t.Errorf("subjectivity out of range: %f", h.Subjectivity)
	}
}

func TestScoreTextSubjectivityCapped(t *testing.T) {
	// Pure hedging language saturates at 1 rather than overshooting.
	text := strings.Repeat("may might could believe expect anticipate ", 20)
	if s := ScoreText(text).Subjectivity; s != 1 {
		t.Errorf("expected subjectivity capped at 1, got %f", s)
	}
}

func TestScoreTextCaseInsensitive(t *testing.T) {
	lower := ScoreText("strong growth in revenue")
	upper := ScoreText("STRONG GROWTH IN REVENUE")
	if lower != upper {
		t.Errorf("expected case-insensitive scoring, got %+v vs %+v", lower, upper)
	}
}

func TestTokenizeKeepsHyphens(t *testing.T) {
	tokens := tokenize("A one-time write-off, reported 2024.")
	want := []string{"a", "one-time", "write-off", "reported"}
	if len(tokens) != len(want) {
		t.Fatalf("expected %v, got %v", want, tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d: expected %q, got %q", i, want[i], tokens[i])
		}
	}
}
