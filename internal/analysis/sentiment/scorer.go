// Package sentiment scores filing text with a keyword lexicon.
// It is deterministic and offline: no trained model, no external calls.
// The score is a coarse signal over boilerplate-heavy regulatory prose
// and should be read as directional, not precise.
package sentiment

import (
	"strings"
	"unicode"

	"github.com/seenimoa/filinglens/pkg/models"
)

// Positive / negative lexicons (lowercase). Weights reflect how strongly
// the word reads in filing language.
var positiveWords = map[string]float64{
	"growth": 0.5, "increased": 0.4, "increase": 0.4, "improved": 0.5,
	"improvement": 0.5, "gain": 0.4, "gains": 0.4, "profitable": 0.6,
	"profit": 0.4, "strong": 0.5, "strength": 0.4, "record": 0.4,
	"exceeded": 0.6, "favorable": 0.5, "positive": 0.4, "success": 0.5,
	"successful": 0.5, "outperform": 0.6, "expansion": 0.4, "momentum": 0.4,
	"innovation": 0.3, "opportunity": 0.3, "opportunities": 0.3,
	"achieved": 0.4, "higher": 0.3, "benefit": 0.3, "efficient": 0.3,
}

var negativeWords = map[string]float64{
	"decline": 0.5, "declined": 0.5, "decrease": 0.4, "decreased": 0.4,
	"loss": 0.5, "losses": 0.5, "impairment": 0.6, "adverse": 0.6,
	"adversely": 0.6, "litigation": 0.5, "lawsuit": 0.5, "weakness": 0.5,
	"weak": 0.4, "default": 0.7, "fraud": 0.8, "investigation": 0.5,
	"restructuring": 0.4, "write-off": 0.6, "writedown": 0.6,
	"deficit": 0.5, "shortfall": 0.5, "failure": 0.5, "failed": 0.5,
	"unfavorable": 0.5, "negative": 0.4, "lower": 0.3, "risk": 0.2,
	"risks": 0.2, "uncertainty": 0.3, "volatile": 0.3, "downturn": 0.5,
}

// Subjectivity markers: hedging, expectation, and opinion language.
var subjectiveWords = map[string]float64{
	"may": 0.5, "might": 0.6, "could": 0.5, "would": 0.4, "should": 0.4,
	"believe": 0.8, "believes": 0.8, "expect": 0.7, "expects": 0.7,
	"anticipate": 0.7, "anticipates": 0.7, "estimate": 0.6, "estimates": 0.6,
	"approximately": 0.5, "likely": 0.6, "unlikely": 0.6, "possible": 0.5,
	"probable": 0.5, "uncertain": 0.7, "intend": 0.6, "intends": 0.6,
	"plan": 0.4, "plans": 0.4, "seek": 0.4, "seeks": 0.4, "potential": 0.5,
	"significantly": 0.4, "substantially": 0.4, "generally": 0.3,
}

// ScoreText computes one polarity/subjectivity score for a document.
// Polarity is the weight-normalized balance of positive vs. negative
// lexicon hits in [-1, 1]; subjectivity is the hedging-language density
// scaled into [0, 1]. Empty or signal-free text scores neutral.
func ScoreText(text string) models.SentimentScore {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return models.SentimentScore{}
	}

	posScore := 0.0
	negScore := 0.0
	subjScore := 0.0

	for _, tok := range tokens {
		if w, ok := positiveWords[tok]; ok {
			posScore += w
		}
		if w, ok := negativeWords[tok]; ok {
			negScore += w
		}
		if w, ok := subjectiveWords[tok]; ok {
			subjScore += w
		}
	}

	polarity := 0.0
	if total := posScore + negScore; total > 0 {
		polarity = (posScore - negScore) / total
	}

	// Density of hedging language, scaled so that filing prose with a
	// typical forward-looking-statement load lands mid-range.
	subjectivity := subjScore / float64(len(tokens)) * 25
	if subjectivity > 1 {
		subjectivity = 1
	}

	return models.SentimentScore{
		Polarity:     polarity,
		Subjectivity: subjectivity,
	}
}

// tokenize lowercases and splits on non-letter runs, keeping hyphenated
// words intact ("write-off").
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '-'
	})
}
