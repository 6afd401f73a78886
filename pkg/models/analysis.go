package models

import "github.com/shopspring/decimal"

// MetricLabels is the fixed set of metric labels the extractor scans for.
var MetricLabels = []string{"revenue", "net_income", "eps", "operating_income", "cash_flow"}

// MetricMatch is a single occurrence of a metric phrase in a filing document.
// Value is nil when the matched number segment failed to parse — a recorded
// miss, not an error. Magnitude holds the suffix word as written in the
// document ("million", "b", ...); the value is never scaled by it.
type MetricMatch struct {
	Raw       string           `json:"raw"`
	Value     *decimal.Decimal `json:"value"`
	Magnitude string           `json:"magnitude,omitempty"`
}

// SentimentScore is a document-level sentiment summary.
// Polarity is in [-1, 1], Subjectivity in [0, 1].
type SentimentScore struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// FilingAnalysis is the approximate metrics-and-sentiment summary extracted
// from one filing document. It is regex-derived from unstructured text and
// must not be treated as audited financial data.
type FilingAnalysis struct {
	DocumentURL string                   `json:"document_url"`
	Metrics     map[string][]MetricMatch `json:"metrics"`
	Sentiment   SentimentScore           `json:"sentiment"`
	TextLength  int                      `json:"text_length"`
}

// Mean returns the arithmetic mean of all successfully parsed values for a
// metric label. ok is false when no occurrence parsed — "not found", which
// callers must render distinctly from a confirmed zero.
func (a *FilingAnalysis) Mean(label string) (decimal.Decimal, bool) {
	matches := a.Metrics[label]
	sum := decimal.Zero
	n := 0
	for _, m := range matches {
		if m.Value == nil {
			continue
		}
		sum = sum.Add(*m.Value)
		n++
	}
	if n == 0 {
		return decimal.Zero, false
	}
	return sum.Div(decimal.NewFromInt(int64(n))), true
}

// Means returns the per-label means for every label with at least one
// parsed value.
func (a *FilingAnalysis) Means() map[string]decimal.Decimal {
	means := make(map[string]decimal.Decimal)
	for label := range a.Metrics {
		if m, ok := a.Mean(label); ok {
			means[label] = m
		}
	}
	return means
}
