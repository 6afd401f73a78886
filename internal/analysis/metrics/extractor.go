// Package metrics extracts approximate financial figures from filing
// documents with labeled regex patterns.
//
// This is explicitly best-effort text scraping, not XBRL parsing: it can
// miss real figures (phrasing variance) and over-match boilerplate (a
// label in a table of contents). Output is never audited financial data.
package metrics

import (
	"bytes"
	"context"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"

	"github.com/seenimoa/filinglens/internal/analysis/sentiment"
	"github.com/seenimoa/filinglens/internal/edgar"
	"github.com/seenimoa/filinglens/pkg/models"
)

// Metric patterns: a label phrase, up to a short run of filler, an
// optional currency symbol, a number, and an optional magnitude suffix.
// The number group is permissive ([\d.,]+) so that a mangled figure still
// matches and is recorded as an unparsable occurrence instead of being
// silently skipped.
const numberAndSuffix = `[^0-9$]{0,40}\$?\s*([0-9][0-9.,]*)\s*(thousand|million|billion|[kmb])?\b`

var metricPatterns = map[string]*regexp.Regexp{
	"revenue":          regexp.MustCompile(`(?i)(?:total\s+|net\s+)?revenues?` + numberAndSuffix),
	"net_income":       regexp.MustCompile(`(?i)net\s+(?:income|earnings)` + numberAndSuffix),
	"eps":              regexp.MustCompile(`(?i)(?:(?:diluted|basic)\s+)?earnings\s+per\s+share` + numberAndSuffix),
	"operating_income": regexp.MustCompile(`(?i)(?:operating\s+income|income\s+from\s+operations)` + numberAndSuffix),
	"cash_flow":        regexp.MustCompile(`(?i)(?:(?:net\s+)?cash\s+(?:provided\s+by|used\s+in|from)\s+operating\s+activities|operating\s+cash\s+flows?)` + numberAndSuffix),
}

var whitespaceRE = regexp.MustCompile(`\s+`)

// Extractor downloads filing documents and produces metric/sentiment
// summaries. It shares the pipeline's rate-limited client so document
// fetches observe the same politeness policy as metadata fetches.
type Extractor struct {
	client *edgar.Client
}

// NewExtractor creates an extractor using the given EDGAR client.
func NewExtractor(client *edgar.Client) *Extractor {
	return &Extractor{client: client}
}

// Extract fetches a filing document, strips its markup, and scans the
// plain text for every metric label plus a document-level sentiment
// score. Fetch failures surface as the client's typed errors; numeric
// parse failures are recorded per-occurrence as nil values and never
// abort the rest of the extraction.
func (e *Extractor) Extract(ctx context.Context, documentURL string) (*models.FilingAnalysis, error) {
	body, err := e.client.Fetch(ctx, documentURL)
	if err != nil {
		return nil, err
	}

	text := StripMarkup(body)

	analysis := &models.FilingAnalysis{
		DocumentURL: documentURL,
		Metrics:     make(map[string][]models.MetricMatch, len(metricPatterns)),
		Sentiment:   sentiment.ScoreText(text),
		TextLength:  len(text),
	}
	for label, pattern := range metricPatterns {
		analysis.Metrics[label] = scan(pattern, text)
	}
	return analysis, nil
}

// scan collects every match of one metric pattern. The magnitude suffix
// is captured as written but never applied to the value.
func scan(pattern *regexp.Regexp, text string) []models.MetricMatch {
	matches := make([]models.MetricMatch, 0)
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		if len(m) < 2 || m[1] == "" {
			continue
		}
		match := models.MetricMatch{Raw: strings.TrimSpace(m[0])}
		if len(m) > 2 {
			match.Magnitude = strings.ToLower(m[2])
		}
		if v, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", "")); err == nil {
			match.Value = &v
		}
		matches = append(matches, match)
	}
	return matches
}

// StripMarkup reduces a filing document to plain text. Markup parsing is
// best-effort: a document that cannot be parsed at all degrades to its
// raw bytes rather than failing the extraction.
func StripMarkup(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return collapse(string(body))
	}
	doc.Find("script, style").Remove()
	return collapse(doc.Text())
}

func collapse(s string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}
