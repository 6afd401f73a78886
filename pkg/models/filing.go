// Package models defines the public data types exchanged between the
// EDGAR pipeline, the analysis layer, and consumers (CLI, API).
package models

import "time"

// SupportedFormTypes is the set of form codes the pipeline filters on.
// EDGAR reports form codes uppercase; matching is exact.
var SupportedFormTypes = []string{"10-K", "10-Q", "8-K"}

// IsSupportedFormType reports whether form is one of the known form codes.
func IsSupportedFormType(form string) bool {
	for _, f := range SupportedFormTypes {
		if f == form {
			return true
		}
	}
	return false
}

// Window bounds for the trailing filing lookback, in days.
const (
	MinWindowDays = 30
	MaxWindowDays = 365
)

// CompanyRecord is a resolved ticker-to-CIK mapping.
// CIK is always zero-padded to 10 digits; downstream URL construction
// depends on that width.
type CompanyRecord struct {
	CIK    string `json:"cik"`
	Name   string `json:"name"`
	Ticker string `json:"ticker"`
}

// FilingRecord is a single filing narrowed out of a company's catalog,
// with its document URL already resolved.
type FilingRecord struct {
	Date            time.Time `json:"date"`
	FormType        string    `json:"form_type"`
	AccessionNumber string    `json:"accession_number"`
	PrimaryDocument string    `json:"primary_document"`
	DocumentURL     string    `json:"document_url"`
}

// FeedEntry is one item from a company's EDGAR Atom feed of recent filings.
type FeedEntry struct {
	Title   string    `json:"title"`
	Link    string    `json:"link"`
	Updated time.Time `json:"updated"`
}
