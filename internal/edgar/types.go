package edgar

// --- Ticker table (company_tickers.json) ---
// The endpoint returns a map of arbitrary keys to entries:
// {"0": {"cik_str": 320193, "ticker": "AAPL", "title": "Apple Inc."}, ...}

type tickerEntry struct {
	CIK    int64  `json:"cik_str"`
	Ticker string `json:"ticker"`
	Title  string `json:"title"`
}

// --- Submissions (data.sec.gov/submissions/CIK##########.json) ---

type submissionsResponse struct {
	CIK     string       `json:"cik"`
	Name    string       `json:"name"`
	Filings *filingsData `json:"filings"`
}

type filingsData struct {
	Recent *recentFilings `json:"recent"`
}

type recentFilings struct {
	AccessionNumber []string `json:"accessionNumber"`
	FilingDate      []string `json:"filingDate"`
	Form            []string `json:"form"`
	PrimaryDocument []string `json:"primaryDocument"`
}

// FilingCatalog is a company's full filing history as reported by the
// submissions endpoint: parallel ordered sequences indexed by position,
// most-recent-first. Position i across all sequences refers to one filing.
// It is a pure retrieval product; all interpretation (form/date filtering,
// URL construction) happens downstream.
type FilingCatalog struct {
	CIK              string
	Forms            []string
	FilingDates      []string
	AccessionNumbers []string
	PrimaryDocuments []string
}

// Len returns the number of filings in the catalog.
func (c *FilingCatalog) Len() int { return len(c.Forms) }
