package edgar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/seenimoa/filinglens/internal/config"
)

const atomFeed = `<?xml version="1.0" encoding="ISO-8859-1" ?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Apple Inc. (0000320193) - EDGAR Filings</title>
  <updated>2024-11-01T06:01:36-04:00</updated>
  <entry>
    <title>10-K  - Annual report</title>
    <link rel="alternate" type="text/html" href="https://www.sec.gov/Archives/edgar/data/320193/000032019324000123/0000320193-24-000123-index.htm"/>
    <updated>2024-11-01T06:01:36-04:00</updated>
  </entry>
  <entry>
    <title>10-Q  - Quarterly report</title>
    <link rel="alternate" type="text/html" href="https://www.sec.gov/Archives/edgar/data/320193/000032019324000081/0000320193-24-000081-index.htm"/>
    <updated>2024-08-02T06:01:36-04:00</updated>
  </entry>
</feed>`

func TestLatestFilingsFeed(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/atom+xml")
		w.Write([]byte(atomFeed))
	}))
	defer srv.Close()

	svc := newTestService(config.EdgarConfig{FeedBase: srv.URL, CacheTTLSec: 3600}, nil)
	entries, err := svc.LatestFilingsFeed(context.Background(), "0000320193", "10-K", 10)
	if err != nil {
		t.Fatalf("LatestFilingsFeed failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 feed entries, got %d", len(entries))
	}
	if entries[0].Link == "" || entries[0].Updated.IsZero() {
		t.Errorf("expected link and timestamp on first entry, got %+v", entries[0])
	}

	for _, want := range []string{"action=getcompany", "CIK=0000320193", "type=10-K", "output=atom", "count=10"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("expected query to contain %q, got %q", want, gotQuery)
		}
	}
}

func TestLatestFilingsFeedMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not a feed"))
	}))
	defer srv.Close()

	svc := newTestService(config.EdgarConfig{FeedBase: srv.URL, CacheTTLSec: 3600}, nil)
	if _, err := svc.LatestFilingsFeed(context.Background(), "0000320193", "", 0); err == nil {
		t.Error("expected error for unparseable feed body")
	}
}
