package edgar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

const submissionsJSON = `{
	"cik": "320193",
	"name": "Apple Inc.",
	"filings": {
		"recent": {
			"accessionNumber": ["0000320193-24-000123", "0000320193-24-000081", "0000320193-23-000106"],
			"filingDate": ["2024-11-01", "2024-08-02", "2023-11-03"],
			"form": ["10-K", "10-Q", "10-K"],
			"primaryDocument": ["aapl-20240928.htm", "aapl-20240629.htm", "aapl-20230930.htm"]
		}
	}
}`

func submissionsServer(t *testing.T, body string, requests *atomic.Int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests != nil {
			requests.Add(1)
		}
		if r.URL.Path != "/CIK0000320193.json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, body)
	}))
}

func TestFetchCatalog(t *testing.T) {
	srv := submissionsServer(t, submissionsJSON, nil)
	defer srv.Close()

	svc := newTestService(testEdgarConfig(srv.URL), nil)
	catalog, err := svc.FetchCatalog(context.Background(), "0000320193")
	if err != nil {
		t.Fatalf("FetchCatalog failed: %v", err)
	}

	if catalog.Len() != 3 {
		t.Fatalf("expected 3 filings, got %d", catalog.Len())
	}
	if catalog.CIK != "0000320193" {
		t.Errorf("expected catalog keyed by padded CIK, got %q", catalog.CIK)
	}
	if catalog.Forms[0] != "10-K" || catalog.FilingDates[0] != "2024-11-01" {
		t.Errorf("unexpected first filing: %s %s", catalog.Forms[0], catalog.FilingDates[0])
	}
}

func TestFetchCatalogCached(t *testing.T) {
	var requests atomic.Int32
	srv := submissionsServer(t, submissionsJSON, &requests)
	defer srv.Close()

	svc := newTestService(testEdgarConfig(srv.URL), nil)
	for i := 0; i < 2; i++ {
		if _, err := svc.FetchCatalog(context.Background(), "0000320193"); err != nil {
			t.Fatalf("fetch %d: %v", i, err)
		}
	}
	if requests.Load() != 1 {
		t.Errorf("expected exactly 1 network request within TTL, got %d", requests.Load())
	}
}

func TestFetchCatalogHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	svc := newTestService(testEdgarConfig(srv.URL), nil)
	_, err := svc.FetchCatalog(context.Background(), "0000320193")

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", httpErr.StatusCode)
	}
}

func TestFetchCatalogMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing filings", `{"cik": "320193", "name": "Apple Inc."}`},
		{"missing recent", `{"cik": "320193", "filings": {}}`},
		{"ragged sequences", `{
			"filings": {"recent": {
				"accessionNumber": ["0000320193-24-000123"],
				"filingDate": ["2024-11-01", "2024-08-02"],
				"form": ["10-K"],
				"primaryDocument": ["aapl-20240928.htm"]
			}}
		}`},
		{"not json", `<html>rate limited</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := submissionsServer(t, tt.body, nil)
			defer srv.Close()

			svc := newTestService(testEdgarConfig(srv.URL), nil)
			_, err := svc.FetchCatalog(context.Background(), "0000320193")

			var malformed *MalformedResponseError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedResponseError, got %v", err)
			}
		})
	}
}
