package edgar

import (
	"context"
	"fmt"
	"strings"

	"github.com/seenimoa/filinglens/pkg/models"
)

// ResolveCompany maps a ticker symbol to its CIK and display name using
// the registry's bulk ticker table. The match is a case-insensitive exact
// comparison on the ticker symbol; "AAPL" and "aapl" resolve to the same
// record.
//
// A ticker with no entry returns *UnknownTickerError — a legitimate
// outcome, distinct from network or format failures. Resolved records are
// cached per ticker for the service TTL; a second resolve within the TTL
// window performs no network I/O.
func (s *Service) ResolveCompany(ctx context.Context, ticker string) (*models.CompanyRecord, error) {
	sym := strings.ToUpper(strings.TrimSpace(ticker))
	if sym == "" {
		return nil, &UnknownTickerError{Ticker: ticker}
	}

	cacheKey := "company:" + sym
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.(*models.CompanyRecord), nil
	}

	v, err, _ := s.group.Do(cacheKey, func() (any, error) {
		var table map[string]tickerEntry
		if err := s.client.FetchJSON(ctx, s.cfg.TickerTableURL, &table); err != nil {
			return nil, fmt.Errorf("fetch ticker table: %w", err)
		}

		for _, entry := range table {
			if strings.EqualFold(entry.Ticker, sym) {
				record := &models.CompanyRecord{
					CIK:    PadCIK(fmt.Sprintf("%d", entry.CIK)),
					Name:   entry.Title,
					Ticker: sym,
				}
				s.cache.Set(cacheKey, record)
				return record, nil
			}
		}
		return nil, &UnknownTickerError{Ticker: sym}
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.CompanyRecord), nil
}

// PadCIK zero-pads a CIK number to the 10-digit width the registry's
// catalog and archive URLs require.
func PadCIK(cik string) string {
	for len(cik) < 10 {
		cik = "0" + cik
	}
	return cik
}
