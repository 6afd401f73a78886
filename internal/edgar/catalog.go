package edgar

import (
	"context"
	"fmt"
)

// FetchCatalog retrieves the full filing history (all form types, all
// dates) for a zero-padded CIK from the submissions endpoint.
//
// It is a pure retrieval step: the catalog is large and expensive to
// re-fetch, so it is cached per CIK for the service TTL, while all
// filtering happens downstream and never forces a re-fetch. A 200 body
// missing the filings.recent structure, or with ragged parallel arrays,
// surfaces as *MalformedResponseError.
func (s *Service) FetchCatalog(ctx context.Context, cik string) (*FilingCatalog, error) {
	cacheKey := "catalog:" + cik
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.(*FilingCatalog), nil
	}

	v, err, _ := s.group.Do(cacheKey, func() (any, error) {
		url := fmt.Sprintf("%s/CIK%s.json", s.cfg.SubmissionsBase, cik)

		var resp submissionsResponse
		if err := s.client.FetchJSON(ctx, url, &resp); err != nil {
			return nil, err
		}
		if resp.Filings == nil || resp.Filings.Recent == nil {
			return nil, &MalformedResponseError{URL: url, Reason: "missing filings.recent"}
		}

		recent := resp.Filings.Recent
		n := len(recent.Form)
		if len(recent.FilingDate) != n || len(recent.AccessionNumber) != n || len(recent.PrimaryDocument) != n {
			return nil, &MalformedResponseError{URL: url, Reason: "parallel filing sequences have unequal lengths"}
		}

		catalog := &FilingCatalog{
			CIK:              cik,
			Forms:            recent.Form,
			FilingDates:      recent.FilingDate,
			AccessionNumbers: recent.AccessionNumber,
			PrimaryDocuments: recent.PrimaryDocument,
		}
		s.cache.Set(cacheKey, catalog)
		return catalog, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*FilingCatalog), nil
}
