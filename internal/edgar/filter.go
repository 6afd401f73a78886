package edgar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/seenimoa/filinglens/pkg/models"
)

const filingDateLayout = "2006-01-02"

// FilterCatalog narrows a filing catalog to one form type and a trailing
// date window ending at now (caller-supplied for testability).
//
// Position i is included iff the form sequence matches formType exactly
// (case-sensitive, as reported by the registry) and its date lies in
// [now-windowDays, now], inclusive both ends. Catalog order — typically
// most-recent-first — is preserved; an empty result is a normal outcome,
// not an error. Entries whose date fails to parse are skipped.
func (s *Service) FilterCatalog(catalog *FilingCatalog, formType string, windowDays int, now time.Time) []models.FilingRecord {
	startDate := now.AddDate(0, 0, -windowDays)

	records := make([]models.FilingRecord, 0)
	for i := 0; i < catalog.Len(); i++ {
		if catalog.Forms[i] != formType {
			continue
		}
		date, err := time.Parse(filingDateLayout, catalog.FilingDates[i])
		if err != nil {
			continue
		}
		if date.Before(startDate) || date.After(now) {
			continue
		}
		records = append(records, models.FilingRecord{
			Date:            date,
			FormType:        catalog.Forms[i],
			AccessionNumber: catalog.AccessionNumbers[i],
			PrimaryDocument: catalog.PrimaryDocuments[i],
			DocumentURL:     DocumentURL(s.cfg.ArchiveBase, catalog.CIK, catalog.AccessionNumbers[i], catalog.PrimaryDocuments[i]),
		})
	}
	return records
}

// Filings is the ticker-to-filing-list convenience operation: resolve the
// ticker, fetch (or reuse) the catalog, and filter it.
func (s *Service) Filings(ctx context.Context, ticker, formType string, windowDays int, now time.Time) (*models.CompanyRecord, []models.FilingRecord, error) {
	company, err := s.ResolveCompany(ctx, ticker)
	if err != nil {
		return nil, nil, err
	}
	catalog, err := s.FetchCatalog(ctx, company.CIK)
	if err != nil {
		return company, nil, err
	}
	return company, s.FilterCatalog(catalog, formType, windowDays, now), nil
}

// DocumentURL builds the archive URL for a filing document. The accession
// number loses its hyphens; the result must match the registry's layout
// byte-for-byte or the document will not be served.
func DocumentURL(archiveBase, cik, accessionNumber, primaryDocument string) string {
	accession := strings.ReplaceAll(accessionNumber, "-", "")
	return fmt.Sprintf("%s/%s/%s/%s", archiveBase, cik, accession, primaryDocument)
}
