// Package export serializes filing lists for download.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/seenimoa/filinglens/pkg/models"
)

// csvHeader matches the column order consumers of the filings table expect.
var csvHeader = []string{"date", "form", "accessionNumber", "primaryDocument", "reportUrl"}

// FilingsCSV renders filing records as CSV bytes, one row per filing,
// preserving input order. Output is reproducible byte-for-byte for the
// same input.
func FilingsCSV(records []models.FilingRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Date.Format("2006-01-02"),
			r.FormType,
			r.AccessionNumber,
			r.PrimaryDocument,
			r.DocumentURL,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
