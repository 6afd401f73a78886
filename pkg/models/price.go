package models

import "time"

// PricePoint is one day of closing price data for a ticker.
type PricePoint struct {
	Date   time.Time `json:"date"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume,omitempty"`
}
