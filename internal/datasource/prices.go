// Package datasource fetches supporting market data for the dashboard:
// the stock price series shown alongside a company's filings.
package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/seenimoa/filinglens/internal/config"
	"github.com/seenimoa/filinglens/internal/infra"
	"github.com/seenimoa/filinglens/pkg/models"
)

// YahooSource fetches daily price history from the Yahoo Finance v8
// chart API.
type YahooSource struct {
	chartBase string
	userAgent string
}

// NewYahooSource creates a price source from configuration.
func NewYahooSource(cfg config.PricesConfig) *YahooSource {
	return &YahooSource{
		chartBase: cfg.ChartBase,
		userAgent: "Mozilla/5.0 (compatible; filinglens/1.0)",
	}
}

// --- Yahoo Finance v8 chart API types ---

type yfChartResponse struct {
	Chart struct {
		Result []yfChartResult `json:"result"`
		Error  *yfError        `json:"error"`
	} `json:"chart"`
}

type yfChartResult struct {
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []yfQuote `json:"quote"`
	} `json:"indicators"`
}

type yfQuote struct {
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}

type yfError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// DailyCloses returns up to `days` days of daily closing prices for a
// ticker, oldest first. Null data points (market holidays, gaps in the
// feed) are skipped.
func (y *YahooSource) DailyCloses(ctx context.Context, symbol string, days int) ([]models.PricePoint, error) {
	url := fmt.Sprintf("%s/%s?range=%dd&interval=1d", y.chartBase, symbol, days)

	body, _, err := infra.DoGet(ctx, url, map[string]string{"User-Agent": y.userAgent})
	if err != nil {
		return nil, fmt.Errorf("fetch price chart for %s: %w", symbol, err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read price chart for %s: %w", symbol, err)
	}

	var resp yfChartResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parse price chart for %s: %w", symbol, err)
	}
	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("price chart for %s: %s (%s)", symbol, resp.Chart.Error.Description, resp.Chart.Error.Code)
	}
	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("price chart for %s: empty result", symbol)
	}

	result := resp.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	points := make([]models.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue
		}
		point := models.PricePoint{
			Date:  time.Unix(ts, 0).UTC(),
			Close: *quote.Close[i],
		}
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			point.Volume = *quote.Volume[i]
		}
		points = append(points, point)
	}
	return points, nil
}
