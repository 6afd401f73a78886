package edgar

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/seenimoa/filinglens/pkg/models"
)

// LatestFilingsFeed fetches a company's Atom feed of newest filings from
// the browse-edgar endpoint, optionally narrowed to one form type.
// The feed reflects what EDGAR has accepted most recently and can be
// fresher than the submissions catalog; it is fetched through the same
// rate-limited client and is not cached.
func (s *Service) LatestFilingsFeed(ctx context.Context, cik, formType string, limit int) ([]models.FeedEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	q := url.Values{}
	q.Set("action", "getcompany")
	q.Set("CIK", cik)
	if formType != "" {
		q.Set("type", formType)
	}
	q.Set("output", "atom")
	q.Set("count", fmt.Sprintf("%d", limit))
	feedURL := s.cfg.FeedBase + "?" + q.Encode()

	body, err := s.client.Fetch(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	feed, err := gofeed.NewParser().ParseString(string(body))
	if err != nil {
		return nil, &MalformedResponseError{URL: feedURL, Reason: "invalid feed: " + err.Error()}
	}

	entries := make([]models.FeedEntry, 0, len(feed.Items))
	for _, item := range feed.Items {
		updated := time.Time{}
		if item.UpdatedParsed != nil {
			updated = *item.UpdatedParsed
		} else if item.PublishedParsed != nil {
			updated = *item.PublishedParsed
		}
		entries = append(entries, models.FeedEntry{
			Title:   item.Title,
			Link:    item.Link,
			Updated: updated,
		})
	}
	return entries, nil
}
