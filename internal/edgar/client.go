package edgar

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Client is a rate-limited HTTP client for SEC EDGAR.
//
// It enforces a minimum gap before every outbound request (EDGAR
// politeness policy), sends the identifying User-Agent EDGAR requires,
// and retries exactly once after a fixed backoff when rate-limited.
type Client struct {
	httpClient   *http.Client
	limiter      *rate.Limiter
	userAgent    string
	retryBackoff time.Duration
	sleep        func(time.Duration)
}

// ClientOption allows for customization of the client.
type ClientOption func(*Client)

// NewClient creates a new EDGAR client.
func NewClient(options ...ClientOption) *Client {
	client := &Client{
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		limiter:      rate.NewLimiter(rate.Every(100*time.Millisecond), 1),
		userAgent:    "filinglens/1.0 (github.com/seenimoa/filinglens)",
		retryBackoff: 10 * time.Second,
		sleep:        time.Sleep,
	}
	for _, option := range options {
		option(client)
	}
	return client
}

// WithHTTPClient allows custom HTTP client configuration.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithUserAgent sets the identifying User-Agent string. EDGAR blocks
// requests without a descriptive contact-style agent.
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) { c.userAgent = userAgent }
}

// WithRequestGap sets the minimum delay enforced before every request.
func WithRequestGap(gap time.Duration) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Every(gap), 1)
	}
}

// WithRetryBackoff sets the wait before the single rate-limit retry.
func WithRetryBackoff(backoff time.Duration) ClientOption {
	return func(c *Client) { c.retryBackoff = backoff }
}

// WithSleepFunc replaces the backoff sleep. Tests use this to observe the
// 429 backoff without waiting it out.
func WithSleepFunc(sleep func(time.Duration)) ClientOption {
	return func(c *Client) { c.sleep = sleep }
}

// Fetch performs a GET against url and returns the response body.
// Transport failures surface as *NetworkError, non-200 statuses as
// *HTTPError. A 429 is retried exactly once after the configured backoff;
// the retry's outcome is returned as-is, with no further retries.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	body, status, err := c.attempt(ctx, url)
	if err != nil {
		return nil, err
	}
	if status == http.StatusTooManyRequests {
		c.sleep(c.retryBackoff)
		body, status, err = c.attempt(ctx, url)
		if err != nil {
			return nil, err
		}
	}
	if status != http.StatusOK {
		return nil, &HTTPError{URL: url, StatusCode: status}
	}
	return body, nil
}

// FetchJSON fetches url and unmarshals the body into dest. A body that
// fails to decode surfaces as *MalformedResponseError.
func (c *Client) FetchJSON(ctx context.Context, url string, dest any) error {
	body, err := c.Fetch(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return &MalformedResponseError{URL: url, Reason: "invalid JSON: " + err.Error()}
	}
	return nil
}

// attempt issues a single rate-limited request and reads the full body.
func (c *Client) attempt(ctx context.Context, url string) ([]byte, int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, &NetworkError{URL: url, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, &NetworkError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json, text/html;q=0.9, */*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, &NetworkError{URL: url, Err: err}
	}
	return body, resp.StatusCode, nil
}
