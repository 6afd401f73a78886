package edgar

import "fmt"

// Error taxonomy for the retrieval pipeline. Callers branch on these with
// errors.As to distinguish "unknown ticker" (an informational outcome)
// from transport, HTTP, and response-shape failures (error states).

// NetworkError indicates a transport-level failure: no response was
// obtained at all. Callers must treat it identically to a non-200 status.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError indicates a response was obtained with a non-200 status.
type HTTPError struct {
	URL        string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status %d fetching %s", e.StatusCode, e.URL)
}

// MalformedResponseError indicates a 200 response whose body is missing
// the expected structure.
type MalformedResponseError struct {
	URL    string
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %s", e.URL, e.Reason)
}

// UnknownTickerError indicates the registry's ticker table has no entry
// for the requested symbol. It is not a failure of the network layer;
// consumers render it as an informational state.
type UnknownTickerError struct {
	Ticker string
}

func (e *UnknownTickerError) Error() string {
	return fmt.Sprintf("no company found for ticker %q", e.Ticker)
}
