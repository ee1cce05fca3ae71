// Package dictionary queries a Cambridge-style dictionary HTTP API for
// English word definitions. The service returns one JSON document per
// word with senses grouped by part of speech.
package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
)

const defaultTimeout = 30 * time.Second

// Example is a usage example attached to a dictionary sense.
type Example struct {
	Text string `json:"text"`
}

// Entry is one dictionary sense with its part of speech.
type Entry struct {
	POS      string    `json:"pos"`
	Text     string    `json:"text"`
	Examples []Example `json:"example"`
}

// Result is the dictionary response for a single word.
type Result struct {
	Definition []Entry `json:"definition"`
}

// Lookuper looks up a single word.
type Lookuper interface {
	Lookup(ctx context.Context, word string) (*Result, error)
}

// StatusError reports a non-OK dictionary response, typically a 404 for
// a word the service does not know.
type StatusError struct {
	Word       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("dictionary lookup for %q returned status %d", e.Word, e.StatusCode)
}

// Client queries the dictionary API over HTTP. A circuit breaker guards
// the endpoint: five consecutive transport or server errors open it and
// lookups fail immediately for thirty seconds before being retried.
// Word-specific responses such as a 404 for an unknown word never open
// the breaker.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

var _ Lookuper = (*Client)(nil)

// NewClient creates a dictionary client. The word is appended to baseURL
// for each lookup, so baseURL normally ends with a path separator.
func NewClient(baseURL string) *Client {
	if baseURL != "" && baseURL[len(baseURL)-1] != '/' {
		baseURL += "/"
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "dictionary",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			IsSuccessful: func(err error) bool {
				if err == nil {
					return true
				}
				// A 4xx answer is about the word, not the service.
				// Only transport failures and 5xx count toward
				// opening the breaker.
				var statusErr *StatusError
				return errors.As(err, &statusErr) && statusErr.StatusCode < http.StatusInternalServerError
			},
		}),
	}
}

// Lookup fetches the definitions of word. It returns a *StatusError for
// non-OK responses and gobreaker.ErrOpenState while the breaker is open.
func (c *Client) Lookup(ctx context.Context, word string) (*Result, error) {
	value, err := c.breaker.Execute(func() (interface{}, error) {
		return c.lookup(ctx, word)
	})
	if err != nil {
		return nil, err
	}
	return value.(*Result), nil
}

func (c *Client) lookup(ctx context.Context, word string) (*Result, error) {
	endpoint := c.baseURL + url.PathEscape(word)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build dictionary request for %q: %w", word, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dictionary request for %q failed: %w", word, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Word: word, StatusCode: resp.StatusCode}
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode dictionary response for %q: %w", word, err)
	}
	return &result, nil
}
