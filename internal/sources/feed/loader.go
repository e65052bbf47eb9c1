// Package feed fetches the synthetic disaster news feed and maps it to
// domain events. The feed is decorative: fetch failures are recoverable
// and events are never persisted.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Loader fetches and parses the remote feed endpoint.
type Loader struct {
	url    string
	client *http.Client
}

// NewLoader creates a loader for the given feed URL.
func NewLoader(url string, timeout time.Duration) *Loader {
	return &Loader{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Load fetches the feed and returns its raw wire events.
func (l *Loader) Load(ctx context.Context) ([]wireEvent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed endpoint returned %s", resp.Status)
	}

	var events []wireEvent
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("failed to parse feed json: %w", err)
	}
	return events, nil
}
