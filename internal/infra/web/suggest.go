// Package web fetches task ideas from the network.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/runoshun/tasktracker/internal/domain"
)

// Ensure SuggestionClient implements domain.SuggestionSource.
var _ domain.SuggestionSource = (*SuggestionClient)(nil)

// ErrNoSuggestion is returned when the endpoint answers without a usable title.
var ErrNoSuggestion = errors.New("could not fetch sample task")

// maxBodySize caps how much of a response is read.
const maxBodySize = 4 << 20

// NewHTTPClient returns a client with the given timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// SuggestionClient fetches a todo item from a JSON endpoint and returns its title.
type SuggestionClient struct {
	client *http.Client
	url    string
}

// NewSuggestionClient creates a client for url. A nil client means http.DefaultClient.
func NewSuggestionClient(client *http.Client, url string) *SuggestionClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &SuggestionClient{client: client, url: url}
}

type todo struct {
	Title string `json:"title"`
}

// Suggest performs the request. Only a 200 response with a non-empty title succeeds.
func (c *SuggestionClient) Suggest(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch suggestion: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrNoSuggestion, resp.StatusCode)
	}

	var item todo
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&item); err != nil {
		return "", fmt.Errorf("decode suggestion: %w", err)
	}
	title := strings.TrimSpace(item.Title)
	if title == "" {
		return "", fmt.Errorf("%w: empty title", ErrNoSuggestion)
	}
	return title, nil
}
