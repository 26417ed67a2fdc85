package sonarr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// lookupResult models the subset of the Sonarr series lookup payload we read.
type lookupResult struct {
	Title            string `json:"title"`
	OriginalLanguage struct {
		Name string `json:"name"`
	} `json:"originalLanguage"`
}

// Client provides access to the Sonarr v3 API series lookup.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout bounds each lookup request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// New creates a Sonarr client.
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("sonarr base url required")
	}
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("sonarr api key required")
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// OriginalLanguage looks up the series matching term and returns its
// original language name (e.g. "Japanese"). Returns "" without error when
// Sonarr has no match or the match carries no original language.
func (c *Client) OriginalLanguage(ctx context.Context, term string) (string, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return "", errors.New("lookup term must not be empty")
	}

	endpoint, err := url.Parse(c.baseURL + "/api/v3/series/lookup")
	if err != nil {
		return "", fmt.Errorf("parse sonarr url: %w", err)
	}
	params := url.Values{}
	params.Set("term", term)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sonarr lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("sonarr lookup: unexpected status %d", resp.StatusCode)
	}

	var results []lookupResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return "", fmt.Errorf("decode sonarr response: %w", err)
	}
	if len(results) == 0 {
		return "", nil
	}
	return strings.TrimSpace(results[0].OriginalLanguage.Name), nil
}
