package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/scout-plus/scout-ai/src/webclient"
)

const (
	ddgEndpoint = "https://api.duckduckgo.com/"

	// queryPrefix scopes every lookup to the Scouting domain.
	queryPrefix = "Scouts BSA "

	lookupTimeout = 6 * time.Second
)

// DuckDuckGo looks up the Instant Answer abstract for a query.
type DuckDuckGo struct {
	endpoint   string
	httpClient *http.Client
}

func NewDuckDuckGo() *DuckDuckGo {
	return &DuckDuckGo{
		endpoint:   ddgEndpoint,
		httpClient: webclient.NewDefault(lookupTimeout),
	}
}

// NewDuckDuckGoWithClient builds a lookup client against a custom endpoint
// and HTTP client. Useful for overriding the default timeout.
func NewDuckDuckGoWithClient(endpoint string, client *http.Client) *DuckDuckGo {
	return &DuckDuckGo{endpoint: endpoint, httpClient: client}
}

// Lookup issues one Instant Answer request and returns the abstract text,
// which may be empty when DuckDuckGo has no direct answer. No retries.
func (d *DuckDuckGo) Lookup(ctx context.Context, query string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.endpoint, nil)
	if err != nil {
		return "", err
	}

	q := req.URL.Query()
	q.Set("q", queryPrefix+query)
	q.Set("format", "json")
	q.Set("no_redirect", "1")
	q.Set("no_html", "1")
	req.URL.RawQuery = q.Encode()

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("duckduckgo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("duckduckgo: status %d", resp.StatusCode)
	}

	var result struct {
		AbstractText string `json:"AbstractText"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("duckduckgo: decode: %w", err)
	}

	return result.AbstractText, nil
}
