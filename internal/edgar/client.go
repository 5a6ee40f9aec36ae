/*
Package edgar provides a client for the EDGAR full-text filing search API and
best-effort retrieval of filing document text from the regulator's archives.
*/
package edgar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shanehull/edgarscan/internal/types"
)

const (
	defaultSearchURL   = "https://api.sec-api.io"
	defaultArchivesURL = "https://www.sec.gov/Archives/edgar/data"

	// EDGAR rejects requests without an identifying User-Agent.
	userAgent = "edgarscan/1.0 (morning scan)"

	pageSize = 50
)

// Client talks to the filing search API and the EDGAR archives.
type Client struct {
	apiKey      string
	searchURL   string
	archivesURL string
	httpClient  *http.Client
}

// New creates a client with the given search API key.
func New(apiKey string) *Client {
	return &Client{
		apiKey:      apiKey,
		searchURL:   defaultSearchURL,
		archivesURL: defaultArchivesURL,
		httpClient:  &http.Client{Timeout: 60 * time.Second},
	}
}

type searchRequest struct {
	Query string                         `json:"query"`
	From  string                         `json:"from"`
	Size  string                         `json:"size"`
	Sort  []map[string]map[string]string `json:"sort"`
}

type searchResponse struct {
	Filings []types.Filing `json:"filings"`
}

// Search returns filings matching the form-type predicate, filed on the given
// UTC calendar day (inclusive), newest first, capped at one page.
func (c *Client) Search(ctx context.Context, formQuery string, day string) ([]types.Filing, error) {
	req := searchRequest{
		Query: fmt.Sprintf("%s AND filedAt:[%sT00:00:00 TO %sT23:59:59]", formQuery, day, day),
		From:  "0",
		Size:  fmt.Sprintf("%d", pageSize),
		Sort:  []map[string]map[string]string{{"filedAt": {"order": "desc"}}},
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal search query: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.searchURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("filing search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("filing search returned status %d", resp.StatusCode)
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	return decoded.Filings, nil
}
