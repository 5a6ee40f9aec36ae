/*
Package market provides a daily price history client and a coarse volatility
sentiment estimate derived from it.
*/
package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultChartURL = "https://query1.finance.yahoo.com/v8/finance/chart"

// Client fetches trailing daily price history for a ticker.
type Client struct {
	chartURL   string
	httpClient *http.Client
}

// New creates a market data client.
func New() *Client {
	return &Client{
		chartURL:   defaultChartURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// DailyCloses returns one year of daily closing prices for the ticker, oldest
// first. Days without a close (halts, partial sessions) are skipped.
func (c *Client) DailyCloses(ctx context.Context, ticker string) ([]float64, error) {
	url := fmt.Sprintf("%s/%s?range=1y&interval=1d", c.chartURL, ticker)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build history request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("history fetch for %s: %w", ticker, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("history fetch for %s returned status %d", ticker, resp.StatusCode)
	}

	var decoded chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode history for %s: %w", ticker, err)
	}

	if decoded.Chart.Error != nil {
		return nil, fmt.Errorf("history lookup for %s: %s", ticker, decoded.Chart.Error.Description)
	}
	if len(decoded.Chart.Result) == 0 || len(decoded.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no history returned for %s", ticker)
	}

	raw := decoded.Chart.Result[0].Indicators.Quote[0].Close
	closes := make([]float64, 0, len(raw))
	for _, v := range raw {
		if v != nil {
			closes = append(closes, *v)
		}
	}
	return closes, nil
}

// Estimate maps a ticker to a coarse magnitude label from its trailing-year
// volatility. The caller is expected to treat any error as "unclear" rather
// than failing the filing it came from.
func (c *Client) Estimate(ctx context.Context, ticker string) (string, error) {
	closes, err := c.DailyCloses(ctx, ticker)
	if err != nil {
		return "", err
	}
	return Sentiment(closes)
}
