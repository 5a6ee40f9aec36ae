package edgar

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(srv *httptest.Server) *Client {
	c := New("test-key")
	c.searchURL = srv.URL
	c.archivesURL = srv.URL
	c.httpClient = srv.Client()
	return c
}

func TestSearch(t *testing.T) {
	var gotBody map[string]any
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"filings": [
				{
					"accessionNo": "0001214659-26-001234",
					"formType": "8-K",
					"filedAt": "2026-08-22T06:01:00-04:00",
					"description": "Departure of directors",
					"companyName": "Acme Co",
					"ticker": "ABC",
					"cik": "0000320193",
					"filers": [{"companyName": "Acme Co", "ticker": "ABC", "cik": "0000320193"}]
				}
			]
		}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)

	filings, err := c.Search(context.Background(), `formType:"8-K"`, "2026-08-22")
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotAuth)
	assert.Equal(t, `formType:"8-K" AND filedAt:[2026-08-22T00:00:00 TO 2026-08-22T23:59:59]`, gotBody["query"])
	assert.Equal(t, "0", gotBody["from"])
	assert.Equal(t, "50", gotBody["size"])

	require.Len(t, filings, 1)
	f := filings[0]
	assert.Equal(t, "8-K", f.FormType)
	assert.Equal(t, "Acme Co", f.CompanyName)
	assert.Equal(t, "0000320193", f.CIK)
	require.Len(t, f.Filers, 1)
	assert.Equal(t, "ABC", f.Filers[0].Ticker)
}

func TestSearchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestClient(srv)

	_, err := c.Search(context.Background(), `formType:"8-K"`, "2026-08-22")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
