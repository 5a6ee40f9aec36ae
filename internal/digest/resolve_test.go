package digest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shanehull/edgarscan/internal/types"
)

func TestResolveTickersEmpty(t *testing.T) {
	filing := types.Filing{FormType: "8-K"}

	tickers := ResolveTickers(filing)

	assert.Empty(t, tickers)
}

func TestResolveTickersFromFilers(t *testing.T) {
	filing := types.Filing{
		Ticker: "TOP",
		Filers: []types.Entity{
			{Ticker: "ABC"},
			{CompanyName: "No Ticker Co"},
			{Ticker: "XYZ"},
			{Ticker: "ABC"},
		},
	}

	tickers := ResolveTickers(filing)

	assert.Equal(t, []string{"ABC", "XYZ"}, tickers)
}

func TestResolveTickersTopLevelFallback(t *testing.T) {
	filing := types.Filing{
		Ticker: "TOP",
		Filers: []types.Entity{{CompanyName: "No Ticker Co"}},
	}

	assert.Equal(t, []string{"TOP"}, ResolveTickers(filing))
}

func TestResolveCompanyFallbackChain(t *testing.T) {
	issuer := types.Entity{CompanyName: "Issuer Inc"}
	filer := types.Entity{CompanyName: "Filer LLC"}

	tests := []struct {
		name   string
		filing types.Filing
		want   string
	}{
		{"top level wins", types.Filing{CompanyName: "Acme Co", Issuers: []types.Entity{issuer}, Filers: []types.Entity{filer}}, "Acme Co"},
		{"first issuer next", types.Filing{Issuers: []types.Entity{issuer}, Filers: []types.Entity{filer}}, "Issuer Inc"},
		{"first filer next", types.Filing{Filers: []types.Entity{filer}}, "Filer LLC"},
		{"placeholder last", types.Filing{}, "n/a"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveCompany(tc.filing))
		})
	}
}

func TestHeadline(t *testing.T) {
	assert.Equal(t, "Item 2.02 results", Headline(types.Filing{Description: "Item 2.02 results"}))
	assert.Equal(t, "Material event", Headline(types.Filing{Items: []string{"Material event", "other"}}))
	assert.Equal(t, "No headline", Headline(types.Filing{}))
}

func TestTruncateHeadline(t *testing.T) {
	short := "A short headline"
	assert.Equal(t, short, truncateHeadline(short))

	exact := strings.Repeat("x", 120)
	assert.Equal(t, exact, truncateHeadline(exact))

	long := strings.Repeat("y", 130)
	got := truncateHeadline(long)
	assert.Equal(t, strings.Repeat("y", 120)+"…", got)
}

func TestFiledDate(t *testing.T) {
	assert.Equal(t, "2026-08-22", filedDate("2026-08-22T09:30:12-04:00"))
	assert.Equal(t, "2026-08", filedDate("2026-08"))
}
