package digest

import (
	"strings"

	"github.com/shanehull/edgarscan/internal/types"
)

// extractor pulls one candidate value out of a filing. Resolution tries an
// ordered list of extractors and keeps the first non-empty result.
type extractor func(types.Filing) string

func firstNonEmpty(filing types.Filing, extractors ...extractor) string {
	for _, ex := range extractors {
		if v := strings.TrimSpace(ex(filing)); v != "" {
			return v
		}
	}
	return ""
}

// ResolveTickers returns the deduplicated tickers referenced by a filing:
// every filer ticker in first-listed order, falling back to the top-level
// ticker when no filer carries one. A filing with no ticker data yields an
// empty list, not an error.
func ResolveTickers(filing types.Filing) []string {
	var tickers []string
	seen := make(map[string]bool)

	for _, filer := range filing.Filers {
		t := strings.TrimSpace(filer.Ticker)
		if t != "" && !seen[t] {
			seen[t] = true
			tickers = append(tickers, t)
		}
	}

	if len(tickers) == 0 {
		if t := strings.TrimSpace(filing.Ticker); t != "" {
			tickers = append(tickers, t)
		}
	}

	return tickers
}

// ResolveCompany returns a display name for the filing's subject company:
// top-level name, then first issuer, then first filer, then "n/a".
func ResolveCompany(filing types.Filing) string {
	name := firstNonEmpty(filing,
		func(f types.Filing) string { return f.CompanyName },
		func(f types.Filing) string {
			if len(f.Issuers) > 0 {
				return f.Issuers[0].CompanyName
			}
			return ""
		},
		func(f types.Filing) string {
			if len(f.Filers) > 0 {
				return f.Filers[0].CompanyName
			}
			return ""
		},
	)
	if name == "" {
		return "n/a"
	}
	return name
}

// Headline returns the filing's description, its first item, or a fixed
// placeholder.
func Headline(filing types.Filing) string {
	headline := firstNonEmpty(filing,
		func(f types.Filing) string { return f.Description },
		func(f types.Filing) string {
			if len(f.Items) > 0 {
				return f.Items[0]
			}
			return ""
		},
	)
	if headline == "" {
		return "No headline"
	}
	return headline
}

// filedDate reduces a filed timestamp to its calendar-day prefix.
func filedDate(filedAt string) string {
	if len(filedAt) >= 10 {
		return filedAt[:10]
	}
	return filedAt
}
