package digest

import (
	"fmt"
	"strings"

	"github.com/shanehull/edgarscan/internal/types"
)

// headlineLimit is the rendered headline length cap, in runes.
const headlineLimit = 120

var advisories = map[string]string{
	"8-K":     "Buy-write on elevated vol or sell ATM puts if bullish.",
	"13D/13G": "Watch for follow-through; synthetic long via ATM call or short put spread.",
	"DEF 14A": "Read proxy for M&A risk; buy straddles if binary events likely.",
}

const defaultAdvisory = "Consider short-dated ATM straddles for volatility, or directional equity/option plays if thesis is clear."

func advisoryFor(formLabel string) string {
	if a, ok := advisories[formLabel]; ok {
		return a
	}
	return defaultAdvisory
}

// truncateHeadline caps a headline at the rendered limit, marking the cut
// with an ellipsis.
func truncateHeadline(headline string) string {
	runes := []rune(headline)
	if len(runes) <= headlineLimit {
		return headline
	}
	return string(runes[:headlineLimit]) + "…"
}

// FormatBullet renders one enriched filing as a multi-line bullet block.
func FormatBullet(b types.Bullet) string {
	tickerStr := "n/a"
	if len(b.Tickers) > 0 {
		tickerStr = strings.Join(b.Tickers, ", ")
	}

	return fmt.Sprintf("• %s\n", truncateHeadline(b.Headline)) +
		fmt.Sprintf("  – Company: %s\n", b.Company) +
		fmt.Sprintf("  – SEC form: %s\n", b.FormLabel) +
		fmt.Sprintf("  – Filing date: %s\n", b.FiledDate) +
		fmt.Sprintf("  – Ticker(s): %s\n", tickerStr) +
		fmt.Sprintf("  – Summary: %s\n", b.Summary) +
		fmt.Sprintf("  – Likely 1-3 m move: %s\n", b.Sentiment) +
		fmt.Sprintf("  – Best way to invest: %s\n", b.Advisory)
}
