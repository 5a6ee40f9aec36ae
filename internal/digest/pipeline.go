/*
Package digest turns raw filing records into an emailable bullet-point report.

The enrichment pipeline composes four best-effort lookups per filing — ticker
resolution, sentiment estimate, document text retrieval and summarization.
Each stage degrades to a placeholder and records why, so one bad filing or one
flaky upstream never aborts the run.
*/
package digest

import (
	"context"
	"fmt"
	"log"

	"github.com/shanehull/edgarscan/internal/types"
)

// Placeholder values for degraded enrichment stages.
const (
	noTickerSentiment = "n/a"
	unclearSentiment  = "Direction unclear"
	unretrievableText = "Unable to retrieve filing text."
)

// FilingSource queries the filing search API for one form-type category on
// one calendar day.
type FilingSource interface {
	Search(ctx context.Context, formQuery string, day string) ([]types.Filing, error)
}

// SentimentSource maps a ticker to a coarse directional/magnitude label.
type SentimentSource interface {
	Estimate(ctx context.Context, ticker string) (string, error)
}

// TextSource retrieves cleaned filing document text; an empty string means
// the text could not be retrieved.
type TextSource interface {
	FilingText(ctx context.Context, filing types.Filing) string
}

// Summarizer condenses filing text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Pipeline enriches one filing at a time.
type Pipeline struct {
	sentiment  SentimentSource
	text       TextSource
	summarizer Summarizer
}

// NewPipeline wires the pipeline's collaborators.
func NewPipeline(sentiment SentimentSource, text TextSource, summarizer Summarizer) *Pipeline {
	return &Pipeline{
		sentiment:  sentiment,
		text:       text,
		summarizer: summarizer,
	}
}

// Enrich builds one bullet from a raw filing. It never returns an error;
// stages that fail leave a placeholder and a fallback reason on the bullet.
func (p *Pipeline) Enrich(ctx context.Context, filing types.Filing, formLabel string) types.Bullet {
	bullet := types.Bullet{
		Headline:  Headline(filing),
		Company:   ResolveCompany(filing),
		FormLabel: formLabel,
		FiledDate: filedDate(filing.FiledAt),
		Tickers:   ResolveTickers(filing),
		Advisory:  advisoryFor(formLabel),
	}

	bullet.Sentiment, bullet.SentimentFallback = p.estimateSentiment(ctx, bullet.Tickers)
	bullet.Summary, bullet.SummaryFallback = p.summarize(ctx, filing)

	return bullet
}

// estimateSentiment runs the sentiment stage against the first resolved
// ticker, or skips it entirely when none resolved.
func (p *Pipeline) estimateSentiment(ctx context.Context, tickers []string) (string, types.FallbackReason) {
	if len(tickers) == 0 {
		return noTickerSentiment, types.FallbackNoTicker
	}

	label, err := p.sentiment.Estimate(ctx, tickers[0])
	if err != nil {
		log.Printf("Warning: sentiment estimate failed for %s: %v", tickers[0], err)
		return unclearSentiment, types.FallbackNoHistory
	}
	return label, types.FallbackNone
}

// summarize runs text retrieval and summarization. Empty retrieved text
// short-circuits to the fixed placeholder without touching the summarizer.
func (p *Pipeline) summarize(ctx context.Context, filing types.Filing) (string, types.FallbackReason) {
	text := p.text.FilingText(ctx, filing)
	if text == "" {
		return unretrievableText, types.FallbackNoText
	}

	summary, err := p.summarizer.Summarize(ctx, text)
	if err != nil {
		log.Printf("Warning: summarization failed for %s: %v", filing.AccessionNo, err)
		return fmt.Sprintf("Summary unavailable (%v)", err), types.FallbackSummarizerFailure
	}
	return summary, types.FallbackNone
}
