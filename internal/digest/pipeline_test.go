package digest

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shanehull/edgarscan/internal/types"
)

type stubSentiment struct {
	label string
	err   error
	calls int
}

func (s *stubSentiment) Estimate(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.label, s.err
}

type stubText struct {
	text string
}

func (s *stubText) FilingText(_ context.Context, _ types.Filing) string {
	return s.text
}

type stubSummarizer struct {
	summary string
	err     error
	calls   int
}

func (s *stubSummarizer) Summarize(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.summary, s.err
}

func TestEnrichHappyPath(t *testing.T) {
	sentiment := &stubSentiment{label: "Moderate move expected"}
	summarizer := &stubSummarizer{summary: "Acme changed auditors. This raises governance questions."}
	p := NewPipeline(sentiment, &stubText{text: "some filing text"}, summarizer)

	filing := types.Filing{
		CompanyName: "Acme Co",
		Ticker:      "ABC",
		FiledAt:     "2026-08-22T06:01:00-04:00",
		Description: "Departure of auditors",
	}

	bullet := p.Enrich(context.Background(), filing, "8-K")

	assert.Equal(t, "Departure of auditors", bullet.Headline)
	assert.Equal(t, "Acme Co", bullet.Company)
	assert.Equal(t, "8-K", bullet.FormLabel)
	assert.Equal(t, "2026-08-22", bullet.FiledDate)
	assert.Equal(t, []string{"ABC"}, bullet.Tickers)
	assert.Equal(t, "Moderate move expected", bullet.Sentiment)
	assert.Equal(t, types.FallbackNone, bullet.SentimentFallback)
	assert.Equal(t, summarizer.summary, bullet.Summary)
	assert.Equal(t, types.FallbackNone, bullet.SummaryFallback)
}

func TestEnrichNoTickerSkipsSentiment(t *testing.T) {
	sentiment := &stubSentiment{label: "Large move expected"}
	p := NewPipeline(sentiment, &stubText{text: "text"}, &stubSummarizer{summary: "ok"})

	bullet := p.Enrich(context.Background(), types.Filing{}, "DEF 14A")

	assert.Equal(t, "n/a", bullet.Sentiment)
	assert.Equal(t, types.FallbackNoTicker, bullet.SentimentFallback)
	assert.Equal(t, 0, sentiment.calls)
}

func TestEnrichSentimentFailureFallsBack(t *testing.T) {
	sentiment := &stubSentiment{err: fmt.Errorf("no history returned for ABC")}
	p := NewPipeline(sentiment, &stubText{text: "text"}, &stubSummarizer{summary: "ok"})

	bullet := p.Enrich(context.Background(), types.Filing{Ticker: "ABC"}, "8-K")

	assert.Equal(t, "Direction unclear", bullet.Sentiment)
	assert.Equal(t, types.FallbackNoHistory, bullet.SentimentFallback)
	assert.Equal(t, 1, sentiment.calls)
}

func TestEnrichEmptyTextSkipsSummarizer(t *testing.T) {
	summarizer := &stubSummarizer{summary: "should never be used"}
	p := NewPipeline(&stubSentiment{label: "Small move expected"}, &stubText{text: ""}, summarizer)

	bullet := p.Enrich(context.Background(), types.Filing{Ticker: "ABC"}, "8-K")

	assert.Equal(t, "Unable to retrieve filing text.", bullet.Summary)
	assert.Equal(t, types.FallbackNoText, bullet.SummaryFallback)
	assert.Equal(t, 0, summarizer.calls)
}

func TestEnrichSummarizerFailureFallsBack(t *testing.T) {
	summarizer := &stubSummarizer{err: fmt.Errorf("quota exceeded")}
	p := NewPipeline(&stubSentiment{label: "Small move expected"}, &stubText{text: "text"}, summarizer)

	bullet := p.Enrich(context.Background(), types.Filing{Ticker: "ABC"}, "8-K")

	assert.Equal(t, "Summary unavailable (quota exceeded)", bullet.Summary)
	assert.Equal(t, types.FallbackSummarizerFailure, bullet.SummaryFallback)
}
