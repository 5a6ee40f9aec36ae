package types

// Entity is a filer or issuer sub-record attached to a filing. Every field is
// optional; absent values are empty strings.
type Entity struct {
	CompanyName string `json:"companyName"`
	Ticker      string `json:"ticker"`
	CIK         string `json:"cik"`
}

// Filing is one raw result from the filing search API. Immutable once fetched.
type Filing struct {
	AccessionNo string   `json:"accessionNo"`
	FormType    string   `json:"formType"`
	FiledAt     string   `json:"filedAt"`
	Description string   `json:"description"`
	Items       []string `json:"items"`
	CompanyName string   `json:"companyName"`
	Ticker      string   `json:"ticker"`
	CIK         string   `json:"cik"`
	DocumentURL string   `json:"linkToFilingDetails"`
	Filers      []Entity `json:"filers"`
	Issuers     []Entity `json:"issuers"`
}

// FallbackReason tags why an enrichment stage produced a placeholder instead
// of real data.
type FallbackReason string

const (
	FallbackNone              FallbackReason = ""
	FallbackNoTicker          FallbackReason = "no ticker resolved"
	FallbackNoHistory         FallbackReason = "history unavailable"
	FallbackNoText            FallbackReason = "filing text unretrievable"
	FallbackSummarizerFailure FallbackReason = "summarizer failed"
)

// Bullet is one enriched filing, ready for formatting. Ephemeral; it exists
// only while the report is being assembled.
type Bullet struct {
	Headline  string
	Company   string
	FormLabel string
	FiledDate string
	Tickers   []string
	Summary   string
	Sentiment string
	Advisory  string

	SentimentFallback FallbackReason
	SummaryFallback   FallbackReason
}

// Report is the assembled digest for one run.
type Report struct {
	Date string
	Body string
}
