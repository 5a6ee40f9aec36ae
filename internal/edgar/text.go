package edgar

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/shanehull/edgarscan/internal/types"
)

// textCap bounds how much stripped filing text is handed to the summarizer.
const textCap = 2000

var whitespaceRE = regexp.MustCompile(`[\s\x{00A0}]+`)

// FilingText fetches and cleans the text of one filing document. It prefers a
// direct document URL; otherwise it builds an archive index URL from the
// filing's CIK and accession number and follows the first HTML document link
// on the index page. Any failure returns an empty string so a bad document
// never aborts the filing it belongs to.
func (c *Client) FilingText(ctx context.Context, filing types.Filing) string {
	docURL := filing.DocumentURL

	if docURL == "" {
		indexURL, err := c.indexURL(filing)
		if err != nil {
			log.Printf("Warning: cannot build index URL for %s: %v", filing.AccessionNo, err)
			return ""
		}

		docURL, err = c.findDocumentLink(ctx, indexURL)
		if err != nil {
			log.Printf("Warning: no document link for %s: %v", filing.AccessionNo, err)
			return ""
		}
	}

	raw, err := c.fetch(ctx, docURL)
	if err != nil {
		log.Printf("Warning: failed to fetch filing document %s: %v", docURL, err)
		return ""
	}

	text := stripMarkup(raw)
	if len(text) > textCap {
		text = text[:textCap]
	}
	return text
}

// indexURL builds the archive index page URL for a filing without a direct
// document link. The CIK is resolved through the same fallback chain as the
// display fields: top-level record, then first issuer, then first filer.
func (c *Client) indexURL(filing types.Filing) (string, error) {
	cik := filing.CIK
	if cik == "" && len(filing.Issuers) > 0 {
		cik = filing.Issuers[0].CIK
	}
	if cik == "" && len(filing.Filers) > 0 {
		cik = filing.Filers[0].CIK
	}
	if cik == "" || filing.AccessionNo == "" {
		return "", fmt.Errorf("missing CIK or accession number")
	}

	return fmt.Sprintf("%s/%s/%s/", c.archivesURL, normalizeCIK(cik), normalizeAccession(filing.AccessionNo)), nil
}

// findDocumentLink fetches the index page and returns the absolute URL of the
// first link that looks like an HTML filing document.
func (c *Client) findDocumentLink(ctx context.Context, indexURL string) (string, error) {
	body, err := c.fetch(ctx, indexURL)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("parse index page: %w", err)
	}

	base, err := url.Parse(indexURL)
	if err != nil {
		return "", fmt.Errorf("parse index URL: %w", err)
	}

	var docLink string
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		lower := strings.ToLower(href)
		if strings.HasSuffix(lower, ".htm") || strings.HasSuffix(lower, ".html") {
			ref, err := url.Parse(href)
			if err != nil {
				return true
			}
			docLink = base.ResolveReference(ref).String()
			return false
		}
		return true
	})

	if docLink == "" {
		return "", fmt.Errorf("no HTML document link on index page")
	}
	return docLink, nil
}

func (c *Client) fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", rawURL, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("received status %d from %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body from %s: %w", rawURL, err)
	}
	return string(body), nil
}

// stripMarkup drops tags, scripts and styles from an HTML document and
// collapses runs of whitespace to single spaces.
func stripMarkup(raw string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(raw))

	var sb strings.Builder
	skipDepth := 0

	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			return strings.TrimSpace(whitespaceRE.ReplaceAllString(sb.String(), " "))
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if tag := string(name); tag == "script" || tag == "style" {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if tag := string(name); (tag == "script" || tag == "style") && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				sb.Write(tokenizer.Text())
				sb.WriteByte(' ')
			}
		}
	}
}

// normalizeCIK strips leading zeros; archive paths use the bare number.
func normalizeCIK(cik string) string {
	trimmed := strings.TrimLeft(cik, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// normalizeAccession strips the dash separators from an accession number.
func normalizeAccession(accessionNo string) string {
	return strings.ReplaceAll(accessionNo, "-", "")
}
