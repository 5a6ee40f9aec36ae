package digest

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/shanehull/edgarscan/internal/types"
)

// Category pairs a report section label with its search predicate.
type Category struct {
	Label string
	Query string
}

// Categories lists the scanned form types in report order.
var Categories = []Category{
	{Label: "8-K", Query: `formType:"8-K"`},
	{Label: "13D/13G", Query: `(formType:"SC 13D" OR formType:"SC 13G")`},
	{Label: "DEF 14A", Query: `formType:"DEF 14A"`},
}

// Assembler runs the scan for every category and concatenates the bullets
// into one report.
type Assembler struct {
	source   FilingSource
	pipeline *Pipeline
}

// NewAssembler wires the assembler to its filing source and pipeline.
func NewAssembler(source FilingSource, pipeline *Pipeline) *Assembler {
	return &Assembler{source: source, pipeline: pipeline}
}

// Build produces the report for the given UTC calendar day. A search failure
// for any category is fatal to the run; per-filing enrichment failures are
// absorbed by the pipeline.
func (a *Assembler) Build(ctx context.Context, day string) (types.Report, error) {
	var bullets []string

	for _, cat := range Categories {
		filings, err := a.source.Search(ctx, cat.Query, day)
		if err != nil {
			return types.Report{}, fmt.Errorf("search for %s filings failed: %w", cat.Label, err)
		}

		log.Printf("Found %d %s filings for %s", len(filings), cat.Label, day)

		for _, filing := range filings {
			bullet := a.pipeline.Enrich(ctx, filing, cat.Label)
			bullets = append(bullets, FormatBullet(bullet))
		}
	}

	report := types.Report{Date: day}
	if len(bullets) == 0 {
		report.Body = fmt.Sprintf("No 8-K, 13D/13G, or DEF 14A filings found for %s.", day)
		return report, nil
	}

	report.Body = fmt.Sprintf("EDGAR scan for %s:\n\n", day) + strings.Join(bullets, "\n")
	return report, nil
}
