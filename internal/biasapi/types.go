package biasapi

import "biaslab/internal/scoring"

// Order selects the creation-time sort direction for narrative listings.
// Sorting happens server-side; clients must not re-sort the response.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Article is the service's stored record of an analyzed article. The client
// holds read-only copies; the service owns the data.
type Article struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Outlet    string           `json:"outlet"`
	URL       string           `json:"url,omitempty"`
	Text      string           `json:"text,omitempty"`
	Summary   string           `json:"summary,omitempty"`
	Scores    scoring.ScoreSet `json:"scores,omitempty"`
	CreatedAt string           `json:"created_at,omitempty"`
}

// AnalyzeRequest is the analysis submission payload. Exactly one of URL or
// Text carries the article content.
type AnalyzeRequest struct {
	Title  string `json:"title"`
	Outlet string `json:"outlet"`
	URL    string `json:"url,omitempty"`
	Text   string `json:"text,omitempty"`
}

// Overall is the service-computed bias index. Band may be absent, in which
// case the shared classifier derives it from the value.
type Overall struct {
	Value float64      `json:"value"`
	Band  scoring.Band `json:"band,omitempty"`
}

// DisplayBand returns the band to render: the service's band when supplied,
// otherwise the classification of the value. A nil overall displays as low.
func (o *Overall) DisplayBand() scoring.Band {
	if o == nil {
		return scoring.BandLow
	}
	if o.Band != "" {
		return o.Band
	}
	return scoring.Classify(o.Value)
}

// Source is a supporting reference attached to a claim.
type Source struct {
	Title string `json:"title,omitempty"`
	URL   string `json:"url,omitempty"`
}

// Claim is an extracted factual assertion. Claims are produced once per
// analysis and never mutated afterward.
type Claim struct {
	Text       string   `json:"text"`
	Rationale  string   `json:"rationale,omitempty"`
	Confidence float64  `json:"confidence"`
	Sources    []Source `json:"sources,omitempty"`
}

// AnalysisResult is the response to an analysis submission.
type AnalysisResult struct {
	ID      string           `json:"id"`
	Summary string           `json:"summary,omitempty"`
	Scores  scoring.ScoreSet `json:"scores,omitempty"`
	Overall *Overall         `json:"overall,omitempty"`
	Claims  []Claim          `json:"claims,omitempty"`
}

// HighlightSpan is the payload of one highlight. Start and End are character
// offsets into the analyzed text; text-mode submissions may omit them, so a
// zero range means "no reliable offsets".
type HighlightSpan struct {
	Text       string   `json:"text"`
	Start      int      `json:"start,omitempty"`
	End        int      `json:"end,omitempty"`
	Reason     string   `json:"reason,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// Highlight is an exact-phrase span tagged with the bias dimension it
// exemplifies. Highlights reference their article by id.
type Highlight struct {
	ID        string        `json:"id,omitempty"`
	ArticleID string        `json:"article_id,omitempty"`
	Dimension string        `json:"dimension"`
	Data      HighlightSpan `json:"data"`
}

// NarrativePayload carries a narrative's article membership. ArticleIDs is an
// explicit join list in discovery order; duplicates are not expected.
type NarrativePayload struct {
	ArticleIDs []string `json:"article_ids"`
	Summary    string   `json:"summary,omitempty"`
}

// Narrative is a cluster grouping articles believed to cover the same story.
type Narrative struct {
	ID        string           `json:"id"`
	Label     string           `json:"label"`
	CreatedAt string           `json:"created_at,omitempty"`
	Data      NarrativePayload `json:"data"`
}
