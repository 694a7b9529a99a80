package session

import (
	"errors"
	"fmt"
	"strings"

	"biaslab/internal/biasapi"
	"biaslab/internal/narratives"
	"biaslab/internal/scoring"
)

// State identifies the orchestrator's position in the submission lifecycle.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// ErrSubmissionInFlight is returned when a submission is attempted while an
// earlier one for this session has not finished.
var ErrSubmissionInFlight = errors.New("an analysis is already in progress")

// ValidationError reports a submission rejected locally, before any request
// was issued.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// ValidateSubmission checks required fields: title and outlet must be
// non-empty, and the content must arrive as exactly one of a source URL or
// pasted text.
func ValidateSubmission(req biasapi.AnalyzeRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return &ValidationError{Field: "title", Reason: "is required"}
	}
	if strings.TrimSpace(req.Outlet) == "" {
		return &ValidationError{Field: "outlet", Reason: "is required"}
	}
	hasURL := strings.TrimSpace(req.URL) != ""
	hasText := strings.TrimSpace(req.Text) != ""
	switch {
	case !hasURL && !hasText:
		return &ValidationError{Field: "submission", Reason: "needs a source url or pasted text"}
	case hasURL && hasText:
		return &ValidationError{Field: "submission", Reason: "takes either a source url or pasted text, not both"}
	}
	return nil
}

// View is a snapshot of everything the panels render. Collections are
// replaced wholesale on refetch and never mutated in place, so snapshots may
// share backing arrays safely.
type View struct {
	State   State  `json:"state"`
	Subject string `json:"subject,omitempty"`

	Summary string           `json:"summary,omitempty"`
	Scores  scoring.ScoreSet `json:"scores,omitempty"`
	Overall *biasapi.Overall `json:"overall,omitempty"`
	Claims  []biasapi.Claim  `json:"claims,omitempty"`

	Highlights    []biasapi.Highlight `json:"highlights,omitempty"`
	HighlightsErr string              `json:"highlights_error,omitempty"`

	Narratives    []biasapi.Narrative `json:"narratives,omitempty"`
	NarrativesErr string              `json:"narratives_error,omitempty"`

	Articles    []biasapi.Article `json:"articles,omitempty"`
	ArticlesErr string            `json:"articles_error,omitempty"`

	DetailErr string `json:"detail_error,omitempty"`
	LastError string `json:"last_error,omitempty"`
}

// DisplayOverall returns the overall index for rendering, aggregating from
// per-dimension scores when the service did not supply one.
func (v View) DisplayOverall() biasapi.Overall {
	if v.Overall != nil {
		return *v.Overall
	}
	idx := scoring.Aggregate(v.Scores)
	return biasapi.Overall{Value: idx.Value, Band: idx.Band}
}

// ArticleIndex builds the id lookup used to resolve narrative membership
// against the cached article list.
func (v View) ArticleIndex() map[string]biasapi.Article {
	return narratives.IndexByID(v.Articles)
}
