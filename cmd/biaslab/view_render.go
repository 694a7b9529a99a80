package main

import (
	"fmt"
	"io"
	"strings"

	"biaslab/internal/biasapi"
	"biaslab/internal/disclosure"
	"biaslab/internal/highlights"
	"biaslab/internal/narratives"
	"biaslab/internal/scoring"
	"biaslab/internal/session"
)

// renderView writes the full analysis view: summary, overall index, dimension
// bars, then the claims, highlights, and narratives panels. Claims and
// highlights honour their disclosure groups; collapsed entries show one line,
// expanded entries include rationale, sources, and span detail.
func renderView(w io.Writer, orch *session.Orchestrator, colorize bool) {
	view := orch.Snapshot()

	if view.Summary != "" {
		fmt.Fprintln(w, strings.TrimSpace(view.Summary))
		fmt.Fprintln(w)
	}

	renderOverall(w, view.DisplayOverall(), colorize)
	renderScores(w, view.Scores, colorize)

	renderClaims(w, view.Claims, orch.ClaimsDisclosure())
	renderHighlights(w, view.Highlights, view.HighlightsErr, orch.HighlightDisclosure())
	renderNarratives(w, view, colorize)

	if view.DetailErr != "" {
		fmt.Fprintf(w, "\nArticle detail unavailable: %s\n", view.DetailErr)
	}
	if view.ArticlesErr != "" {
		fmt.Fprintf(w, "Article list unavailable: %s\n", view.ArticlesErr)
	}
}

func renderClaims(w io.Writer, claims []biasapi.Claim, group *disclosure.Group) {
	if len(claims) == 0 {
		return
	}
	fmt.Fprintf(w, "\nClaims (%d):\n", len(claims))
	for i, claim := range claims {
		item := disclosure.NewItem(group)
		fmt.Fprintf(w, "  %d. %s (confidence %.0f%%)\n", i+1, strings.TrimSpace(claim.Text), claim.Confidence*100)
		if !item.Open(group) {
			continue
		}
		if claim.Rationale != "" {
			fmt.Fprintf(w, "     Rationale: %s\n", strings.TrimSpace(claim.Rationale))
		}
		for _, source := range claim.Sources {
			title := strings.TrimSpace(source.Title)
			if title == "" {
				title = source.URL
			}
			fmt.Fprintf(w, "     Source: %s", title)
			if source.URL != "" && title != source.URL {
				fmt.Fprintf(w, " <%s>", source.URL)
			}
			fmt.Fprintln(w)
		}
	}
}

func renderHighlights(w io.Writer, list []biasapi.Highlight, fetchErr string, group *disclosure.Group) {
	if fetchErr != "" {
		fmt.Fprintf(w, "\nHighlights unavailable: %s\n", fetchErr)
		return
	}
	if len(list) == 0 {
		return
	}
	fmt.Fprintf(w, "\nHighlights (%d):\n", len(list))
	for _, h := range list {
		item := disclosure.NewItem(group)
		fmt.Fprintf(w, "  [%s] %q\n", dimensionLabel(h.Dimension), strings.TrimSpace(h.Data.Text))
		if !item.Open(group) {
			continue
		}
		if start, end, ok := highlights.DisplayRange(h.Data); ok {
			fmt.Fprintf(w, "     Span: characters %d-%d\n", start, end)
		}
		if h.Data.Reason != "" {
			fmt.Fprintf(w, "     Reason: %s\n", strings.TrimSpace(h.Data.Reason))
		}
		if h.Data.Confidence != nil {
			fmt.Fprintf(w, "     Confidence: %.0f%%\n", *h.Data.Confidence*100)
		}
	}
}

func renderNarratives(w io.Writer, view session.View, colorize bool) {
	if view.NarrativesErr != "" {
		fmt.Fprintf(w, "\nNarratives unavailable: %s\n", view.NarrativesErr)
		return
	}
	if len(view.Narratives) == 0 {
		return
	}
	index := view.ArticleIndex()
	fmt.Fprintf(w, "\nNarratives (%d):\n", len(view.Narratives))
	for _, n := range view.Narratives {
		fmt.Fprintf(w, "  %s (%d articles)\n", narrativeTitle(n), len(n.Data.ArticleIDs))
		if summary := strings.TrimSpace(n.Data.Summary); summary != "" {
			fmt.Fprintf(w, "     %s\n", summary)
		}
		for _, linked := range narratives.ResolveLinked(n, index) {
			line := fmt.Sprintf("     - %s (%s)", linked.Title, linked.Outlet)
			if len(linked.Scores) > 0 {
				idx := scoring.Aggregate(linked.Scores)
				line += " " + colorizeBand(idx.Band, fmt.Sprintf("[%s]", bandLabel(idx.Band)), colorize)
			}
			fmt.Fprintln(w, line)
		}
	}
}

func narrativeTitle(n biasapi.Narrative) string {
	if label := strings.TrimSpace(n.Label); label != "" {
		return label
	}
	return n.ID
}
