package main

import (
	"strings"
	"testing"
)

func seedArticles() []map[string]any {
	return []map[string]any{
		{
			"id":     "a1",
			"title":  "Senate passes budget",
			"outlet": "Wire Service",
			"scores": map[string]float64{
				"framing_choices":     80,
				"emotional_tone":      60,
				"factual_grounding":   20,
				"ideological_stance":  70,
				"source_transparency": 10,
			},
			"summary":    "A mostly factual report with loaded framing.",
			"created_at": "2026-08-01T10:00:00Z",
		},
		{
			"id":         "a2",
			"title":      "Local fair opens",
			"outlet":     "Town Crier",
			"created_at": "2026-08-02T09:00:00Z",
		},
	}
}

func TestArticlesListRendersTable(t *testing.T) {
	env := setupCLITestEnv(t, &fakeAnalysisService{articles: seedArticles()})

	out, _, err := runCLI(t, []string{"articles", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("articles list: %v", err)
	}
	requireContains(t, out, "Senate passes budget")
	requireContains(t, out, "Wire Service")
	// Weighted index for a1: 80*.25 + (100-20)*.25 + (100-10)*.20 + 60*.15 + 70*.15 = 77.5 -> 78.
	requireContains(t, out, "78 (Extremely High)")
	// a2 has no stored scores.
	requireContains(t, out, "-")
}

func TestArticlesListEmpty(t *testing.T) {
	env := setupCLITestEnv(t, &fakeAnalysisService{})

	out, _, err := runCLI(t, []string{"articles", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("articles list: %v", err)
	}
	requireContains(t, out, "No articles analyzed yet")
}

func TestArticlesDeleteRequiresConfirmation(t *testing.T) {
	service := &fakeAnalysisService{articles: seedArticles()}
	env := setupCLITestEnv(t, service)

	cmd := newRootCommand()
	var stdout strings.Builder
	cmd.SetOut(&stdout)
	cmd.SetIn(strings.NewReader("n\n"))
	cmd.SetArgs([]string{"--config", env.configPath, "articles", "delete", "a1"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("articles delete: %v", err)
	}
	requireContains(t, stdout.String(), "Aborted")
	if len(service.deleted) != 0 {
		t.Fatalf("declined delete reached the service: %v", service.deleted)
	}

	out, _, err := runCLI(t, []string{"articles", "delete", "a1", "--yes"}, env.configPath)
	if err != nil {
		t.Fatalf("articles delete --yes: %v", err)
	}
	requireContains(t, out, "Deleted article a1")
	if len(service.deleted) != 1 || service.deleted[0] != "a1" {
		t.Fatalf("unexpected deletions: %v", service.deleted)
	}
}

func TestArticlesExportURL(t *testing.T) {
	env := setupCLITestEnv(t, &fakeAnalysisService{})

	out, _, err := runCLI(t, []string{"articles", "export-url", "a 1"}, env.configPath)
	if err != nil {
		t.Fatalf("articles export-url: %v", err)
	}
	requireContains(t, out, env.server.URL+"/articles/a%201/export.csv")
}

func TestArticlesShowRendersAnalysisView(t *testing.T) {
	service := &fakeAnalysisService{
		articles: seedArticles(),
		highlights: []map[string]any{
			{
				"id":        "h1",
				"dimension": "framing_choices",
				"data":      map[string]any{"text": "critics slammed the deal", "start": 10, "end": 34},
			},
		},
		narratives: []map[string]any{
			{
				"id":    "n1",
				"label": "Budget fight",
				"data":  map[string]any{"article_ids": []string{"a1", "a2"}},
			},
		},
	}
	env := setupCLITestEnv(t, service)

	out, _, err := runCLI(t, []string{"articles", "show", "a1", "--expand-highlights"}, env.configPath)
	if err != nil {
		t.Fatalf("articles show: %v", err)
	}
	requireContains(t, out, "A mostly factual report")
	requireContains(t, out, "Overall bias index: 78/100 [Extremely High] - Highly biased")
	requireContains(t, out, "critics slammed the deal")
	requireContains(t, out, "Span: characters 10-34")
	requireContains(t, out, "Budget fight")
	// Opening an existing article must not recluster.
	if service.clusterCalls != 0 {
		t.Fatalf("show triggered clustering %d times", service.clusterCalls)
	}
}
