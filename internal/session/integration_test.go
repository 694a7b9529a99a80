package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"biaslab/internal/biasapi"
	"biaslab/internal/history"
	"biaslab/internal/logging"
	"biaslab/internal/session"
	"biaslab/internal/testsupport"
)

// TestSubmitOverHTTPRecordsHistory drives the orchestrator through a real
// client against a stub service and checks the analysis lands in the local
// history store.
func TestSubmitOverHTTPRecordsHistory(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze", func(w http.ResponseWriter, r *http.Request) {
		var req biasapi.AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode analyze request: %v", err)
		}
		if req.Title != "Budget vote" {
			t.Errorf("unexpected title %q", req.Title)
		}
		_ = json.NewEncoder(w).Encode(biasapi.AnalysisResult{
			ID:      "a1",
			Summary: "summary",
			Scores:  map[string]float64{"framing_choices": 80, "factual_grounding": 20},
			Overall: &biasapi.Overall{Value: 62, Band: "high"},
		})
	})
	mux.HandleFunc("GET /highlights", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]biasapi.Highlight{})
	})
	mux.HandleFunc("GET /narratives", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]biasapi.Narrative{})
	})
	mux.HandleFunc("POST /narratives/cluster", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	mux.HandleFunc("GET /articles", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]biasapi.Article{{ID: "a1", Title: "Budget vote"}})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	cfg := testsupport.NewConfig(t, testsupport.WithBaseURL(server.URL))
	client, err := biasapi.New(cfg.API.BaseURL)
	if err != nil {
		t.Fatalf("biasapi.New: %v", err)
	}
	store, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	defer store.Close()

	orch := session.New(client, logging.NewNop(), session.WithRecorder(store))
	req := biasapi.AnalyzeRequest{Title: "Budget vote", Outlet: "Wire Service", URL: "https://example.com/story"}
	if _, err := orch.Submit(context.Background(), req, false); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	orch.Wait()

	view := orch.Snapshot()
	if view.State != session.StateSucceeded || view.Subject != "a1" {
		t.Fatalf("unexpected view: %#v", view)
	}
	if len(view.Articles) != 1 {
		t.Fatalf("article list not refreshed: %#v", view.Articles)
	}

	entries, err := store.List(context.Background(), 10)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.ArticleID != "a1" || entry.Overall != 62 || entry.Band != "high" || entry.Verdict != "Biased" {
		t.Fatalf("unexpected history entry: %#v", entry)
	}
}
