package narratives_test

import (
	"testing"

	"biaslab/internal/biasapi"
	"biaslab/internal/narratives"
)

func narrative(id string, articleIDs ...string) biasapi.Narrative {
	return biasapi.Narrative{ID: id, Label: "n-" + id, Data: biasapi.NarrativePayload{ArticleIDs: articleIDs}}
}

func TestForArticleEmptyWhenUnreferenced(t *testing.T) {
	list := []biasapi.Narrative{narrative("n1", "a1"), narrative("n2", "a2", "a3")}
	if got := narratives.ForArticle(list, "a9"); len(got) != 0 {
		t.Fatalf("expected no narratives, got %#v", got)
	}
}

func TestForArticlePreservesInputOrder(t *testing.T) {
	list := []biasapi.Narrative{
		narrative("n1", "a2"),
		narrative("n2", "a1", "a2"),
		narrative("n3", "a3"),
		narrative("n4", "a2", "a9"),
	}
	got := narratives.ForArticle(list, "a2")
	if len(got) != 3 {
		t.Fatalf("expected 3 narratives, got %d", len(got))
	}
	for i, want := range []string{"n1", "n2", "n4"} {
		if got[i].ID != want {
			t.Fatalf("order broken: position %d = %q, want %q", i, got[i].ID, want)
		}
	}
}

func TestForArticleEmptyID(t *testing.T) {
	list := []biasapi.Narrative{narrative("n1", "a1")}
	if got := narratives.ForArticle(list, ""); got != nil {
		t.Fatalf("expected nil for empty article id, got %#v", got)
	}
}

func TestResolveLinkedDropsMissingArticles(t *testing.T) {
	byID := narratives.IndexByID([]biasapi.Article{
		{ID: "a1", Title: "First"},
		{ID: "a3", Title: "Third"},
	})
	got := narratives.ResolveLinked(narrative("n1", "a1", "a2", "a3"), byID)
	if len(got) != 2 {
		t.Fatalf("expected 2 resolved articles, got %d", len(got))
	}
	if got[0].ID != "a1" || got[1].ID != "a3" {
		t.Fatalf("membership order broken: %#v", got)
	}
}

func TestResolveLinkedEmptyCache(t *testing.T) {
	got := narratives.ResolveLinked(narrative("n1", "a1"), nil)
	if len(got) != 0 {
		t.Fatalf("expected no articles from empty cache, got %#v", got)
	}
}
