package narratives

import "biaslab/internal/biasapi"

// ForArticle returns every narrative whose membership includes articleID,
// preserving the input order. Callers pick the sort direction when fetching;
// this filter never re-sorts.
func ForArticle(list []biasapi.Narrative, articleID string) []biasapi.Narrative {
	if articleID == "" {
		return nil
	}
	var out []biasapi.Narrative
	for _, n := range list {
		if References(n, articleID) {
			out = append(out, n)
		}
	}
	return out
}

// References reports whether the narrative's article membership contains id.
func References(n biasapi.Narrative, articleID string) bool {
	for _, id := range n.Data.ArticleIDs {
		if id == articleID {
			return true
		}
	}
	return false
}

// ResolveLinked maps a narrative's article ids through the supplied cache,
// keeping membership order. Ids without a cached article are skipped; the
// article may have been deleted or simply not loaded yet.
func ResolveLinked(n biasapi.Narrative, byID map[string]biasapi.Article) []biasapi.Article {
	out := make([]biasapi.Article, 0, len(n.Data.ArticleIDs))
	for _, id := range n.Data.ArticleIDs {
		if article, ok := byID[id]; ok {
			out = append(out, article)
		}
	}
	return out
}

// IndexByID builds the lookup ResolveLinked joins against.
func IndexByID(list []biasapi.Article) map[string]biasapi.Article {
	byID := make(map[string]biasapi.Article, len(list))
	for _, article := range list {
		byID[article.ID] = article
	}
	return byID
}
