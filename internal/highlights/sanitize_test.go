package highlights_test

import (
	"reflect"
	"testing"

	"biaslab/internal/biasapi"
	"biaslab/internal/highlights"
)

func span(text string) biasapi.Highlight {
	return biasapi.Highlight{Dimension: "framing_choices", Data: biasapi.HighlightSpan{Text: text}}
}

func TestSanitizeDropsArtifacts(t *testing.T) {
	in := []biasapi.Highlight{
		span("critics say the plan is doomed"),
		span("   "),
		span("Please Return Only JSON with the fields above"),
		span("a"),
		span("officials declined to comment"),
	}
	got := highlights.Sanitize(in)
	want := []biasapi.Highlight{in[0], in[4]}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sanitize returned %#v, want %#v", got, want)
	}
}

func TestSanitizeLeakSignatureIsCaseInsensitive(t *testing.T) {
	in := []biasapi.Highlight{span("RETURN ONLY JSON")}
	if got := highlights.Sanitize(in); len(got) != 0 {
		t.Fatalf("expected leak signature dropped, got %#v", got)
	}
}

func TestSanitizeRetainsEntriesVerbatim(t *testing.T) {
	conf := 0.8
	in := []biasapi.Highlight{{
		ID:        "h1",
		ArticleID: "a1",
		Dimension: "emotional_tone",
		Data:      biasapi.HighlightSpan{Text: "  shocking betrayal  ", Start: 5, End: 25, Reason: "loaded language", Confidence: &conf},
	}}
	got := highlights.Sanitize(in)
	if len(got) != 1 || !reflect.DeepEqual(got[0], in[0]) {
		t.Fatalf("retained highlight was altered: %#v", got)
	}
}

func TestDisplayRange(t *testing.T) {
	cases := []struct {
		name       string
		start, end int
		ok         bool
	}{
		{"valid", 10, 40, true},
		{"zero start", 0, 40, false},
		{"inverted", 40, 10, false},
		{"equal", 10, 10, false},
		{"too wide", 1, 2200, false},
		{"just under cap", 1, 2000, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end, ok := highlights.DisplayRange(biasapi.HighlightSpan{Start: tc.start, End: tc.end})
			if ok != tc.ok {
				t.Fatalf("DisplayRange(%d,%d) ok = %v, want %v", tc.start, tc.end, ok, tc.ok)
			}
			if ok && (start != tc.start || end != tc.end) {
				t.Fatalf("DisplayRange returned (%d,%d), want (%d,%d)", start, end, tc.start, tc.end)
			}
		})
	}
}
