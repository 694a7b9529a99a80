package highlights

import (
	"strings"
	"unicode/utf8"

	"biaslab/internal/biasapi"
)

// leakSignatures are lowercase substrings that mark highlight text as leaked
// generator instructions rather than quoted article content. Extend this list
// as new artifacts show up; callers never need to change.
var leakSignatures = []string{
	"return only json",
}

// maxRangeSpan caps a believable highlight length. Anything longer is treated
// as a bad offset pair rather than a real phrase.
const maxRangeSpan = 2000

// Sanitize returns the highlights worth displaying, preserving input order.
// Retained entries are passed through verbatim.
func Sanitize(in []biasapi.Highlight) []biasapi.Highlight {
	out := make([]biasapi.Highlight, 0, len(in))
	for _, h := range in {
		if Displayable(h) {
			out = append(out, h)
		}
	}
	return out
}

// Displayable reports whether a highlight carries renderable phrase text.
func Displayable(h biasapi.Highlight) bool {
	text := strings.TrimSpace(h.Data.Text)
	if utf8.RuneCountInString(text) <= 1 {
		return false
	}
	lower := strings.ToLower(text)
	for _, sig := range leakSignatures {
		if strings.Contains(lower, sig) {
			return false
		}
	}
	return true
}

// DisplayRange returns the character range to show for a span. Text-mode
// submissions often lack offsets, and bad extractions produce inverted or
// absurdly wide ranges; those are suppressed while the text itself still
// renders.
func DisplayRange(span biasapi.HighlightSpan) (start, end int, ok bool) {
	if span.Start > 0 && span.End > span.Start && span.End-span.Start < maxRangeSpan {
		return span.Start, span.End, true
	}
	return 0, 0, false
}
