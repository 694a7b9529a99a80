// Package scoring converts raw per-dimension bias scores into display values.
//
// It owns the four-band severity scale shared by every score the product
// renders, the fixed weight table that folds the five analysis dimensions into
// a single overall bias index, and the qualitative verdict labels derived from
// that index. Per-dimension scores and the overall index are classified with
// the same thresholds; keep it that way, since verdicts and band badges must
// never disagree about the same number.
package scoring
